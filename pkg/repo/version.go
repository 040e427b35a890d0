package repo

import (
	"fmt"
	"runtime"
)

// set by ldflags at build time
var (
	BuildVersion = "dev"
	BuildCommit  = ""
	BuildBranch  = ""
	BuildDate    = ""
)

var (
	GoVersion = runtime.Version()
	Platform  = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)
