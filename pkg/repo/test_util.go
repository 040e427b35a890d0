package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// MockRepo builds a repo over a temp dir with the default config, for tests.
func MockRepo(t testing.TB) *Repo {
	rep, err := Default(t.TempDir())
	require.Nil(t, err)
	return rep
}
