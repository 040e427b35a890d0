package repo

const (
	AppName = "TokenLedger"

	// CfgFileName is the default config name
	CfgFileName = "config.toml"

	genesisCfgFileName = "genesis.toml"

	// defaultRepoRoot is the path to the default config dir location.
	defaultRepoRoot = "~/.token-ledger"

	// rootPathEnvVar is the environment variable used to change the path root.
	rootPathEnvVar = "TOKEN_LEDGER_PATH"

	pidFileName = "running.pid"

	LogsDirName = "logs"
)

const (
	KVStorageTypeLeveldb = "leveldb"
	KVStorageTypePebble  = "pebble"
	KVStorageCacheSize   = 16
	KVStorageSync        = true
)
