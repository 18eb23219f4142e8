package akula

import "github.com/tbcd/akula/params"

// Config contains configuration options for the Akula service.
type Config struct {
	// Chain names the builtin chain specification to sync.
	Chain string

	// DataDir is the directory holding the chain database. Empty means an
	// ephemeral in-memory database.
	DataDir string `toml:",omitempty"`

	// Database options
	DatabaseHandles int `toml:"-"`
	DatabaseCache   int

	// DownloadWindow is the number of blocks covered by in-flight header
	// slices.
	DownloadWindow uint64

	// PreverifiedHashesFile overrides the embedded preverified hashes with a
	// file on disk.
	PreverifiedHashesFile string `toml:",omitempty"`
}

// DefaultConfig contains the default settings for use on the main network.
var DefaultConfig = Config{
	Chain:           params.MainnetChainName,
	DatabaseHandles: params.DefaultDatabaseHandles,
	DatabaseCache:   params.DefaultDatabaseCache,
	DownloadWindow:  params.DefaultDownloadWindow,
}
