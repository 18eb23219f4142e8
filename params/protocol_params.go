package params

const (
	MainnetChainName = "mainnet" // Name of the Ethereum main network.

	DefaultDownloadWindow    = 16 * 192          // Number of blocks covered by in-flight header slices.
	DefaultCleanPromotionGas = 1_000_000_000_000 // Gas delta above which derived indices are rebuilt from scratch.
	DefaultDatabaseCache     = 512               // Megabytes of memory allocated to the database cache.
	DefaultDatabaseHandles   = 512               // File descriptors allocated to the database.
)
