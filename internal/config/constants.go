package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the local storage database
	DefaultDatabasePath = "./bookcircle.db"

	// DefaultExportDir is where library exports are written
	DefaultExportDir = "./exports"

	// DefaultCoversCacheDir is where downloaded cover images are kept
	DefaultCoversCacheDir = "./covers"
)
