package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting yol-backend"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Catalog sync messages
const (
	LogMsgSyncingCatalogs = "Syncing seed catalogs from JSON config..."
	LogMsgCatalogsSynced  = "Seed catalogs synced successfully"

	ErrMsgFailedLoadSuccesses  = "failed to load success catalog"
	ErrMsgFailedLoadSpecies    = "failed to load species catalog"
	ErrMsgFailedLoadDailyTasks = "failed to load daily task catalog"
	ErrMsgFailedSyncCatalogs   = "failed to sync seed catalogs to database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
