package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting slot reveal server"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Catalog and Engine
// =============================================================================

const (
	LogMsgCatalogLoaded       = "Catalog loaded"
	LogMsgUsingBuiltinCatalog = "No CATALOG_PATH set, using built-in catalog"
	ErrMsgFailedLoadCatalog   = "failed to load catalog"
	ErrMsgInvalidDrawMode     = "invalid draw mode"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	// ServiceNameSlots names the outcome engine in shutdown logs
	ServiceNameSlots = "slots"

	// LogMsgServiceShutdownFailed is prefixed with the service name
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
