package logger

// Accepted LOG_LEVEL values; anything else falls back to info
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// LogFormatJSON selects the JSON handler; every other format uses text
const LogFormatJSON = "json"

// Attribute keys attached to every record or request
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
