package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest = "Invalid request body"
	ErrMsgInvalidBet     = "Invalid bet amount"
	ErrMsgInternal       = "An unexpected error occurred"
	ErrMsgUnavailable    = "Service temporarily unavailable"
)

// Validation messages keyed by validator tag
const (
	ValidationMsgRequired = "This field is required"
	ValidationMsgWager    = "Must be a positive number"
	ValidationMsgNumber   = "Must be a number"
	ValidationMsgInvalid  = "Invalid value"
)

// Health status values
const (
	HealthStatusAlive       = "alive"
	HealthStatusReady       = "ready"
	HealthStatusUnavailable = "unavailable"
)

// Headers
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgDecodeFailed         = "Failed to decode request"
	LogMsgValidationFailed     = "Request validation failed"
	LogMsgSpinRequested        = "Spin requested"
	LogMsgSpinFailed           = "Spin failed"
	LogMsgReadinessFailed      = "Readiness check failed"
)
