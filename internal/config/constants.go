package config

import "time"

// Server defaults
const (
	DefaultPort            = 3000
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "slot-reveal"
	DefaultVersion         = "dev"
	DefaultCORSOrigins     = "*"
	DefaultDrawMode        = "modulo"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultRateLimitRequests = 1000
	DefaultRateLimitWindow   = 5 * time.Minute
)

// Client defaults
const (
	DefaultAPIURL       = "http://localhost:3000"
	DefaultRefundPolicy = "refund"
)

// Configuration file paths
const (
	ConfigPathCatalog = "configs/catalog.json"
)

// Environment names
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "production"
)

// Port bounds
const (
	MinPort = 1
	MaxPort = 65535
)

// Error messages
const (
	ErrMsgInvalidPort         = "invalid PORT value: %w"
	ErrMsgPortOutOfRange      = "PORT %d out of range [%d, %d]"
	ErrMsgInvalidLogLevel     = "invalid LOG_LEVEL %q"
	ErrMsgInvalidLogFormat    = "invalid LOG_FORMAT %q"
	ErrMsgInvalidEnvironment  = "invalid ENVIRONMENT %q"
	ErrMsgInvalidDrawMode     = "invalid DRAW_MODE: %w"
	ErrMsgInvalidShutdown     = "SHUTDOWN_TIMEOUT must be positive, got %s"
	ErrMsgInvalidBalance      = "invalid SPIN_BALANCE: %w"
	ErrMsgInvalidBet          = "invalid SPIN_BET: %w"
	ErrMsgNegativeBalance     = "SPIN_BALANCE must not be negative, got %s"
	ErrMsgBetBelowMinimum     = "SPIN_BET must be at least %d, got %s"
	ErrMsgBetAboveMaximum     = "SPIN_BET must be at most %d, got %s"
	ErrMsgInvalidRefundPolicy = "invalid SPIN_REFUND_POLICY: %w"
	ErrMsgNegativeDuration    = "%s must not be negative, got %s"
	ErrMsgMissingAPIURL       = "SPIN_API_URL must be set"
	ErrMsgInvalidRateLimit    = "RATE_LIMIT_MAX_REQUESTS must be positive, got %d"
	ErrMsgInvalidRateWindow   = "RATE_LIMIT_WINDOW must be positive, got %s"
)

// Warnings
const (
	WarnMsgNoAPIKey       = "API_KEY is not set - /api routes are open to anyone who can reach the server"
	WarnMsgWildcardCORS   = "CORS_ALLOWED_ORIGINS is '*' - restrict it to the client's origin in production"
	WarnMsgExampleAPIKey  = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	ExampleAPIKeyValue    = "generate_with_openssl_rand_hex_32"
	LogMsgEnvFileNotFound = "No .env file found, using process environment"
)
