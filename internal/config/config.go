package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/osse101/SlotReveal_Go/internal/spin"
)

// Config holds the spin server configuration
type Config struct {
	Port               int
	LogLevel           string
	LogFormat          string
	LogDir             string
	Environment        string
	ServiceName        string
	Version            string
	APIKey             string // optional; empty disables authentication
	CORSAllowedOrigins []string
	TrustedProxies     []string
	CatalogPath        string // empty uses the built-in catalog
	DrawMode           string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	ShutdownTimeout    time.Duration
}

// ClientConfig holds the terminal spin client configuration
type ClientConfig struct {
	APIURL       string
	APIKey       string
	Balance      decimal.Decimal
	Bet          decimal.Decimal
	BaseDuration time.Duration
	Stagger      time.Duration
	RefundPolicy string
	LogLevel     string
	LogFormat    string
}

// Load loads the server configuration from environment variables
func Load() (*Config, error) {
	loadDotEnv()

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}

	cfg := &Config{
		Port:               port,
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:             getEnv("LOG_DIR", DefaultLogDir),
		Environment:        strings.ToLower(getEnv("ENVIRONMENT", DefaultEnvironment)),
		ServiceName:        getEnv("SERVICE_NAME", DefaultServiceName),
		Version:            getEnv("VERSION", DefaultVersion),
		APIKey:             getEnv("API_KEY", ""),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", DefaultCORSOrigins),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES", ""),
		CatalogPath:        getEnv("CATALOG_PATH", ""),
		DrawMode:           strings.ToLower(getEnv("DRAW_MODE", DefaultDrawMode)),
		RateLimitRequests:  getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", DefaultRateLimitRequests),
		RateLimitWindow:    getEnvAsDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadClient loads the spin client configuration from environment variables
func LoadClient() (*ClientConfig, error) {
	loadDotEnv()

	balance, err := decimal.NewFromString(getEnv("SPIN_BALANCE", strconv.Itoa(spin.DefaultBalance)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidBalance, err)
	}
	bet, err := decimal.NewFromString(getEnv("SPIN_BET", strconv.Itoa(spin.DefaultBet)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidBet, err)
	}

	cfg := &ClientConfig{
		APIURL:       getEnv("SPIN_API_URL", DefaultAPIURL),
		APIKey:       getEnv("SPIN_API_KEY", ""),
		Balance:      balance,
		Bet:          bet,
		BaseDuration: getEnvAsDuration("SPIN_BASE_DURATION", spin.DefaultBaseDuration),
		Stagger:      getEnvAsDuration("SPIN_STAGGER", spin.DefaultStagger),
		RefundPolicy: strings.ToLower(getEnv("SPIN_REFUND_POLICY", DefaultRefundPolicy)),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads .env if it exists; real environment variables take precedence
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(LogMsgEnvFileNotFound)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsDuration parses a time.Duration ("2s", "500ms"), falling back to the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return d
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated value, dropping blanks
func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
