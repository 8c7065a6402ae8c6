package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotReveal_Go/internal/domain"
	"github.com/osse101/SlotReveal_Go/internal/slots"
	"github.com/osse101/SlotReveal_Go/internal/spin"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogFormats   = []string{"text", "json"}
	validEnvironments = []string{EnvironmentDev, EnvironmentStaging, EnvironmentProduction}
)

// Validate checks the server configuration for values the service cannot start with
func (c *Config) Validate() error {
	if c.Port < MinPort || c.Port > MaxPort {
		return fmt.Errorf(ErrMsgPortOutOfRange, c.Port, MinPort, MaxPort)
	}
	if err := validateLogging(c.LogLevel, c.LogFormat); err != nil {
		return err
	}
	if !slices.Contains(validEnvironments, c.Environment) {
		return fmt.Errorf(ErrMsgInvalidEnvironment, c.Environment)
	}
	if _, err := slots.ParseDrawMode(c.DrawMode); err != nil {
		return fmt.Errorf(ErrMsgInvalidDrawMode, err)
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf(ErrMsgInvalidRateLimit, c.RateLimitRequests)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf(ErrMsgInvalidRateWindow, c.RateLimitWindow)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf(ErrMsgInvalidShutdown, c.ShutdownTimeout)
	}
	return nil
}

// Warnings returns non-fatal issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	switch c.APIKey {
	case "":
		warnings = append(warnings, WarnMsgNoAPIKey)
	case ExampleAPIKeyValue:
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}

	if c.Environment == EnvironmentProduction && slices.Contains(c.CORSAllowedOrigins, "*") {
		warnings = append(warnings, WarnMsgWildcardCORS)
	}

	return warnings
}

// Validate checks the client configuration
func (c *ClientConfig) Validate() error {
	if c.APIURL == "" {
		return errors.New(ErrMsgMissingAPIURL)
	}
	if c.Balance.IsNegative() {
		return fmt.Errorf(ErrMsgNegativeBalance, c.Balance)
	}
	if c.Bet.LessThan(decimal.NewFromInt(spin.MinBet)) {
		return fmt.Errorf(ErrMsgBetBelowMinimum, spin.MinBet, c.Bet)
	}
	if c.Bet.GreaterThan(decimal.NewFromInt(domain.MaxWager)) {
		return fmt.Errorf(ErrMsgBetAboveMaximum, domain.MaxWager, c.Bet)
	}
	if c.BaseDuration < 0 {
		return fmt.Errorf(ErrMsgNegativeDuration, "SPIN_BASE_DURATION", c.BaseDuration)
	}
	if c.Stagger < 0 {
		return fmt.Errorf(ErrMsgNegativeDuration, "SPIN_STAGGER", c.Stagger)
	}
	if _, err := spin.ParseRefundPolicy(c.RefundPolicy); err != nil {
		return fmt.Errorf(ErrMsgInvalidRefundPolicy, err)
	}
	return validateLogging(c.LogLevel, c.LogFormat)
}

func validateLogging(level, format string) error {
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf(ErrMsgInvalidLogLevel, level)
	}
	if !slices.Contains(validLogFormats, format) {
		return fmt.Errorf(ErrMsgInvalidLogFormat, format)
	}
	return nil
}
