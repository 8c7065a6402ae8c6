package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigWarnings(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		contains []string
	}{
		{
			name:     "no api key",
			cfg:      Config{Environment: EnvironmentDev, CORSAllowedOrigins: []string{"*"}},
			contains: []string{"API_KEY is not set"},
		},
		{
			name:     "example api key",
			cfg:      Config{Environment: EnvironmentDev, APIKey: ExampleAPIKeyValue},
			contains: []string{"example value"},
		},
		{
			name:     "wildcard cors in production",
			cfg:      Config{Environment: EnvironmentProduction, APIKey: "secret", CORSAllowedOrigins: []string{"*"}},
			contains: []string{"CORS_ALLOWED_ORIGINS"},
		},
		{
			name: "clean production config",
			cfg:  Config{Environment: EnvironmentProduction, APIKey: "secret", CORSAllowedOrigins: []string{"https://slots.example"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.cfg.Warnings()
			assert.Len(t, warnings, len(tt.contains))
			for i, want := range tt.contains {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	assert.NoError(t, validateLogging("warn", "json"))
	assert.Error(t, validateLogging("trace", "json"))
	assert.Error(t, validateLogging("info", "yaml"))
}
