package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		App: AppConfig{
			LogLevel:         "info",
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
			MaxFileSize:      5 * 1024 * 1024,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid config",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "missing port",
			mutate:      func(c *Config) { c.Server.Port = "" },
			expectError: true,
			errorMsg:    "server port is required",
		},
		{
			name:        "default format not in supported list",
			mutate:      func(c *Config) { c.App.DefaultFormat = "yaml" },
			expectError: true,
			errorMsg:    "invalid default format: yaml",
		},
		{
			name:        "zero max file size",
			mutate:      func(c *Config) { c.App.MaxFileSize = 0 },
			expectError: true,
			errorMsg:    "maxFileSize must be positive",
		},
		{
			name: "rate limiting enabled without rate",
			mutate: func(c *Config) {
				c.Server.RateLimit.Enabled = true
				c.Server.RateLimit.BurstCapacity = 10
			},
			expectError: true,
			errorMsg:    "requestsPerMin must be positive",
		},
		{
			name: "rate limiting enabled without burst",
			mutate: func(c *Config) {
				c.Server.RateLimit.Enabled = true
				c.Server.RateLimit.RequestsPerMin = 60
			},
			expectError: true,
			errorMsg:    "burstCapacity must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyFallbacks(t *testing.T) {
	t.Run("api keys from environment", func(t *testing.T) {
		t.Setenv("RESUMELENS_SERVER_APIKEYS", "key-one, key-two")

		cfg := validTestConfig()
		cfg.applyFallbacks()

		assert.Equal(t, []string{"key-one", "key-two"}, cfg.Server.APIKeys)
	})

	t.Run("tls min version defaulted for server mode", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.TLS.Mode = "server"
		cfg.Server.TLS.MinVersion = ""
		cfg.applyFallbacks()

		assert.Equal(t, "1.2", cfg.Server.TLS.MinVersion)
	})

	t.Run("service instance generated", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Observability.ServiceName = "resumelens"
		cfg.applyFallbacks()

		assert.NotEmpty(t, cfg.Observability.ServiceInstance)
		assert.Contains(t, cfg.Observability.ServiceInstance, "resumelens-")
	})
}
