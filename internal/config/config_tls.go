package config

import (
	"crypto/tls"
	"fmt"
)

// ValidateTLSConfig validates the TLS configuration
func (c *Config) ValidateTLSConfig() error {
	cfg := c.Server.TLS

	if err := validateTLSMode(cfg); err != nil {
		return err
	}

	return validateTLSVersion(cfg)
}

// validateTLSMode validates the TLS mode and associated requirements
func validateTLSMode(cfg TLSConfig) error {
	switch cfg.Mode {
	case "disabled":
		return nil // No validation needed for disabled mode
	case "server":
		if cfg.CertFile == "" || cfg.KeyFile == "" {
			return fmt.Errorf("TLS certFile and keyFile are required for server mode")
		}
		return nil
	default:
		return fmt.Errorf("invalid TLS mode: %s (must be 'disabled' or 'server')", cfg.Mode)
	}
}

// validateTLSVersion validates the TLS version configuration
func validateTLSVersion(cfg TLSConfig) error {
	switch cfg.MinVersion {
	case "", "1.2", "1.3":
		return nil // Valid versions (empty defaults to 1.2)
	default:
		return fmt.Errorf("invalid TLS minVersion: %s (must be '1.2' or '1.3')", cfg.MinVersion)
	}
}

// BuildTLSConfig constructs a crypto/tls configuration from the server TLS
// settings. Returns nil when TLS is disabled.
func (c *Config) BuildTLSConfig() (*tls.Config, error) {
	cfg := c.Server.TLS

	if cfg.Mode == "disabled" {
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS key pair: %w", err)
	}

	minVersion := uint16(tls.VersionTLS12)
	if cfg.MinVersion == "1.3" {
		minVersion = tls.VersionTLS13
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   minVersion,
	}, nil
}
