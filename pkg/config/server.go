package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DefaultServerConfig returns the default server configuration.
// These are sensible defaults for local development and can be overridden
// via flags, environment variables, or config files.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           "127.0.0.1",
		Port:           8080,
		UIEnabled:      true,
		APIEnabled:     true,
		MetricsEnabled: true,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		Auth: AuthConfig{
			Mode: "none",
		},
	}
}

// DefaultAnnounceConfig returns the default (disabled) mDNS announcement settings.
func DefaultAnnounceConfig() AnnounceConfig {
	return AnnounceConfig{
		Enabled:  false,
		Instance: "wifiscan",
		Service:  "_http._tcp",
	}
}

// Validate checks the server configuration against its struct constraints.
func (c ServerConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	return nil
}

// Validate checks the whole configuration tree.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
