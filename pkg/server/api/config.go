package api

import (
	"errors"
	"time"
)

// Sentinel errors for configuration validation
var (
	// ErrInvalidTimeout is returned when a timeout value is invalid (negative).
	ErrInvalidTimeout = errors.New("invalid timeout: must be >= 0")
)

// Config holds API-level configuration.
type Config struct {
	// HandlerTimeout bounds how long a handler waits on its scanner.
	//
	// Applied only when the request context has no deadline yet, so a
	// shorter deadline set by middleware or the client wins. Zero disables it.
	// When exceeded the handler returns 504 Gateway Timeout.
	HandlerTimeout time.Duration
}

// DefaultConfig returns the default API configuration.
func DefaultConfig() Config {
	return Config{
		HandlerTimeout: 30 * time.Second,
	}
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if c.HandlerTimeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}
