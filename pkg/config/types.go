// pkg/config/types.go
package config

import "time"

// Config is the root configuration structure for wifiscan.
// It aggregates all other specific configuration structs.
type Config struct {
	Log      LogConfig      `description:"Logging configuration" koanf:"log" yaml:"log"`
	Server   ServerConfig   `description:"Server configuration" koanf:"server" yaml:"server"`
	Announce AnnounceConfig `description:"mDNS announcement configuration" koanf:"announce" yaml:"announce"`
}

// LogConfig holds logging related configuration.
type LogConfig struct {
	Level  string `description:"Log level (debug, info, warn, error)" koanf:"level" yaml:"level"`
	Format string `description:"Log format: json | text" koanf:"format" yaml:"format" validate:"oneof=json text"`
}

// ServerConfig holds configuration for the wifiscan HTTP server.
// Used by 'wifiscan server start'.
type ServerConfig struct {
	// Network settings
	Addr string `description:"Server listen address" koanf:"addr" yaml:"addr"`
	Port int    `description:"Server listen port" koanf:"port" yaml:"port" validate:"min=1,max=65535"`

	// Component toggles
	UIEnabled  bool `description:"Enable scanner page serving" koanf:"ui_enabled" yaml:"ui_enabled"`
	APIEnabled bool `description:"Enable scan and version endpoints" koanf:"api_enabled" yaml:"api_enabled"`

	// MetricsEnabled mounts the Prometheus endpoint at GET /metrics
	MetricsEnabled bool `description:"Enable Prometheus metrics endpoint" koanf:"metrics_enabled" yaml:"metrics_enabled"`

	// HTTP timeouts
	ReadTimeout  time.Duration `description:"HTTP read timeout" koanf:"read_timeout" yaml:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `description:"HTTP write timeout" koanf:"write_timeout" yaml:"write_timeout" validate:"min=0"`

	// Sub-configurations
	UI   UIConfig   `description:"UI configuration" koanf:"ui" yaml:"ui"`
	Auth AuthConfig `description:"Authentication configuration" koanf:"auth" yaml:"auth"`
}

// UIConfig holds UI-specific configuration.
type UIConfig struct {
	AssetsPath string `description:"Serve UI assets from disk instead of the embedded copy" koanf:"assets_path" yaml:"assets_path"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Mode  string `description:"Authentication mode: none|token" koanf:"mode" yaml:"mode" validate:"oneof=none token"`
	Token string `description:"Static bearer token (required for token mode)" koanf:"token" yaml:"token,omitempty" validate:"required_if=Mode token"`
}

// AnnounceConfig controls mDNS advertisement of the HTTP server.
type AnnounceConfig struct {
	Enabled  bool   `description:"Advertise the server over mDNS" koanf:"enabled" yaml:"enabled"`
	Instance string `description:"mDNS instance name" koanf:"instance" yaml:"instance" validate:"required_if=Enabled true"`
	Service  string `description:"mDNS service type" koanf:"service" yaml:"service" validate:"required_if=Enabled true"`
}
