package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig()

	// Network settings
	require.Equal(t, "127.0.0.1", cfg.Addr)
	require.Equal(t, 8080, cfg.Port)

	// Component toggles
	require.True(t, cfg.UIEnabled)
	require.True(t, cfg.APIEnabled)
	require.True(t, cfg.MetricsEnabled)

	// Timeouts
	require.Equal(t, 30*time.Second, cfg.ReadTimeout)
	require.Equal(t, 30*time.Second, cfg.WriteTimeout)

	require.Equal(t, "none", cfg.Auth.Mode)
	require.Empty(t, cfg.UI.AssetsPath)
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr bool
	}{
		{"defaults", func(*ServerConfig) {}, false},
		{"port zero", func(c *ServerConfig) { c.Port = 0 }, true},
		{"port too large", func(c *ServerConfig) { c.Port = 65536 }, true},
		{"port max", func(c *ServerConfig) { c.Port = 65535 }, false},
		{"negative read timeout", func(c *ServerConfig) { c.ReadTimeout = -time.Second }, true},
		{"zero write timeout", func(c *ServerConfig) { c.WriteTimeout = 0 }, false},
		{"unknown auth mode", func(c *ServerConfig) { c.Auth.Mode = "oidc" }, true},
		{"token mode without token", func(c *ServerConfig) { c.Auth.Mode = "token" }, true},
		{"token mode with token", func(c *ServerConfig) {
			c.Auth.Mode = "token"
			c.Auth.Token = "secret"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultServerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
