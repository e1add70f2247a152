package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName        = "wifiscan"
	configFileName = "config.yaml"
)

// ConfigDir returns the config directory for wifiscan.
// Order: XDG_CONFIG_HOME/wifiscan, platform-specific fallback.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("AppData"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// DefaultConfigFile returns the config file used when --config is not given.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), configFileName)
}
