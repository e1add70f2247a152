// pkg/config/config.go
package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Manager handles loading and accessing application configuration.
type Manager struct {
	koanfInstance *koanf.Koanf
	currentConfig Config
	sources       []ConfigSource
	mu            sync.RWMutex // protects koanfInstance, currentConfig and sources
}

// NewManager creates a new Manager with an empty koanf instance.
func NewManager() *Manager {
	return &Manager{
		koanfInstance: koanf.New("."),
	}
}

// DefaultConfig returns a new Config struct populated with hardcoded default values.
// These serve as the baseline configuration if no other sources override them.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server:   DefaultServerConfig(),
		Announce: DefaultAnnounceConfig(),
	}
}

// Load loads configuration from defaults, the config file, the environment
// and flags, in that order of precedence.
func (m *Manager) Load(flags *pflag.FlagSet, customConfigFilePath string) error {
	debug := false
	if flags != nil {
		if debugFlag := flags.Lookup("debug"); debugFlag != nil && debugFlag.Value.String() == "true" {
			debug = true
		}
	}

	return m.LoadSources(DefaultSources(customConfigFilePath, flags, debug)...)
}

// LoadSources loads the given sources sorted by priority and replaces the
// current configuration. The sources are remembered for Reload.
func (m *Manager) LoadSources(sources ...ConfigSource) error {
	sorted := make([]ConfigSource, len(sources))
	copy(sorted, sources)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})

	k := koanf.New(".")
	for _, src := range sorted {
		if err := src.Load(k); err != nil {
			return fmt.Errorf("load %s: %w", src.Name(), err)
		}
	}

	var newCfg Config
	if err := k.UnmarshalWithConf("", &newCfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("error unmarshaling final config: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.koanfInstance = k
	m.currentConfig = newCfg
	m.sources = sorted

	return nil
}

// Reload re-reads every source from the last Load.
func (m *Manager) Reload() error {
	m.mu.RLock()
	sources := m.sources
	m.mu.RUnlock()

	if len(sources) == 0 {
		return fmt.Errorf("reload: configuration was never loaded")
	}
	return m.LoadSources(sources...)
}

// FilePath returns the config file path of the last Load, if any.
func (m *Manager) FilePath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, src := range m.sources {
		if fs, ok := src.(*FileSource); ok {
			return fs.Path
		}
	}
	return ""
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentConfig
}

// DefaultConfigAsMap converts the DefaultConfig struct to a map[string]interface{}
// for koanf's confmap.Provider, so that koanf knows every key.
func DefaultConfigAsMap() map[string]interface{} {
	def := DefaultConfig()
	return map[string]interface{}{
		// Log configuration
		"log.level":  def.Log.Level,
		"log.format": def.Log.Format,

		// Server configuration
		"server.addr":            def.Server.Addr,
		"server.port":            def.Server.Port,
		"server.ui_enabled":      def.Server.UIEnabled,
		"server.api_enabled":     def.Server.APIEnabled,
		"server.metrics_enabled": def.Server.MetricsEnabled,
		"server.read_timeout":    def.Server.ReadTimeout,
		"server.write_timeout":   def.Server.WriteTimeout,

		// UI configuration
		"server.ui.assets_path": def.Server.UI.AssetsPath,

		// Auth configuration
		"server.auth.mode":  def.Server.Auth.Mode,
		"server.auth.token": def.Server.Auth.Token,

		// mDNS announcement
		"announce.enabled":  def.Announce.Enabled,
		"announce.instance": def.Announce.Instance,
		"announce.service":  def.Announce.Service,
	}
}

// BindFlags defines the global command-line flags that map onto configuration keys.
// The --config / -c flag is defined directly on the root command.
func BindFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()

	flags.String("log.level", defaults.Log.Level, "Log level (debug, info, warn, error)")
	flags.String("log.format", defaults.Log.Format, "Log format (text, json)")

	var flagvar bool
	flags.BoolVar(&flagvar, "debug", false, "Enable debug logging")
}
