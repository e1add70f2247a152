// pkg/config/source.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/vulntor/wifiscan/pkg/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "WIFISCAN_"

// ConfigSource represents a configuration source that can load values into koanf.
// Sources are loaded in priority order (lowest first), with higher priority sources
// overriding lower priority values.
//
// Built-in sources and their priorities:
//   - DefaultSource (10): Hardcoded default values
//   - FileSource (20): Config file (e.g., wifiscan.yaml)
//   - EnvSource (30): Environment variables (WIFISCAN_*)
//   - FlagSource (40): Command-line flags
type ConfigSource interface {
	// Name returns a human-readable name for this source (for logging/debugging)
	Name() string

	// Priority returns the load priority. Lower values are loaded first,
	// higher values override lower ones.
	Priority() int

	// Load loads configuration values into the provided koanf instance.
	Load(k *koanf.Koanf) error
}

// DefaultSource provides hardcoded default configuration values.
// Priority: 10 (lowest, loaded first)
type DefaultSource struct{}

func (s *DefaultSource) Name() string  { return "defaults" }
func (s *DefaultSource) Priority() int { return 10 }

func (s *DefaultSource) Load(k *koanf.Koanf) error {
	if err := k.Load(confmap.Provider(DefaultConfigAsMap(), "."), nil); err != nil {
		return fmt.Errorf("error loading defaults: %w", err)
	}
	return nil
}

// FileSource loads configuration from a YAML file.
// Priority: 20
type FileSource struct {
	Path string // Path to config file (optional, silently skipped if empty or missing)
}

func (s *FileSource) Name() string  { return "file:" + s.Path }
func (s *FileSource) Priority() int { return 20 }

func (s *FileSource) Load(k *koanf.Koanf) error {
	if s.Path == "" {
		return nil
	}

	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error checking config file %s: %w", s.Path, err)
	}

	if err := k.Load(file.Provider(s.Path), yaml.Parser()); err != nil {
		return fmt.Errorf("error loading config file %s: %w", s.Path, err)
	}
	return nil
}

// EnvSource loads configuration from environment variables.
// Variables are matched against the known configuration keys, so keys that
// contain underscores resolve correctly:
//
//	WIFISCAN_LOG_LEVEL           -> log.level
//	WIFISCAN_SERVER_PORT         -> server.port
//	WIFISCAN_SERVER_READ_TIMEOUT -> server.read_timeout
//
// Unknown variables with the prefix are ignored.
// Priority: 30
type EnvSource struct {
	Prefix string // Environment variable prefix (default: "WIFISCAN_")
}

func (s *EnvSource) Name() string  { return "env" }
func (s *EnvSource) Priority() int { return 30 }

func (s *EnvSource) Load(k *koanf.Koanf) error {
	prefix := s.Prefix
	if prefix == "" {
		prefix = EnvPrefix
	}

	known := envKeyIndex()
	if err := k.Load(env.Provider(prefix, ".", func(key string) string {
		return known[strings.ToUpper(strings.TrimPrefix(key, prefix))]
	}), nil); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}
	return nil
}

// envKeyIndex maps SECTION_KEY style names onto dotted config keys.
func envKeyIndex() map[string]string {
	defaults := DefaultConfigAsMap()
	idx := make(map[string]string, len(defaults))
	for key := range defaults {
		idx[strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}
	return idx
}

// FlagSource loads configuration from command-line flags.
// Priority: 40 (highest, overrides all other sources)
type FlagSource struct {
	Flags *pflag.FlagSet
	Debug bool // If true, set log.level to "debug"
}

func (s *FlagSource) Name() string  { return "flags" }
func (s *FlagSource) Priority() int { return 40 }

func (s *FlagSource) Load(k *koanf.Koanf) error {
	if s.Flags != nil {
		// Only flags named after config keys are loaded; command flags such as
		// --announce would otherwise replace a whole section. Passing k makes
		// posflag skip unchanged flags whose key is already set, so flag
		// defaults don't clobber file or env values.
		known := DefaultConfigAsMap()
		provider := posflag.ProviderWithFlag(s.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if _, ok := known[f.Name]; !ok {
				return "", nil
			}
			return f.Name, posflag.FlagVal(s.Flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return fmt.Errorf("error loading command-line flags: %w", err)
		}
	}

	if s.Debug {
		_ = k.Set("log.level", "debug")
	}

	return nil
}

// ResolveConfigPath returns custom when set, otherwise the per-user default
// config file if it exists, otherwise "".
func ResolveConfigPath(custom string) string {
	if custom != "" {
		return custom
	}
	def := paths.DefaultConfigFile()
	if info, err := os.Stat(def); err == nil && !info.IsDir() {
		return def
	}
	return ""
}

// DefaultSources returns the standard configuration sources.
// Order: defaults -> file -> env -> flags
func DefaultSources(configPath string, flags *pflag.FlagSet, debug bool) []ConfigSource {
	return []ConfigSource{
		&DefaultSource{},
		&FileSource{Path: configPath},
		&EnvSource{Prefix: EnvPrefix},
		&FlagSource{Flags: flags, Debug: debug},
	}
}
