package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSource_Load(t *testing.T) {
	k := koanf.New(".")
	src := &DefaultSource{}
	assert.Equal(t, 10, src.Priority())
	assert.Equal(t, "defaults", src.Name())

	require.NoError(t, src.Load(k))

	assert.Equal(t, "info", k.String("log.level"))
	assert.Equal(t, 8080, k.Int("server.port"))
	assert.Equal(t, "_http._tcp", k.String("announce.service"))
}

func TestFileSource_Load_EmptyPath(t *testing.T) {
	k := koanf.New(".")
	require.NoError(t, (&FileSource{Path: ""}).Load(k), "Empty path should skip silently")
}

func TestFileSource_Load_NonExistentFile(t *testing.T) {
	k := koanf.New(".")
	src := &FileSource{Path: "/nonexistent/path/config.yaml"}
	assert.Equal(t, 20, src.Priority())
	assert.Equal(t, "file:/nonexistent/path/config.yaml", src.Name())

	require.NoError(t, src.Load(k), "Non-existent file should skip silently")
}

func TestFileSource_Load_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
log:
  level: warn
  format: json
server:
  port: 9999
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	k := koanf.New(".")
	require.NoError(t, (&FileSource{Path: configPath}).Load(k))

	assert.Equal(t, "warn", k.String("log.level"))
	assert.Equal(t, "json", k.String("log.format"))
	assert.Equal(t, 9999, k.Int("server.port"))
}

func TestEnvSource_Load(t *testing.T) {
	t.Setenv("WIFISCAN_LOG_LEVEL", "debug")
	t.Setenv("WIFISCAN_SERVER_UI_ENABLED", "false")
	t.Setenv("WIFISCAN_ANNOUNCE_INSTANCE", "lab-scanner")
	t.Setenv("WIFISCAN_NOT_A_KEY", "ignored")

	k := koanf.New(".")
	src := &EnvSource{}
	assert.Equal(t, 30, src.Priority())
	require.NoError(t, src.Load(k))

	assert.Equal(t, "debug", k.String("log.level"))
	assert.Equal(t, "false", k.String("server.ui_enabled"))
	assert.Equal(t, "lab-scanner", k.String("announce.instance"))
	assert.False(t, k.Exists("not.a.key"))
}

func TestFlagSource_Load(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("server.port", 8080, "")
	require.NoError(t, flags.Parse([]string{"--server.port=9090"}))

	k := koanf.New(".")
	src := &FlagSource{Flags: flags, Debug: true}
	assert.Equal(t, 40, src.Priority())
	require.NoError(t, src.Load(k))

	assert.Equal(t, 9090, k.Int("server.port"))
	assert.Equal(t, "debug", k.String("log.level"))
}

func TestFlagSource_IgnoresUnknownFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("announce", false, "")
	flags.Int("port", 8080, "")
	require.NoError(t, flags.Parse([]string{"--announce", "--port=9999"}))

	k := koanf.New(".")
	require.NoError(t, (&DefaultSource{}).Load(k))
	require.NoError(t, (&FlagSource{Flags: flags}).Load(k))

	assert.False(t, k.Bool("announce.enabled"))
	assert.Equal(t, "wifiscan", k.String("announce.instance"))
	assert.False(t, k.Exists("port"))
}

func TestDefaultSources_Order(t *testing.T) {
	sources := DefaultSources("wifiscan.yaml", nil, false)
	require.Len(t, sources, 4)

	for i := 1; i < len(sources); i++ {
		assert.Less(t, sources[i-1].Priority(), sources[i].Priority())
	}
}

func TestResolveConfigPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	require.Equal(t, "/etc/custom.yaml", ResolveConfigPath("/etc/custom.yaml"))
	require.Equal(t, "", ResolveConfigPath(""), "missing default file resolves to nothing")

	def := filepath.Join(xdg, "wifiscan", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(def), 0o755))
	require.NoError(t, os.WriteFile(def, []byte("log:\n  level: warn\n"), 0o600))
	require.Equal(t, def, ResolveConfigPath(""))
}
