package bind

import (
	"github.com/spf13/cobra"

	"github.com/vulntor/wifiscan/pkg/config"
	srv "github.com/vulntor/wifiscan/pkg/server"
)

// ServerOptions holds configuration options for the server start command.
type ServerOptions struct {
	Addr         string
	Port         int
	NoUI         bool
	NoAPI        bool
	UIAssetsPath string
	Announce     bool

	// changed records which flags were set explicitly on the command line.
	changed map[string]bool
}

// BindServerOptions extracts and validates server command flags.
//
// Flags read:
//   - --addr: Server listen address (e.g., "127.0.0.1", "0.0.0.0")
//   - --port: Server listen port (1-65535)
//   - --no-ui: Disable the scanner page
//   - --no-api: Disable the scan and version endpoints
//   - --ui-assets-path: UI assets directory (dev mode)
//   - --announce: Advertise the server over mDNS
//
// Returns an error if validation fails (e.g., invalid port range).
func BindServerOptions(cmd *cobra.Command) (ServerOptions, error) {
	flags := cmd.Flags()

	addr, _ := flags.GetString("addr")
	port, _ := flags.GetInt("port")
	noUI, _ := flags.GetBool("no-ui")
	noAPI, _ := flags.GetBool("no-api")
	uiAssetsPath, _ := flags.GetString("ui-assets-path")
	announce, _ := flags.GetBool("announce")

	if port < 1 || port > 65535 {
		return ServerOptions{}, srv.NewInvalidPortError(port)
	}

	if noUI && noAPI {
		return ServerOptions{}, srv.NewFeaturesDisabledError()
	}

	changed := make(map[string]bool)
	for _, name := range []string{"addr", "port", "no-ui", "no-api", "ui-assets-path", "announce"} {
		changed[name] = flags.Changed(name)
	}

	return ServerOptions{
		Addr:         addr,
		Port:         port,
		NoUI:         noUI,
		NoAPI:        noAPI,
		UIAssetsPath: uiAssetsPath,
		Announce:     announce,
		changed:      changed,
	}, nil
}

// Apply overlays explicitly set flags onto the loaded configuration.
// Flags left at their defaults keep the values from file or environment.
func (o ServerOptions) Apply(cfg config.Config) config.Config {
	if o.changed["addr"] {
		cfg.Server.Addr = o.Addr
	}
	if o.changed["port"] {
		cfg.Server.Port = o.Port
	}
	if o.changed["no-ui"] {
		cfg.Server.UIEnabled = !o.NoUI
	}
	if o.changed["no-api"] {
		cfg.Server.APIEnabled = !o.NoAPI
	}
	if o.changed["ui-assets-path"] {
		cfg.Server.UI.AssetsPath = o.UIAssetsPath
	}
	if o.changed["announce"] {
		cfg.Announce.Enabled = o.Announce
	}
	return cfg
}
