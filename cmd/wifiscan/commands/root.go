package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	serverCmd "github.com/vulntor/wifiscan/cmd/wifiscan/commands/server"
	"github.com/vulntor/wifiscan/pkg/appctx"
	"github.com/vulntor/wifiscan/pkg/config"
	"github.com/vulntor/wifiscan/pkg/logging"
)

const cliExecutable = "wifiscan"

// NewCommand constructs the top-level wifiscan CLI command, wiring global
// flags and loading the shared configuration before any subcommand runs.
func NewCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   cliExecutable,
		Short: "wifiscan serves Wi-Fi scan results over HTTP",
		Long: `wifiscan hosts a small HTTP server whose GET /scan endpoint returns
nearby Wi-Fi networks as JSON, plus a scanner page for browsers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mgr := config.NewManager()
			if err := mgr.Load(cmd.Flags(), config.ResolveConfigPath(configFile)); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			cfg := mgr.Get()
			if err := logging.ConfigureGlobalLogging(cfg.Log.Level, cfg.Log.Format); err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			ctx := appctx.WithConfig(cmd.Context(), mgr)
			cmd.SetContext(ctx)
			if root := cmd.Root(); root != nil && root != cmd {
				root.SetContext(ctx)
			}
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path (default: $XDG_CONFIG_HOME/wifiscan/config.yaml)")
	config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(serverCmd.NewCommand())
	cmd.AddCommand(newScanCommand())
	cmd.AddCommand(newConfigCommand())
	cmd.AddCommand(newVersionCommand(cliExecutable))

	return cmd
}
