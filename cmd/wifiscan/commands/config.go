package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vulntor/wifiscan/cmd/wifiscan/internal/format"
	"github.com/vulntor/wifiscan/pkg/appctx"
	srv "github.com/vulntor/wifiscan/pkg/server"
)

const redacted = "<redacted>"

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, the config file,
WIFISCAN_* environment variables and command-line flags.`,
		Example: `  wifiscan config show
  wifiscan config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, ok := appctx.Config(cmd.Context())
			if !ok {
				return srv.ErrConfigUnavailable
			}

			cfg := mgr.Get()
			if cfg.Server.Auth.Token != "" {
				cfg.Server.Auth.Token = redacted
			}

			output, _ := cmd.Flags().GetString("output")
			if output != "yaml" && output != "json" {
				return fmt.Errorf("invalid output mode: %s (must be 'yaml' or 'json')", output)
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}

			formatter := format.FromCommand(cmd)
			if formatter.IsJSON() {
				// Round-trip through YAML so keys match the config file.
				var tree map[string]any
				if err := yaml.Unmarshal(out, &tree); err != nil {
					return fmt.Errorf("encode configuration: %w", err)
				}
				return formatter.PrintJSON(tree)
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	show.Flags().StringP("output", "o", "yaml", "Output format (yaml, json)")

	cmd.AddCommand(show)
	return cmd
}
