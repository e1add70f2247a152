package commands

import (
	"github.com/spf13/cobra"

	"github.com/vulntor/wifiscan/cmd/wifiscan/internal/format"
	"github.com/vulntor/wifiscan/pkg/wifi"
)

// scanner is the source the scan command reads from; tests replace it.
var scanner wifi.Scanner = wifi.NewDevScanner()

func newScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print the networks served by GET /scan",
		Example: `  wifiscan scan
  wifiscan scan -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := format.FromCommand(cmd)

			output, _ := cmd.Flags().GetString("output")
			if err := format.ValidateMode(output); err != nil {
				return formatter.PrintTotalFailureSummary("scan", err, "INVALID_OUTPUT_MODE")
			}

			networks, err := scanner.Scan(cmd.Context())
			if err != nil {
				return formatter.PrintTotalFailureSummary("scan", err, "SCAN_FAILED")
			}

			return formatter.PrintNetworks(networks)
		},
	}

	cmd.Flags().StringP("output", "o", "table", "Output format (table, json)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress the summary line")

	return cmd
}
