package format

import (
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// FromCommand builds a Formatter using cobra command output/error writers and common flags.
func FromCommand(cmd *cobra.Command) Formatter {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	outputMode := ModeTable
	if flag := cmd.Flags().Lookup("output"); flag != nil {
		outputMode = ParseMode(flag.Value.String())
	}

	quiet := false
	if flag := cmd.Flags().Lookup("quiet"); flag != nil {
		quiet = cast.ToBool(flag.Value.String())
	}

	color := true
	if flag := cmd.Flags().Lookup("no-color"); flag != nil && cast.ToBool(flag.Value.String()) {
		color = false
	}

	// Cobra defaults to stderr being nil in some paths; ensure we have a fallback.
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return New(stdout, stderr, outputMode, quiet, color)
}
