// cmd/wifiscan/main.go
package main

import (
	"os"

	"github.com/vulntor/wifiscan/cmd/wifiscan/commands"
	"github.com/vulntor/wifiscan/cmd/wifiscan/internal/format"
	"github.com/vulntor/wifiscan/pkg/server"
)

// main runs the wifiscan CLI and maps failures to exit codes:
//   - 0: Success
//   - 1: General error (default)
//   - 2: Invalid usage/input (bad port, invalid configuration)
//   - 7: Server initialization failed (UI assets, app setup)
func main() {
	command := commands.NewCommand()

	if err := command.Execute(); err != nil {
		if !format.IsReported(err) {
			_ = format.New(os.Stdout, os.Stderr, format.ModeTable, false, true).PrintError(err)
		}
		os.Exit(server.ExitCode(err))
	}
}
