// Package server provides the Cobra command implementation for the wifiscan server lifecycle.
// It wires CLI flags to the server runtime and handles the start command.
package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vulntor/wifiscan/cmd/wifiscan/internal/bind"
	"github.com/vulntor/wifiscan/cmd/wifiscan/internal/format"
	"github.com/vulntor/wifiscan/pkg/appctx"
	"github.com/vulntor/wifiscan/pkg/config"
	"github.com/vulntor/wifiscan/pkg/logging"
	serversvc "github.com/vulntor/wifiscan/pkg/server"
	"github.com/vulntor/wifiscan/pkg/server/app"
	"github.com/vulntor/wifiscan/pkg/version"
	"github.com/vulntor/wifiscan/pkg/wifi"
)

const operation = "start server"

// newStartServerCommand creates and returns the 'wifiscan server start' command.
//
// The server hosts, in a single runtime:
//   - GET /scan returning the visible networks as JSON
//   - the scanner page (static UI)
//   - health and readiness endpoints (/healthz, /readyz)
//   - an optional mDNS advertisement
//
// The server runs until interrupted (SIGINT/SIGTERM), then shuts down
// gracefully. SIGHUP or an edit to the config file reloads configuration
// and applies the new log level.
//
// Example usage:
//
//	wifiscan server start
//	wifiscan server start --addr 0.0.0.0 --port 8080
//	wifiscan server start --announce
func newStartServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the wifiscan server",
		Long: `Start the wifiscan server process.

Configuration is merged from defaults, the config file (--config),
WIFISCAN_* environment variables and flags. Server flags given here
override the merged values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := format.FromCommand(cmd)

			opts, err := bind.BindServerOptions(cmd)
			if err != nil {
				return fail(formatter, err)
			}

			cfgMgr, ok := appctx.Config(cmd.Context())
			if !ok {
				return fail(formatter, serversvc.ErrConfigUnavailable)
			}

			cfg := opts.Apply(cfgMgr.Get())
			if err := cfg.Validate(); err != nil {
				return fail(formatter, serversvc.WrapInvalidConfig(err))
			}
			// Config and env can disable both features even when flags don't.
			if !cfg.Server.UIEnabled && !cfg.Server.APIEnabled {
				return fail(formatter, serversvc.NewFeaturesDisabledError())
			}

			logger := logging.Component("server")
			logger.Info().Str("build", version.Info()).Msg("Starting server")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			watchConfig(ctx, cfgMgr, logger)

			deps := &app.Deps{
				Scanner: wifi.NewDevScanner(),
				Config:  cfgMgr,
				Logger:  logger,
			}

			serverApp, err := app.New(ctx, cfg.Server, cfg.Announce, deps)
			if err != nil {
				return fail(formatter, serversvc.WrapAppInit(err))
			}

			if err := serverApp.Run(ctx); err != nil {
				return fail(formatter, serversvc.WrapRuntime(err))
			}

			return nil
		},
	}

	defaults := config.DefaultConfig()

	// Server-specific flags
	cmd.Flags().String("addr", defaults.Server.Addr, "Server listen address")
	cmd.Flags().Int("port", defaults.Server.Port, "Server listen port")
	cmd.Flags().Bool("no-ui", false, "Disable the scanner page")
	cmd.Flags().Bool("no-api", false, "Disable the scan and version endpoints")
	cmd.Flags().String("ui-assets-path", "", "UI assets directory (dev mode: serve from disk)")
	cmd.Flags().Bool("announce", defaults.Announce.Enabled, "Advertise the server over mDNS")

	return cmd
}

func fail(formatter format.Formatter, err error) error {
	return formatter.PrintTotalFailureSummary(operation, err, serversvc.ErrorCode(err), serversvc.Suggestions(err)...)
}

// watchConfig applies reloaded configuration on SIGHUP and, when a config
// file is in use, whenever that file changes. Only the log level is applied
// live; listener settings need a restart.
func watchConfig(ctx context.Context, cfgMgr *config.Manager, logger zerolog.Logger) {
	apply := func(cfg config.Config) {
		if err := logging.SetLevel(cfg.Log.Level); err != nil {
			logger.Warn().Err(err).Str("level", cfg.Log.Level).Msg("Ignoring invalid log level")
			return
		}
		logger.Info().Str("level", cfg.Log.Level).Msg("Applied reloaded configuration")
	}

	serversvc.NotifyReload(ctx, func() {
		if err := cfgMgr.Reload(); err != nil {
			logger.Error().Err(err).Msg("Config reload failed")
			return
		}
		apply(cfgMgr.Get())
	})

	watcher, err := config.NewWatcher(cfgMgr, apply, logger)
	if errors.Is(err, config.ErrNoConfigFile) {
		return
	}
	if err != nil {
		logger.Warn().Err(err).Msg("Config watcher unavailable")
		return
	}

	go func() {
		if err := watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn().Err(err).Msg("Config watcher stopped")
		}
	}()
}
