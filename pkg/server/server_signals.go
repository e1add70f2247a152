// pkg/server/server_signals.go
//go:build !windows

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// NotifyReload calls reload on every SIGHUP until ctx is canceled.
func NotifyReload(ctx context.Context, reload func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP)

	go func() {
		defer signal.Stop(signals)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-signals:
				log.Info().Str("component", "server").Msgf("Reloading configuration on %v", sig)
				reload()
			}
		}
	}()
}
