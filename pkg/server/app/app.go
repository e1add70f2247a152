package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vulntor/wifiscan/pkg/announce"
	"github.com/vulntor/wifiscan/pkg/config"
	"github.com/vulntor/wifiscan/pkg/server"
	"github.com/vulntor/wifiscan/pkg/server/api"
	"github.com/vulntor/wifiscan/pkg/server/httpx"
	"github.com/vulntor/wifiscan/pkg/server/metrics"
	"github.com/vulntor/wifiscan/pkg/ui"
	"github.com/vulntor/wifiscan/pkg/wifi"
)

const shutdownTimeout = 30 * time.Second

// App orchestrates the server runtime components:
// - HTTP server (scan API + UI)
// - mDNS announcer
// - Lifecycle management
type App struct {
	HTTP     *http.Server
	Ready    *atomic.Bool
	Config   config.ServerConfig
	Announce config.AnnounceConfig
	Deps     *Deps

	mu        sync.Mutex
	listener  net.Listener
	announcer *announce.Announcer
}

// New creates and configures a new server application.
func New(_ context.Context, cfg config.ServerConfig, announceCfg config.AnnounceConfig, deps *Deps) (*App, error) {
	if deps == nil {
		return nil, errors.New("server deps are required")
	}
	deps.Logger.Info().Msg("Initializing server application")

	if deps.Scanner == nil {
		deps.Scanner = wifi.NewDevScanner()
	}

	ready := &atomic.Bool{}
	apiDeps := &api.Deps{
		Scanner: deps.Scanner,
		Config:  api.DefaultConfig(),
		Ready:   ready,
	}

	var uiHandler http.Handler
	if cfg.UIEnabled {
		h, err := ui.NewHandler(cfg)
		if err != nil {
			return nil, server.WrapUIInit(fmt.Errorf("ui handler: %w", err))
		}
		uiHandler = h
		if cfg.UI.AssetsPath != "" {
			deps.Logger.Info().Str("path", cfg.UI.AssetsPath).Msg("Serving UI assets from disk")
		}
	} else {
		deps.Logger.Warn().Msg("UI serving disabled")
	}

	if !cfg.APIEnabled {
		deps.Logger.Warn().Msg("API endpoints disabled")
	}

	var handler http.Handler
	if cfg.MetricsEnabled {
		m := metrics.New(deps.Scanner)
		apiDeps.Metrics = m.Handler()
		handler = m.Middleware(httpx.NewRouter(cfg, apiDeps, uiHandler))
	} else {
		handler = httpx.NewRouter(cfg, apiDeps, uiHandler)
	}

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Addr, strconv.Itoa(cfg.Port)),
		Handler:      httpx.Chain(cfg, handler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		HTTP:     httpServer,
		Ready:    ready,
		Config:   cfg,
		Announce: announceCfg,
		Deps:     deps,
	}, nil
}

// Addr returns the address the server is listening on, or nil before Run
// has bound its listener.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener == nil {
		return nil
	}
	return a.listener.Addr()
}

// Run starts the server and blocks until ctx is canceled or the server fails.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.HTTP.Addr, err)
	}
	a.mu.Lock()
	a.listener = ln
	a.mu.Unlock()

	a.Deps.Logger.Info().
		Str("addr", ln.Addr().String()).
		Bool("api", a.Config.APIEnabled).
		Bool("ui", a.Config.UIEnabled).
		Bool("metrics", a.Config.MetricsEnabled).
		Bool("announce", a.Announce.Enabled).
		Msg("Starting wifiscan server")

	serverErr := make(chan error, 1)
	go func() {
		if err := a.HTTP.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	a.startAnnouncer(ln.Addr())

	a.Ready.Store(true)
	a.Deps.Logger.Info().Msg("Server is ready and accepting connections")

	select {
	case <-ctx.Done():
		a.Deps.Logger.Info().Msg("Shutdown signal received")
	case err := <-serverErr:
		a.Deps.Logger.Error().Err(err).Msg("Server error")
		a.Ready.Store(false)
		a.stopAnnouncer()
		return err
	}

	return a.shutdown()
}

func (a *App) startAnnouncer(addr net.Addr) {
	port := a.Config.Port
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}

	ann, err := announce.Start(a.Announce, a.Config.Addr, port, a.Deps.Logger)
	switch {
	case errors.Is(err, announce.ErrDisabled):
	case err != nil:
		a.Deps.Logger.Warn().Err(err).Msg("mDNS announcer failed to start")
	default:
		a.mu.Lock()
		a.announcer = ann
		a.mu.Unlock()
	}
}

func (a *App) stopAnnouncer() {
	a.mu.Lock()
	ann := a.announcer
	a.announcer = nil
	a.mu.Unlock()

	if err := ann.Shutdown(); err != nil {
		a.Deps.Logger.Warn().Err(err).Msg("mDNS announcer shutdown failed")
	}
}

// shutdown performs graceful shutdown of all components.
func (a *App) shutdown() error {
	a.Deps.Logger.Info().Msg("Initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.Ready.Store(false)
	a.stopAnnouncer()

	a.Deps.Logger.Info().Msg("Shutting down HTTP server...")
	if err := a.HTTP.Shutdown(shutdownCtx); err != nil {
		a.Deps.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
		return err
	}

	a.Deps.Logger.Info().Msg("Server shutdown complete")
	return nil
}
