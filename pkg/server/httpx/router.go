package httpx

import (
	"net/http"

	"github.com/vulntor/wifiscan/pkg/config"
	"github.com/vulntor/wifiscan/pkg/server/api"
	v1 "github.com/vulntor/wifiscan/pkg/server/api/v1"
)

// NewRouter creates and configures the main HTTP router.
//
// Health endpoints are always mounted. The scan and version endpoints are
// mounted when cfg.APIEnabled is set, deps.Metrics when cfg.MetricsEnabled
// is set, and ui (if non-nil) is mounted as the
// GET catch-all when cfg.UIEnabled is set. Go 1.22 pattern precedence keeps
// /scan and the health routes ahead of the catch-all.
func NewRouter(cfg config.ServerConfig, deps *api.Deps, ui http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", v1.HealthzHandler)
	mux.HandleFunc("GET /readyz", v1.ReadyzHandler(deps.Ready))

	if cfg.APIEnabled {
		mux.HandleFunc("GET /scan", v1.ScanHandler(deps))
		mux.HandleFunc("GET /api/v1/version", v1.VersionHandler)
	}

	if cfg.MetricsEnabled && deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	if cfg.UIEnabled && ui != nil {
		mux.Handle("GET /", ui)
	}

	return mux
}
