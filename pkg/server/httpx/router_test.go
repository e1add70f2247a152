package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vulntor/wifiscan/pkg/config"
	"github.com/vulntor/wifiscan/pkg/server/api"
	"github.com/vulntor/wifiscan/pkg/wifi"
)

func newTestDeps() *api.Deps {
	return &api.Deps{
		Scanner: wifi.NewDevScanner(),
		Config:  api.DefaultConfig(),
		Ready:   &atomic.Bool{},
	}
}

var stubUI = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("ui:" + r.URL.Path))
})

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewRouter_HealthzMounted(t *testing.T) {
	router := NewRouter(config.DefaultServerConfig(), newTestDeps(), nil)

	w := serve(router, http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestNewRouter_ReadyzFollowsFlag(t *testing.T) {
	deps := newTestDeps()
	router := NewRouter(config.DefaultServerConfig(), deps, nil)

	require.Equal(t, http.StatusServiceUnavailable, serve(router, http.MethodGet, "/readyz").Code)

	deps.Ready.Store(true)
	require.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/readyz").Code)
}

func TestNewRouter_ScanMounted(t *testing.T) {
	router := NewRouter(config.DefaultServerConfig(), newTestDeps(), stubUI)

	w := serve(router, http.MethodGet, "/scan")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var networks []wifi.Network
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &networks))
	require.Equal(t, wifi.DevNetworks(), networks)
}

func TestNewRouter_ScanRejectsOtherMethods(t *testing.T) {
	router := NewRouter(config.DefaultServerConfig(), newTestDeps(), nil)

	w := serve(router, http.MethodPost, "/scan")

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNewRouter_VersionMounted(t *testing.T) {
	router := NewRouter(config.DefaultServerConfig(), newTestDeps(), nil)

	w := serve(router, http.MethodGet, "/api/v1/version")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"version"`)
}

func TestNewRouter_APIDisabled(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.APIEnabled = false
	router := NewRouter(cfg, newTestDeps(), nil)

	require.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/scan").Code)
	require.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/healthz").Code)
}

func TestNewRouter_UICatchAll(t *testing.T) {
	router := NewRouter(config.DefaultServerConfig(), newTestDeps(), stubUI)

	w := serve(router, http.MethodGet, "/styles.css")
	require.Equal(t, "ui:/styles.css", w.Body.String())

	// API route still wins over the catch-all
	w = serve(router, http.MethodGet, "/scan")
	require.True(t, strings.HasPrefix(w.Body.String(), "["))
}

func TestNewRouter_UIDisabled(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.UIEnabled = false
	router := NewRouter(cfg, newTestDeps(), stubUI)

	require.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/").Code)
}

func TestNewRouter_MetricsMounted(t *testing.T) {
	deps := newTestDeps()
	deps.Metrics = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})

	router := NewRouter(config.DefaultServerConfig(), deps, stubUI)
	require.Equal(t, "metrics", serve(router, http.MethodGet, "/metrics").Body.String())

	cfg := config.DefaultServerConfig()
	cfg.MetricsEnabled = false
	router = NewRouter(cfg, deps, stubUI)
	require.Equal(t, "ui:/metrics", serve(router, http.MethodGet, "/metrics").Body.String())
}

func TestChain_ScanThroughMiddleware(t *testing.T) {
	cfg := config.DefaultServerConfig()
	handler := Chain(cfg, NewRouter(cfg, newTestDeps(), nil))

	w := serve(handler, http.MethodGet, "/scan?ignored=1")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))

	var networks []wifi.Network
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &networks))
	require.Len(t, networks, 3)
}
