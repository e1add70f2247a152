package v1

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadyzHandler(t *testing.T) {
	ready := &atomic.Bool{}
	handler := ReadyzHandler(ready)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "Not Ready", w.Body.String())

	ready.Store(true)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Ready", w.Body.String())
}

func TestReadyzHandler_NilFlag(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	ReadyzHandler(nil).ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthzHandler_AlwaysReturnsOK(t *testing.T) {
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()

		HealthzHandler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())
	}
}
