package v1

import (
	"net/http"
	"sync/atomic"
)

// HealthzHandler reports process liveness. It always returns 200 OK and does
// not look at the scanner or any other component.
func HealthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// ReadyzHandler returns 200 once the app has started serving and 503 before
// startup completes or after shutdown begins.
func ReadyzHandler(ready *atomic.Bool) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if ready != nil && ready.Load() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("Ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Not Ready"))
	}
}
