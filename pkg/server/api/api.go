package api

import (
	"net/http"
	"sync/atomic"

	"github.com/vulntor/wifiscan/pkg/wifi"
)

// Deps holds dependencies for API handlers.
// This pattern enables dependency injection and easier testing.
type Deps struct {
	// Scanner supplies the networks returned by GET /scan
	Scanner wifi.Scanner

	// Config holds handler-level settings (timeouts)
	Config Config

	// Ready flag for readiness check
	Ready *atomic.Bool

	// Metrics serves GET /metrics; nil leaves the route unmounted
	Metrics http.Handler
}
