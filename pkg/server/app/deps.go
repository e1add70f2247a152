package app

import (
	"github.com/rs/zerolog"

	"github.com/vulntor/wifiscan/pkg/config"
	"github.com/vulntor/wifiscan/pkg/wifi"
)

// Deps holds dependencies for the server application.
type Deps struct {
	// Scanner supplies the networks served on GET /scan.
	// A nil Scanner falls back to the fixed development list.
	Scanner wifi.Scanner

	// Config manager for runtime configuration
	Config *config.Manager

	// Logger for structured logging (injected by caller)
	Logger zerolog.Logger
}
