// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package v1

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vulntor/wifiscan/pkg/server/api"
	"github.com/vulntor/wifiscan/pkg/wifi"
)

// ScanHandler handles GET /scan
//
// Returns the networks reported by the configured scanner as a JSON array.
// Query parameters, headers and the request body are ignored.
//
// Response format:
//
//	[
//	  {"ssid":"Dev Network 1","rssi":-45,"channel":1,"auth":"WPA2"},
//	  {"ssid":"Dev Network 2","rssi":-70,"channel":6,"auth":"OPEN"},
//	  {"ssid":"Dev Network 3","rssi":-85,"channel":11,"auth":"WPA3"}
//	]
//
// Returns 500 if the scanner fails or the result cannot be encoded,
// 504 if the scanner outlives the handler timeout.
func ScanHandler(deps *api.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Scanner == nil {
			log.Error().
				Str("component", "api").
				Msg("No scanner configured")
			api.WriteJSONError(w, http.StatusInternalServerError, "Internal Server Error", "scanner unavailable")
			return
		}

		ctx := r.Context()
		if _, hasDeadline := ctx.Deadline(); !hasDeadline && deps.Config.HandlerTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, deps.Config.HandlerTimeout)
			defer cancel()
		}

		networks, err := deps.Scanner.Scan(ctx)
		if err != nil {
			api.WriteError(w, r, err)
			return
		}

		if networks == nil {
			networks = []wifi.Network{}
		}

		log.Debug().
			Str("component", "api").
			Int("networks", len(networks)).
			Msg("Scan served")

		api.WriteJSON(w, r, http.StatusOK, networks)
	}
}
