// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package v1

import (
	"net/http"

	"github.com/vulntor/wifiscan/pkg/server/api"
	"github.com/vulntor/wifiscan/pkg/version"
)

// VersionHandler handles GET /api/v1/version
func VersionHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, r, http.StatusOK, version.Get())
}
