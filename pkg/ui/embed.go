// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package ui

import "embed"

// DistFS holds the built-in scanner page.
//
//go:embed dist
var DistFS embed.FS
