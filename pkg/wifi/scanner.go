// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package wifi

import "context"

// Scanner produces the list of visible networks.
type Scanner interface {
	Scan(ctx context.Context) ([]Network, error)
}

// DevScanner returns a fixed set of placeholder networks.
// It performs no device I/O and never fails.
type DevScanner struct{}

// NewDevScanner creates a DevScanner.
func NewDevScanner() *DevScanner {
	return &DevScanner{}
}

// Scan returns a freshly allocated copy of the dev networks, in fixed order.
func (s *DevScanner) Scan(_ context.Context) ([]Network, error) {
	return DevNetworks(), nil
}

// DevNetworks returns the placeholder network list.
func DevNetworks() []Network {
	return []Network{
		{SSID: "Dev Network 1", RSSI: -45, Channel: 1, Auth: AuthWPA2},
		{SSID: "Dev Network 2", RSSI: -70, Channel: 6, Auth: AuthOpen},
		{SSID: "Dev Network 3", RSSI: -85, Channel: 11, Auth: AuthWPA3},
	}
}

// ScannerFunc adapts a function to the Scanner interface.
type ScannerFunc func(ctx context.Context) ([]Network, error)

// Scan calls f(ctx).
func (f ScannerFunc) Scan(ctx context.Context) ([]Network, error) {
	return f(ctx)
}
