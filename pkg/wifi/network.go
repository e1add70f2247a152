// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package wifi defines the wireless network records served by the scan API.
package wifi

// Common authentication scheme labels. Auth values are free-form text;
// these constants only name the ones the dev data and UI use.
const (
	AuthOpen       = "OPEN"
	AuthWEP        = "WEP"
	AuthWPA        = "WPA"
	AuthWPA2       = "WPA2"
	AuthWPA3       = "WPA3"
	AuthWPA2WPA3   = "WPA2/WPA3"
	AuthEnterprise = "ENTERPRISE"
	AuthUnknown    = "UNKNOWN"
)

// Network is a single access point as reported by a scan.
// Field order matches the JSON wire order: ssid, rssi, channel, auth.
type Network struct {
	SSID    string `json:"ssid"`    // Service set identifier
	RSSI    int    `json:"rssi"`    // Signal strength in dBm (more negative = weaker)
	Channel int    `json:"channel"` // Radio channel number
	Auth    string `json:"auth"`    // Authentication scheme label
}

// Band returns the frequency band implied by the channel.
func (n Network) Band() string {
	if n.Channel >= 1 && n.Channel <= 14 {
		return "2.4GHz"
	}
	return "5GHz"
}
