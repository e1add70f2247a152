// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package announce advertises the scanner HTTP server on the local network over mDNS.
package announce

import (
	"errors"
	"fmt"
	"net"

	"github.com/hashicorp/mdns"
	"github.com/rs/zerolog"

	"github.com/vulntor/wifiscan/pkg/config"
	"github.com/vulntor/wifiscan/pkg/version"
)

// ErrDisabled is returned by Start when announcement is turned off.
var ErrDisabled = errors.New("mdns announcement disabled")

// Announcer owns a running mDNS responder.
type Announcer struct {
	server *mdns.Server
	zone   *mdns.MDNSService
	logger zerolog.Logger
}

// Start registers the HTTP server described by addr and port.
// An unspecified addr (empty, 0.0.0.0, ::) lets mdns resolve the host's IPs.
func Start(cfg config.AnnounceConfig, addr string, port int, logger zerolog.Logger) (*Announcer, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	zone, err := newZone(cfg, "", listenIPs(addr), port)
	if err != nil {
		return nil, err
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: zone})
	if err != nil {
		return nil, fmt.Errorf("start mdns responder: %w", err)
	}

	a := &Announcer{
		server: server,
		zone:   zone,
		logger: logger.With().Str("component", "announce").Logger(),
	}
	a.logger.Info().
		Str("instance", zone.Instance).
		Str("service", zone.Service).
		Int("port", zone.Port).
		Msg("Advertising scanner over mDNS")

	return a, nil
}

// Shutdown stops the responder. Safe to call on a nil Announcer.
func (a *Announcer) Shutdown() error {
	if a == nil || a.server == nil {
		return nil
	}
	if err := a.server.Shutdown(); err != nil {
		return fmt.Errorf("stop mdns responder: %w", err)
	}
	a.logger.Info().Msg("mDNS responder stopped")
	return nil
}

func newZone(cfg config.AnnounceConfig, hostName string, ips []net.IP, port int) (*mdns.MDNSService, error) {
	txt := []string{
		"path=/scan",
		"version=" + version.Version,
	}

	zone, err := mdns.NewMDNSService(cfg.Instance, cfg.Service, "", hostName, port, ips, txt)
	if err != nil {
		return nil, fmt.Errorf("build mdns zone: %w", err)
	}
	return zone, nil
}

func listenIPs(addr string) []net.IP {
	ip := net.ParseIP(addr)
	if ip == nil || ip.IsUnspecified() {
		return nil
	}
	return []net.IP{ip}
}
