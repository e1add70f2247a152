// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package metrics exposes Prometheus metrics for the HTTP server and the
// networks the scanner currently reports.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/vulntor/wifiscan/pkg/wifi"
)

const namespace = "wifiscan"

// scrapeTimeout bounds the scan performed on each /metrics scrape.
const scrapeTimeout = 5 * time.Second

// routes are the label values for known paths; everything else is "other"
// so the UI catch-all can't grow label cardinality.
var routes = map[string]struct{}{
	"/scan":           {},
	"/healthz":        {},
	"/readyz":         {},
	"/api/v1/version": {},
	"/metrics":        {},
	"/":               {},
}

// Metrics owns a private registry with HTTP and scan collectors.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New builds the registry. scanner may be nil, in which case only HTTP
// metrics are exported.
func New(scanner wifi.Scanner) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(m.requests, m.duration)
	if scanner != nil {
		m.registry.MustRegister(&scanCollector{scanner: scanner})
	}
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := routeLabel(r.URL.Path)
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func routeLabel(path string) string {
	if _, ok := routes[path]; ok {
		return path
	}
	return "other"
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

var (
	scanUpDesc = prometheus.NewDesc(
		namespace+"_scan_up", "Whether the last scan succeeded.", nil, nil,
	)
	networksDesc = prometheus.NewDesc(
		namespace+"_networks_visible", "Number of networks in the last scan.", nil, nil,
	)
	rssiDesc = prometheus.NewDesc(
		namespace+"_network_rssi_dbm", "Strongest signal per ssid, channel and auth.", []string{"ssid", "channel", "auth"}, nil,
	)
)

// scanCollector scans on every scrape.
type scanCollector struct {
	scanner wifi.Scanner
}

func (c *scanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- scanUpDesc
	ch <- networksDesc
	ch <- rssiDesc
}

func (c *scanCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	networks, err := c.scanner.Scan(ctx)
	if err != nil {
		log.Warn().Str("component", "metrics").Err(err).Msg("Scan failed during scrape")
		ch <- prometheus.MustNewConstMetric(scanUpDesc, prometheus.GaugeValue, 0)
		return
	}

	ch <- prometheus.MustNewConstMetric(scanUpDesc, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(networksDesc, prometheus.GaugeValue, float64(len(networks)))
	for key, rssi := range strongestByLabels(networks) {
		ch <- prometheus.MustNewConstMetric(rssiDesc, prometheus.GaugeValue, float64(rssi),
			key.ssid, key.channel, key.auth)
	}
}

type rssiKey struct {
	ssid, channel, auth string
}

// strongestByLabels collapses records sharing a label set, such as hidden
// SSIDs on one channel, into one sample. A repeated label set fails the scrape.
func strongestByLabels(networks []wifi.Network) map[rssiKey]int {
	out := make(map[rssiKey]int, len(networks))
	for _, n := range networks {
		key := rssiKey{ssid: n.SSID, channel: strconv.Itoa(n.Channel), auth: n.Auth}
		if prev, ok := out[key]; !ok || n.RSSI > prev {
			out[key] = n.RSSI
		}
	}
	return out
}
