// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides comprehensive instrumentation for:
// - API endpoint latency and throughput
// - Analyzer worker dispatch latency, mailbox depth, and failure rate
// - Worker startup time and active worker count per kind
// - Catalog scanning and filesystem watcher activity

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Dispatcher Metrics
	DispatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_requests_total",
			Help: "Total number of requests dispatched to analyzer workers",
		},
		[]string{"kind", "language", "result"}, // result: "ok", "not_found", "error", "timeout"
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dispatch_duration_seconds",
			Help:    "Duration of a request's round trip through a worker mailbox",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind", "language"},
	)

	DispatchMailboxDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dispatch_mailbox_depth",
			Help: "Current number of requests queued in a worker's mailbox",
		},
		[]string{"kind", "language"},
	)

	// Worker Lifecycle Metrics
	WorkerStartupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "worker_startup_duration_seconds",
			Help:    "Time taken to start an analyzer worker (spawn process or open archive)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	WorkersActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "workers_active",
			Help: "Current number of running analyzer workers",
		},
		[]string{"kind"},
	)

	// Catalog and Watcher Metrics
	CatalogScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_scan_duration_seconds",
			Help:    "Duration of a full catalog directory scan",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogModelsDiscovered = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_models_discovered",
			Help: "Current number of model files known to the catalog",
		},
		[]string{"kind"},
	)

	WatcherEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watcher_events_total",
			Help: "Total number of filesystem events observed by the model directory watcher",
		},
		[]string{"op"}, // "create", "write", "remove", "other"
	)

	WatcherDebounceCoalesced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "watcher_debounce_coalesced_total",
			Help: "Total number of filesystem events coalesced by the debounce timer",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejected request for an endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordDispatch records the outcome and latency of a dispatched request.
func RecordDispatch(kind, language, result string, duration time.Duration) {
	DispatchRequestsTotal.WithLabelValues(kind, language, result).Inc()
	DispatchDuration.WithLabelValues(kind, language).Observe(duration.Seconds())
}

// SetMailboxDepth updates the current queue depth gauge for a worker.
func SetMailboxDepth(kind, language string, depth int) {
	DispatchMailboxDepth.WithLabelValues(kind, language).Set(float64(depth))
}

// RecordWorkerStartup records how long a worker took to become ready.
func RecordWorkerStartup(kind string, duration time.Duration) {
	WorkerStartupDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// SetWorkersActive updates the count of running workers for a kind.
func SetWorkersActive(kind string, count int) {
	WorkersActive.WithLabelValues(kind).Set(float64(count))
}

// RecordCatalogScan records the duration of a catalog scan.
func RecordCatalogScan(duration time.Duration) {
	CatalogScanDuration.Observe(duration.Seconds())
}

// SetCatalogModelsDiscovered updates the discovered model count for a kind.
func SetCatalogModelsDiscovered(kind string, count int) {
	CatalogModelsDiscovered.WithLabelValues(kind).Set(float64(count))
}

// RecordWatcherEvent records a single filesystem event observed by the watcher.
func RecordWatcherEvent(op string) {
	WatcherEventsTotal.WithLabelValues(op).Inc()
}

// RecordWatcherDebounceCoalesced records an event that was absorbed by the debounce timer.
func RecordWatcherDebounceCoalesced() {
	WatcherDebounceCoalesced.Inc()
}
