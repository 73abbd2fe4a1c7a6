// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements comprehensive application instrumentation using the Prometheus
client library, exposing metrics for monitoring request latency, worker startup, and
catalog/watcher activity.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Per-kind/per-language dispatch latency and outcome
  - Analyzer worker startup latency and active worker counts
  - Catalog scan duration and model counts
  - Filesystem watcher event volume

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rejected requests (counter)
    Labels: endpoint

Dispatch Metrics:
  - dispatch_requests_total: Requests dispatched to a worker (counter)
    Labels: kind, language, result
  - dispatch_duration_seconds: Mailbox round-trip latency (histogram)
    Labels: kind, language
  - dispatch_mailbox_depth: Current mailbox queue depth (gauge)
    Labels: kind, language

Worker Lifecycle Metrics:
  - worker_startup_duration_seconds: Time to become ready (histogram)
    Labels: kind
  - workers_active: Running workers (gauge)
    Labels: kind

Catalog and Watcher Metrics:
  - catalog_scan_duration_seconds: Full directory scan duration (histogram)
  - catalog_models_discovered: Known model files (gauge)
    Labels: kind
  - watcher_events_total: Filesystem events observed (counter)
    Labels: op
  - watcher_debounce_coalesced_total: Events absorbed by debounce (counter)

# Usage Example

Basic setup in main.go:

	import (
	    "github.com/giellalt/langgate/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    mux.Handle("/metrics", promhttp.Handler())

	    metrics.RecordDispatch("speller", "sme", "ok", 12*time.Millisecond)
	    metrics.SetWorkersActive("grammar", 4)
	}

Recording request metrics with middleware, see internal/middleware/prometheus.go.

# Prometheus Configuration

Example prometheus.yml configuration:

	scrape_configs:
	  - job_name: 'langgate'
	    static_configs:
	      - targets: ['localhost:8080']
	    metrics_path: '/metrics'
	    scrape_interval: 15s

Example PromQL queries:

	# API p95 latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))

	# Dispatch rate by kind and language
	sum by (kind, language) (rate(dispatch_requests_total[5m]))

	# Dispatch error rate
	sum(rate(dispatch_requests_total{result="error"}[5m])) / sum(rate(dispatch_requests_total[5m]))

# Cardinality Management

Label cardinality:

  - Endpoint labels are the raw request path (r.URL.Path); they are not
    normalized to route patterns
  - language labels take the language from the request path, so a request
    for an unregistered language also creates a label value
  - result/op labels are limited to predefined constants

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/dispatcher: dispatch metrics recording
  - internal/registry: worker lifecycle metrics recording
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
