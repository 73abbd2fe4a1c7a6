// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/giellalt/langgate/internal/metrics"
	"github.com/giellalt/langgate/internal/middleware"
)

// requestsPerMinutePerIP caps sustained traffic from a single client so a
// misbehaving integration cannot starve the worker mailboxes behind it.
// The boundary has no notion of authenticated callers, so the limit key
// is the request's IP address (via chimiddleware.RealIP, applied first).
const requestsPerMinutePerIP = 300

// chiMiddleware adapts our http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler, the same bridge the ambient stack
// uses elsewhere to let handler-style middleware run under Chi's r.Use.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// NewRouter builds the complete HTTP surface: the per-kind suggestion
// endpoints, the language catalog, the grammar preferences endpoint, and
// the GraphQL/GraphiQL mounts, all behind a single global middleware
// stack. CORS is wide open by design: the boundary is a public
// linguistic analysis service with no notion of an authenticated origin.
func NewRouter(h *Handler, graphqlHandler http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         3600,
	}))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(httprate.Limit(
		requestsPerMinutePerIP, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	))

	r.Get("/healthz", h.Healthz)
	r.Get("/languages", h.Languages)
	r.Post("/speller/{lang}", h.Speller)
	r.Post("/grammar/{lang}", h.Grammar)
	r.Post("/hyphenation/{lang}", h.Hyphenation)
	r.Get("/preferences/grammar/{lang}", h.GrammarPreferences)

	r.Handle("/graphql", graphqlHandler)
	r.Get("/graphiql", serveGraphiQL)

	r.Handle("/metrics", promhttp.Handler())

	return r
}

const graphiQLPage = `<!DOCTYPE html>
<html>
<head>
  <title>LangGate GraphiQL</title>
  <style>body { margin: 0; height: 100vh; }</style>
  <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
</head>
<body>
  <div id="graphiql" style="height: 100vh;"></div>
  <script crossorigin src="https://unpkg.com/react/umd/react.production.min.js"></script>
  <script crossorigin src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
  <script crossorigin src="https://unpkg.com/graphiql/graphiql.min.js"></script>
  <script>
    const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
    ReactDOM.render(
      React.createElement(GraphiQL, { fetcher: fetcher }),
      document.getElementById('graphiql'),
    );
  </script>
</body>
</html>
`

// serveGraphiQL serves a minimal GraphiQL UI pointed at /graphql.
func serveGraphiQL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(graphiQLPage))
}

// rateLimitExceeded records the rejection as a metric, then reports the
// same 429 a caller would see without a limit handler installed.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRateLimitHit(r.URL.Path)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	w.Write([]byte(http.StatusText(http.StatusTooManyRequests)))
}
