// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

/*
Package services provides suture.Service wrappers for gateway components.

This package adapts existing application components to the suture v4 supervision
model, translating various lifecycle patterns (Start/Stop, Run, ListenAndServe)
into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation (Start/Stop to Serve pattern)
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Worker services (internal/worker) are not defined in this package - each
AnalyzerKind's worker type (the in-process word-list speller, the process-backed
grammar checker, or the per-word lookup hyphenator) implements suture.Service directly, since its Serve
loop already owns reading from and writing to its mailbox.

# Usage Example

Creating and registering services:

	import (
	    "net/http"
	    "time"

	    "github.com/giellalt/langgate/internal/supervisor"
	    "github.com/giellalt/langgate/internal/supervisor/services"
	)

	func setupSupervisor(server *http.Server) {
	    tree, _ := supervisor.NewSupervisorTree(logger, config)

	    httpSvc := services.NewHTTPServerService(server, 10*time.Second)
	    tree.AddAPIService(httpSvc)

	    tree.Serve(ctx)
	}

# Lifecycle Patterns

The package handles the ListenAndServe lifecycle pattern:

	type Listener interface {
	    ListenAndServe() error
	    Shutdown(ctx context.Context) error
	}

	// Wrapped as:
	func (s *Service) Serve(ctx context.Context) error {
	    go s.server.ListenAndServe()
	    <-ctx.Done()
	    if err := s.server.Shutdown(shutdownCtx); err != nil {
	        return err
	    }
	    return ctx.Err()
	}

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

# Service Identification

All services implement fmt.Stringer for logging:

	func (h *HTTPServerService) String() string {
	    return "http-server"
	}

Suture uses this for log messages:

	INFO http-server: starting
	INFO http-server: stopped
	ERROR http-server: restarting after failure

# Testing

Services can be tested with mock components implementing the narrow
interface each wrapper depends on (HTTPServer here), rather than the
concrete stdlib type, so tests don't need a real listening socket.

# See Also

  - internal/supervisor: SupervisorTree that manages these services
  - internal/worker: worker types that implement suture.Service directly
  - github.com/thejerf/suture/v4: Underlying supervision library
*/
package services
