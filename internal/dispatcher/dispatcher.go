// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package dispatcher routes a request for a given language to the
// registered worker for that language, turning a registry miss or a
// worker failure into the single external error shape callers see.
// There is no retry: a worker failure is reported to the caller as-is,
// the same request is never resent.
package dispatcher

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/apierr"
	"github.com/giellalt/langgate/internal/metrics"
	"github.com/giellalt/langgate/internal/workererr"
)

// submitter is satisfied by every worker kind's Submit method, plus the
// mailbox depth gauge Dispatch reports alongside each request.
type submitter[Req, Resp any] interface {
	Submit(ctx context.Context, req Req) (Resp, error)
	MailboxDepth() int
}

// lookup is satisfied by registry.Registry[W].Get.
type lookup[W any] func(lang analyzer.LanguageKey) (W, bool)

// Router is the shared dispatch logic every typed dispatcher wraps: look
// the language up in its registry, and if found, forward the request to
// that worker's mailbox.
type Router[W submitter[Req, Resp], Req, Resp any] struct {
	kind    string
	get     lookup[W]
	limiter *rate.Limiter
}

// NewRouter builds a Router for the given kind label (used in the
// not-found error message) and registry lookup function. Dispatched
// traffic is unthrottled until SetRateLimit is called.
func NewRouter[W submitter[Req, Resp], Req, Resp any](kind string, get lookup[W]) *Router[W, Req, Resp] {
	return &Router[W, Req, Resp]{kind: kind, get: get, limiter: rate.NewLimiter(rate.Inf, 0)}
}

// SetRateLimit bounds the sustained rate of requests this Router will
// forward to any worker of its kind, smoothing bursts ahead of the
// single-threaded mailbox each worker serializes requests through.
func (r *Router[W, Req, Resp]) SetRateLimit(requestsPerSecond rate.Limit, burst int) {
	r.limiter = rate.NewLimiter(requestsPerSecond, burst)
}

// Dispatch looks up lang and, if a worker is registered, forwards req to
// it. A registry miss is reported as *apierr.Error; a worker failure is
// converted from its internal taxonomy to the same external shape. If a
// rate limit is configured, Dispatch waits for a token before forwarding
// and surfaces a canceled/deadline-exceeded ctx as its own apierr.
func (r *Router[W, Req, Resp]) Dispatch(ctx context.Context, lang analyzer.LanguageKey, req Req) (Resp, *apierr.Error) {
	var zero Resp
	start := time.Now()

	w, ok := r.get(lang)
	if !ok {
		metrics.RecordDispatch(r.kind, string(lang), "not_found", time.Since(start))
		return zero, apierr.NotFoundForLanguage(r.kind, string(lang))
	}

	if err := r.limiter.Wait(ctx); err != nil {
		metrics.RecordDispatch(r.kind, string(lang), "timeout", time.Since(start))
		return zero, apierr.New("request for %s %s exceeded its deadline waiting for capacity", r.kind, lang)
	}

	metrics.SetMailboxDepth(r.kind, string(lang), w.MailboxDepth())

	resp, err := w.Submit(ctx, req)
	if err != nil {
		metrics.RecordDispatch(r.kind, string(lang), "error", time.Since(start))
		return zero, workererr.ToAPIError(err)
	}
	metrics.RecordDispatch(r.kind, string(lang), "ok", time.Since(start))
	return resp, nil
}
