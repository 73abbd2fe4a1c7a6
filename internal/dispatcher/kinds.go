// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package dispatcher

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/apierr"
	"github.com/giellalt/langgate/internal/registry"
	"github.com/giellalt/langgate/internal/worker"
)

// SpellerDispatcher routes speller requests to the worker registered for
// the requested language.
type SpellerDispatcher struct {
	router *Router[*worker.SpellerWorker, worker.SpellerRequest, worker.SpellerResponse]
}

// NewSpellerDispatcher builds a SpellerDispatcher over reg.
func NewSpellerDispatcher(reg *registry.Registry[*worker.SpellerWorker]) *SpellerDispatcher {
	return &SpellerDispatcher{
		router: NewRouter[*worker.SpellerWorker, worker.SpellerRequest, worker.SpellerResponse](
			analyzer.Speller.String(), reg.Get,
		),
	}
}

// Check runs text through the speller registered for language.
func (d *SpellerDispatcher) Check(ctx context.Context, language analyzer.LanguageKey, text string) (worker.SpellerResponse, *apierr.Error) {
	return d.router.Dispatch(ctx, language, worker.SpellerRequest{Text: text})
}

// SetRateLimit bounds sustained speller request throughput; see
// Router.SetRateLimit.
func (d *SpellerDispatcher) SetRateLimit(requestsPerSecond rate.Limit, burst int) {
	d.router.SetRateLimit(requestsPerSecond, burst)
}

// GrammarDispatcher routes grammar check requests to the worker
// registered for the requested language.
type GrammarDispatcher struct {
	router *Router[*worker.GrammarWorker, worker.GrammarRequest, worker.GrammarResponse]
}

// NewGrammarDispatcher builds a GrammarDispatcher over reg.
func NewGrammarDispatcher(reg *registry.Registry[*worker.GrammarWorker]) *GrammarDispatcher {
	return &GrammarDispatcher{
		router: NewRouter[*worker.GrammarWorker, worker.GrammarRequest, worker.GrammarResponse](
			analyzer.GrammarChecker.String(), reg.Get,
		),
	}
}

// Check runs text through the grammar checker registered for language.
func (d *GrammarDispatcher) Check(ctx context.Context, language analyzer.LanguageKey, text string) (worker.GrammarResponse, *apierr.Error) {
	return d.router.Dispatch(ctx, language, worker.GrammarRequest{Text: text})
}

// SetRateLimit bounds sustained grammar check throughput; see
// Router.SetRateLimit.
func (d *GrammarDispatcher) SetRateLimit(requestsPerSecond rate.Limit, burst int) {
	d.router.SetRateLimit(requestsPerSecond, burst)
}

// HyphenatorDispatcher routes hyphenation requests to the worker
// registered for the requested language.
type HyphenatorDispatcher struct {
	router *Router[*worker.HyphenationWorker, worker.HyphenationRequest, worker.HyphenationResponse]
}

// NewHyphenatorDispatcher builds a HyphenatorDispatcher over reg.
func NewHyphenatorDispatcher(reg *registry.Registry[*worker.HyphenationWorker]) *HyphenatorDispatcher {
	return &HyphenatorDispatcher{
		router: NewRouter[*worker.HyphenationWorker, worker.HyphenationRequest, worker.HyphenationResponse](
			analyzer.Hyphenator.String(), reg.Get,
		),
	}
}

// Hyphenate runs text through the hyphenator registered for language.
func (d *HyphenatorDispatcher) Hyphenate(ctx context.Context, language analyzer.LanguageKey, text string) (worker.HyphenationResponse, *apierr.Error) {
	return d.router.Dispatch(ctx, language, worker.HyphenationRequest{Text: text})
}

// SetRateLimit bounds sustained hyphenation request throughput; see
// Router.SetRateLimit.
func (d *HyphenatorDispatcher) SetRateLimit(requestsPerSecond rate.Limit, burst int) {
	d.router.SetRateLimit(requestsPerSecond, burst)
}
