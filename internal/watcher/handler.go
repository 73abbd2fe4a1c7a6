// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package watcher keeps the analyzer registries in sync with the model
// files on disk after startup, translating filesystem events into
// registry mutations.
package watcher

import (
	"context"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/preferences"
	"github.com/giellalt/langgate/internal/registry"
	"github.com/giellalt/langgate/internal/worker"
)

// KindHandler adapts one analyzer kind's registry to the watcher's
// event loop. TryAdd must build and validate the replacement before
// touching any existing registration, so a failed load never disturbs
// a worker already serving requests for that language.
type KindHandler interface {
	Kind() analyzer.Kind
	TryAdd(ctx context.Context, lang analyzer.LanguageKey, path string) error
	Remove(lang analyzer.LanguageKey) error
}

// SpellerHandler adapts a speller registry to KindHandler.
type SpellerHandler struct {
	Registry *registry.Registry[*worker.SpellerWorker]
}

func (h *SpellerHandler) Kind() analyzer.Kind { return analyzer.Speller }

func (h *SpellerHandler) TryAdd(_ context.Context, lang analyzer.LanguageKey, path string) error {
	return h.Registry.Add(lang, func() (*worker.SpellerWorker, error) {
		return worker.LoadSpellerWorker(lang, path)
	})
}

func (h *SpellerHandler) Remove(lang analyzer.LanguageKey) error {
	return h.Registry.Remove(lang)
}

// HyphenationHandler adapts a hyphenator registry to KindHandler.
type HyphenationHandler struct {
	Registry *registry.Registry[*worker.HyphenationWorker]
}

func (h *HyphenationHandler) Kind() analyzer.Kind { return analyzer.Hyphenator }

func (h *HyphenationHandler) TryAdd(_ context.Context, lang analyzer.LanguageKey, path string) error {
	return h.Registry.Add(lang, func() (*worker.HyphenationWorker, error) {
		return worker.NewHyphenationWorker(lang, path), nil
	})
}

func (h *HyphenationHandler) Remove(lang analyzer.LanguageKey) error {
	return h.Registry.Remove(lang)
}

// GrammarHandler adapts a grammar registry to KindHandler. Unlike the
// other two kinds, a grammar model also exposes a preferences list that
// must load successfully before the worker is registered: a model whose
// preferences cannot be read is ignored entirely, favoring availability
// of the previous worker (if any) over surfacing a half-loaded one.
type GrammarHandler struct {
	Registry    *registry.Registry[*worker.GrammarWorker]
	Preferences *preferences.Cache
}

func (h *GrammarHandler) Kind() analyzer.Kind { return analyzer.GrammarChecker }

func (h *GrammarHandler) TryAdd(ctx context.Context, lang analyzer.LanguageKey, path string) error {
	set, err := preferences.Load(ctx, preferences.ExecRunner, path)
	if err != nil {
		return err
	}

	if err := h.Registry.Add(lang, func() (*worker.GrammarWorker, error) {
		return worker.NewGrammarWorker(lang, path), nil
	}); err != nil {
		return err
	}

	h.Preferences.Set(lang, set)
	return nil
}

func (h *GrammarHandler) Remove(lang analyzer.LanguageKey) error {
	err := h.Registry.Remove(lang)
	h.Preferences.Delete(lang)
	return err
}
