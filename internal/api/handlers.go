// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package api exposes the gateway's HTTP surface: per-kind suggestion
// endpoints, a language catalog endpoint, a grammar preferences endpoint,
// and the GraphQL/GraphiQL mount points, wired to internal/dispatcher and
// internal/preferences.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/apierr"
	"github.com/giellalt/langgate/internal/dispatcher"
	"github.com/giellalt/langgate/internal/langnames"
	"github.com/giellalt/langgate/internal/preferences"
	"github.com/giellalt/langgate/internal/registry"
	"github.com/giellalt/langgate/internal/worker"
)

// Handler implements every HTTP endpoint the gateway serves. It holds no
// state of its own beyond references to the dispatchers, registries, and
// preference cache it was built with.
type Handler struct {
	speller    *dispatcher.SpellerDispatcher
	grammar    *dispatcher.GrammarDispatcher
	hyphenator *dispatcher.HyphenatorDispatcher

	spellerRegistry    *registry.Registry[*worker.SpellerWorker]
	grammarRegistry    *registry.Registry[*worker.GrammarWorker]
	hyphenatorRegistry *registry.Registry[*worker.HyphenationWorker]

	preferences *preferences.Cache
}

// NewHandler builds a Handler wired to the given dispatchers, registries
// and preference cache. All seven arguments are required: the registries
// back /languages, the dispatchers back the three suggestion endpoints,
// and the cache backs /preferences/grammar/{lang}.
func NewHandler(
	speller *dispatcher.SpellerDispatcher,
	grammar *dispatcher.GrammarDispatcher,
	hyphenator *dispatcher.HyphenatorDispatcher,
	spellerRegistry *registry.Registry[*worker.SpellerWorker],
	grammarRegistry *registry.Registry[*worker.GrammarWorker],
	hyphenatorRegistry *registry.Registry[*worker.HyphenationWorker],
	prefs *preferences.Cache,
) *Handler {
	return &Handler{
		speller:            speller,
		grammar:            grammar,
		hyphenator:         hyphenator,
		spellerRegistry:    spellerRegistry,
		grammarRegistry:    grammarRegistry,
		hyphenatorRegistry: hyphenatorRegistry,
		preferences:        prefs,
	}
}

// languagesResponse is the body of GET /languages.
type languagesResponse struct {
	Available map[string]map[string]string `json:"available"`
}

// Languages reports every language currently registered for each
// analyzer kind, with display titles resolved through langnames.Title.
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	resp := languagesResponse{
		Available: map[string]map[string]string{
			analyzer.GrammarChecker.String(): titlesFor(h.grammarRegistry.Keys()),
			analyzer.Speller.String():        titlesFor(h.spellerRegistry.Keys()),
			analyzer.Hyphenator.String():      titlesFor(h.hyphenatorRegistry.Keys()),
		},
	}
	writeJSON(w, http.StatusOK, resp)
}

func titlesFor(keys []analyzer.LanguageKey) map[string]string {
	titles := make(map[string]string, len(keys))
	for _, key := range keys {
		titles[string(key)] = langnames.Title(string(key))
	}
	return titles
}

// Speller handles POST /speller/{lang}.
func (h *Handler) Speller(w http.ResponseWriter, r *http.Request) {
	lang := analyzer.LanguageKey(chi.URLParam(r, "lang"))

	var req worker.SpellerRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	resp, apiErr := h.speller.Check(r.Context(), lang, req.Text)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Grammar handles POST /grammar/{lang}.
func (h *Handler) Grammar(w http.ResponseWriter, r *http.Request) {
	lang := analyzer.LanguageKey(chi.URLParam(r, "lang"))

	var req worker.GrammarRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	resp, apiErr := h.grammar.Check(r.Context(), lang, req.Text)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Hyphenation handles POST /hyphenation/{lang}.
func (h *Handler) Hyphenation(w http.ResponseWriter, r *http.Request) {
	lang := analyzer.LanguageKey(chi.URLParam(r, "lang"))

	var req worker.HyphenationRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	resp, apiErr := h.hyphenator.Hyphenate(r.Context(), lang, req.Text)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Status     string           `json:"status"`
	Registries []registry.Stats `json:"registries"`
}

// Healthz reports how many workers are currently available for each
// analyzer kind, a liveness signal independent of /languages' per-language
// title lookup.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "ok",
		Registries: []registry.Stats{
			h.spellerRegistry.Stats(),
			h.grammarRegistry.Stats(),
			h.hyphenatorRegistry.Stats(),
		},
	}
	writeJSON(w, http.StatusOK, resp)
}

// grammarPreferencesResponse is the body of GET /preferences/grammar/{lang}.
type grammarPreferencesResponse struct {
	ErrorTags map[string]string `json:"error_tags"`
}

// GrammarPreferences handles GET /preferences/grammar/{lang}.
func (h *Handler) GrammarPreferences(w http.ResponseWriter, r *http.Request) {
	lang := analyzer.LanguageKey(chi.URLParam(r, "lang"))

	set, ok := h.preferences.Get(lang)
	if !ok {
		writeAPIError(w, apierr.NotFoundForLanguage("grammar preferences", string(lang)))
		return
	}

	writeJSON(w, http.StatusOK, grammarPreferencesResponse{ErrorTags: set.AsMap()})
}
