// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package registry implements the thread-safe LanguageKey -> Worker map
// used by every analyzer kind. One Registry instance exists per kind
// (speller, grammar, hyphenation); each is backed by the same shared
// analyzer-layer suture.Supervisor so a crash in one language's worker
// cannot affect any other.
package registry

import (
	"sync"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/logging"
	"github.com/giellalt/langgate/internal/metrics"
	"github.com/giellalt/langgate/internal/workererr"
)

// Worker is the contract every registry entry must satisfy: a
// suture.Service (Serve/String, for supervised restart) plus an
// idempotent Stop that distinguishes deliberate removal from a crash.
type Worker interface {
	suture.Service
	Stop()
}

// removeTimeout bounds how long Remove waits for a worker's Serve loop to
// observe Stop() and return, before giving up and reinserting the entry.
const removeTimeout = 5 * time.Second

type entry[W Worker] struct {
	token  suture.ServiceToken
	worker W
}

// Registry is a multi-reader/single-writer map from LanguageKey to a
// running Worker, scoped to one AnalyzerKind. Reads (Get) proceed in
// parallel; writes (Add, Remove) exclude all readers and each other.
//
// The handle returned by Get remains valid after the read lock is
// released: workers are plain pointers independent of the map slot, so a
// long-running request never holds the registry lock.
type Registry[W Worker] struct {
	mu         sync.RWMutex
	kind       analyzer.Kind
	supervisor *suture.Supervisor
	entries    map[analyzer.LanguageKey]entry[W]
}

// New builds an empty Registry for the given kind, whose dynamic worker
// services are added to and removed from the provided supervisor.
func New[W Worker](kind analyzer.Kind, supervisor *suture.Supervisor) *Registry[W] {
	return &Registry[W]{
		kind:       kind,
		supervisor: supervisor,
		entries:    make(map[analyzer.LanguageKey]entry[W]),
	}
}

// Add builds a worker for lang via newWorker and, only once that
// succeeds, atomically swaps it in under lang. If a worker already
// exists for lang, it is stopped and removed after the replacement is
// built, never before: a failed newWorker leaves any existing worker
// for lang untouched. Returns once the new worker has been registered
// with the supervisor.
func (r *Registry[W]) Add(lang analyzer.LanguageKey, newWorker func() (W, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	w, err := newWorker()
	if err != nil {
		return workererr.Wrap(workererr.LoadFailure, err, "building %s worker for %s", r.kind, lang)
	}
	metrics.RecordWorkerStartup(r.kind.String(), time.Since(start))

	if old, exists := r.entries[lang]; exists {
		r.stopAndForget(lang, old)
	}

	token := r.supervisor.Add(w)
	r.entries[lang] = entry[W]{token: token, worker: w}
	metrics.SetWorkersActive(r.kind.String(), len(r.entries))

	logging.Info().
		Str("kind", r.kind.String()).
		Str("language", string(lang)).
		Msg("worker registered")

	return nil
}

// Remove stops and removes the worker registered under lang. If the
// supervisor fails to confirm the worker stopped within removeTimeout,
// the entry is reinserted and the call fails, preserving the invariant
// that the registry reflects alive workers only.
func (r *Registry[W]) Remove(lang analyzer.LanguageKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.entries[lang]
	if !exists {
		return workererr.New(workererr.NotFound, "no %s worker registered for %s", r.kind, lang)
	}

	e.worker.Stop()
	delete(r.entries, lang)

	if err := r.supervisor.RemoveAndWait(e.token, removeTimeout); err != nil {
		r.entries[lang] = e
		return workererr.Wrap(workererr.Io, err, "stopping %s worker for %s", r.kind, lang)
	}
	metrics.SetWorkersActive(r.kind.String(), len(r.entries))

	logging.Info().
		Str("kind", r.kind.String()).
		Str("language", string(lang)).
		Msg("worker removed")

	return nil
}

// stopAndForget tears down a worker being replaced by Add, logging but
// not surfacing a removal failure: the caller is about to overwrite the
// slot regardless, matching the watcher's write = remove-then-add
// semantics.
func (r *Registry[W]) stopAndForget(lang analyzer.LanguageKey, e entry[W]) {
	e.worker.Stop()
	if err := r.supervisor.RemoveAndWait(e.token, removeTimeout); err != nil {
		logging.Warn().
			Str("kind", r.kind.String()).
			Str("language", string(lang)).
			Err(err).
			Msg("previous worker did not stop cleanly before replacement")
	}
}

// Get returns the worker registered for lang, if any. Absence is not an
// error at this layer: it is a miss the dispatcher turns into a
// structured response.
func (r *Registry[W]) Get(lang analyzer.LanguageKey) (W, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[lang]
	return e.worker, ok
}

// Keys returns every LanguageKey currently registered, in unspecified
// order.
func (r *Registry[W]) Keys() []analyzer.LanguageKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]analyzer.LanguageKey, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Count returns the number of workers currently registered and available
// to serve requests.
func (r *Registry[W]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Stats summarizes a registry's current state for a liveness probe.
type Stats struct {
	Kind      string `json:"kind"`
	Available int    `json:"available"`
}

// Stats reports how many workers of this registry's kind are currently
// registered and able to serve requests.
func (r *Registry[W]) Stats() Stats {
	return Stats{Kind: r.kind.String(), Available: r.Count()}
}
