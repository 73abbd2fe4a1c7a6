// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/logging"
	"github.com/giellalt/langgate/internal/metrics"
)

// Watcher monitors the model file directories for every analyzer kind
// and keeps each kind's registry in sync, debouncing bursts of
// filesystem events (an editor's atomic save often fires several events
// for one logical change) before acting.
type Watcher struct {
	root     string
	handlers []KindHandler
	interval time.Duration

	newFsWatcher func() (*fsnotify.Watcher, error)
}

// New builds a Watcher rooted at root, debouncing events over interval
// before applying them, and dispatching to the given per-kind handlers.
func New(root string, interval time.Duration, handlers ...KindHandler) *Watcher {
	return &Watcher{
		root:         root,
		handlers:     handlers,
		interval:     interval,
		newFsWatcher: fsnotify.NewWatcher,
	}
}

func (w *Watcher) String() string { return "filesystem-watcher" }

// Serve implements suture.Service. It watches every kind's subdirectory
// and applies debounced Create/Write/Remove events to the corresponding
// registry until ctx is canceled.
func (w *Watcher) Serve(ctx context.Context) error {
	fsw, err := w.newFsWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	handlerByDir := make(map[string]KindHandler, len(w.handlers))
	for _, h := range w.handlers {
		dir := filepath.Join(w.root, h.Kind().Dir())
		if err := fsw.Add(dir); err != nil {
			logging.Warn().Str("dir", dir).Err(err).Msg("could not watch model directory")
			continue
		}
		handlerByDir[dir] = h
	}

	// pending holds, per path, the ordered sequence of distinct ops seen
	// during the current debounce window. A run of identical
	// consecutive ops collapses into one (a write-then-write burst);
	// a transition to a different op (e.g. create then remove) is kept
	// as a separate entry so both are applied in order when the timer
	// fires.
	pending := make(map[string][]fsnotify.Op)
	var timer *time.Timer
	var timerC <-chan time.Time

	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(w.interval)
		} else {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.interval)
		}
		timerC = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			metrics.RecordWatcherEvent(watcherOpLabel(ev.Op))

			if shouldCoalesce(pending[ev.Name], ev.Op) {
				metrics.RecordWatcherDebounceCoalesced()
			} else {
				pending[ev.Name] = append(pending[ev.Name], ev.Op)
			}
			resetTimer()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Warn().Err(err).Msg("filesystem watcher error")

		case <-timerC:
			for path, ops := range pending {
				for _, op := range ops {
					w.apply(ctx, handlerByDir, path, op)
				}
			}
			pending = make(map[string][]fsnotify.Op)
		}
	}
}

func (w *Watcher) apply(ctx context.Context, handlerByDir map[string]KindHandler, path string, op fsnotify.Op) {
	dir := filepath.Dir(path)
	h, ok := handlerByDir[dir]
	if !ok {
		return
	}

	ext := "." + h.Kind().Ext()
	name := filepath.Base(path)
	if filepath.Ext(name) != ext {
		logging.Debug().Str("path", path).Msg("ignoring filesystem event for unrelated file")
		return
	}
	lang := analyzer.LanguageKey(strings.TrimSuffix(name, ext))

	switch {
	case op.Has(fsnotify.Create):
		if err := h.TryAdd(ctx, lang, path); err != nil {
			logging.Warn().
				Str("kind", h.Kind().String()).
				Str("language", string(lang)).
				Err(err).
				Msg("ignoring new model file that failed to load")
		}

	case op.Has(fsnotify.Write):
		if err := h.TryAdd(ctx, lang, path); err != nil {
			logging.Warn().
				Str("kind", h.Kind().String()).
				Str("language", string(lang)).
				Err(err).
				Msg("keeping previous worker, replacement failed to load")
		}

	case op.Has(fsnotify.Remove):
		if err := h.Remove(lang); err != nil {
			logging.Warn().
				Str("kind", h.Kind().String()).
				Str("language", string(lang)).
				Err(err).
				Msg("failed to remove worker for deleted model file")
		}

	default:
		logging.Debug().
			Str("path", path).
			Str("op", op.String()).
			Msg("ignoring unhandled filesystem event")
	}
}

// shouldCoalesce reports whether op should be absorbed into the pending
// ops already queued for a path rather than appended as a new ordered
// entry. Only a repeat of the most recent op coalesces (a write-then-write
// burst); any transition to a different op, such as create followed by
// remove, is preserved so both are replayed in order.
func shouldCoalesce(pending []fsnotify.Op, op fsnotify.Op) bool {
	return len(pending) > 0 && pending[len(pending)-1] == op
}

// watcherOpLabel reduces an fsnotify.Op to the coarse label the
// WatcherEventsTotal metric is keyed on.
func watcherOpLabel(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	default:
		return "other"
	}
}
