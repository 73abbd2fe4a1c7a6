// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package registry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thejerf/suture/v4"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/workererr"
)

// fakeWorker is a minimal Worker used to exercise Registry without any
// real analyzer dependency.
type fakeWorker struct {
	name       string
	stopped    atomic.Bool
	serveErrCh chan error
}

func newFakeWorker(name string) *fakeWorker {
	return &fakeWorker{name: name, serveErrCh: make(chan error, 1)}
}

func (f *fakeWorker) Serve(ctx context.Context) error {
	select {
	case err := <-f.serveErrCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeWorker) String() string { return f.name }

func (f *fakeWorker) Stop() {
	f.stopped.Store(true)
	select {
	case f.serveErrCh <- suture.ErrDoNotRestart:
	default:
	}
}

func newTestSupervisor() *suture.Supervisor {
	sup := suture.New("test-analyzer-layer", suture.Spec{})
	ctx, cancel := context.WithCancel(context.Background())
	go sup.Serve(ctx)
	// Caller is responsible for cancel via the returned supervisor's own
	// lifetime in this package's short-lived tests; tests run fast enough
	// that leaking one goroutine per supervisor is immaterial.
	_ = cancel
	return sup
}

func TestAddRegistersAndGetFindsWorker(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.Speller, sup)

	err := reg.Add("se", func() (*fakeWorker, error) {
		return newFakeWorker("se-speller"), nil
	})
	require.NoError(t, err)

	w, ok := reg.Get("se")
	require.True(t, ok)
	assert.Equal(t, "se-speller", w.name)
	assert.Equal(t, 1, reg.Count())
}

func TestGetMissingLanguageReturnsFalse(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.Speller, sup)

	_, ok := reg.Get("xx")
	assert.False(t, ok)
}

func TestAddReplacesExistingWorkerForSameLanguage(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.GrammarChecker, sup)

	require.NoError(t, reg.Add("se", func() (*fakeWorker, error) {
		return newFakeWorker("se-v1"), nil
	}))
	first, _ := reg.Get("se")

	require.NoError(t, reg.Add("se", func() (*fakeWorker, error) {
		return newFakeWorker("se-v2"), nil
	}))
	second, ok := reg.Get("se")
	require.True(t, ok)

	assert.True(t, first.stopped.Load())
	assert.Equal(t, "se-v2", second.name)
	assert.Equal(t, 1, reg.Count())
}

func TestAddPropagatesBuildFailureAsLoadFailure(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.Hyphenator, sup)

	err := reg.Add("se", func() (*fakeWorker, error) {
		return nil, errors.New("model file corrupt")
	})
	require.Error(t, err)

	var werr *workererr.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, workererr.LoadFailure, werr.Kind)

	_, ok := reg.Get("se")
	assert.False(t, ok)
}

func TestAddFailureLeavesExistingWorkerInPlace(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.GrammarChecker, sup)

	require.NoError(t, reg.Add("se", func() (*fakeWorker, error) {
		return newFakeWorker("se-v1"), nil
	}))

	err := reg.Add("se", func() (*fakeWorker, error) {
		return nil, errors.New("preferences load failed")
	})
	require.Error(t, err)

	w, ok := reg.Get("se")
	require.True(t, ok)
	assert.Equal(t, "se-v1", w.name)
	assert.False(t, w.stopped.Load())
}

func TestRemoveDeletesWorker(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.Speller, sup)

	require.NoError(t, reg.Add("se", func() (*fakeWorker, error) {
		return newFakeWorker("se-speller"), nil
	}))

	require.NoError(t, reg.Remove("se"))

	_, ok := reg.Get("se")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Count())
}

func TestRemoveMissingLanguageIsNotFound(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.Speller, sup)

	err := reg.Remove("se")
	require.Error(t, err)

	var werr *workererr.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, workererr.NotFound, werr.Kind)
}

func TestKeysListsAllRegisteredLanguages(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.Speller, sup)

	require.NoError(t, reg.Add("se", func() (*fakeWorker, error) { return newFakeWorker("se"), nil }))
	require.NoError(t, reg.Add("smj", func() (*fakeWorker, error) { return newFakeWorker("smj"), nil }))

	keys := reg.Keys()
	assert.ElementsMatch(t, []analyzer.LanguageKey{"se", "smj"}, keys)
}

func TestStatsReportsKindAndAvailableCount(t *testing.T) {
	sup := newTestSupervisor()
	reg := New[*fakeWorker](analyzer.Speller, sup)

	require.NoError(t, reg.Add("se", func() (*fakeWorker, error) { return newFakeWorker("se"), nil }))
	require.NoError(t, reg.Add("smj", func() (*fakeWorker, error) { return newFakeWorker("smj"), nil }))

	stats := reg.Stats()
	assert.Equal(t, "speller", stats.Kind)
	assert.Equal(t, 2, stats.Available)
}

// compile-time interface satisfaction check, asserting Worker
// conformance near the type definition.
var _ Worker = (*fakeWorker)(nil)
