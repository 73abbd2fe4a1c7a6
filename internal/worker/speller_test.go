// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package worker

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giellalt/langgate/internal/workererr"
)

func writeTestArchive(t *testing.T, words []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "se.zhfst")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	entry, err := zw.Create(wordListEntry)
	require.NoError(t, err)

	content := ""
	for _, w := range words {
		content += w + "\n"
	}
	_, err = entry.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return path
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshtein("oaidná", "oaidná"))
	assert.Equal(t, 1, levenshtein("oaina", "oainá"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}

func TestSpellerWorkerCorrectWordHasNoSuggestions(t *testing.T) {
	path := writeTestArchive(t, []string{"oaidná", "beana", "gáfestallat"})
	w := NewSpellerWorker("se", path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Serve(ctx)

	resp, err := w.Submit(context.Background(), SpellerRequest{Text: "oaidná"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].IsCorrect)
	assert.Empty(t, resp.Results[0].Suggestions)

	w.Stop()
}

func TestSpellerWorkerMisspellingGetsNearestSuggestions(t *testing.T) {
	path := writeTestArchive(t, []string{"oaidná", "beana", "gáfestallat"})
	w := NewSpellerWorker("se", path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Serve(ctx)

	resp, err := w.Submit(context.Background(), SpellerRequest{Text: "oaina"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.False(t, result.IsCorrect)
	require.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "oaidná", result.Suggestions[0].Value)

	w.Stop()
}

func TestSpellerWorkerMissingArchiveIsLoadFailure(t *testing.T) {
	w := NewSpellerWorker("se", "/does/not/exist.zhfst")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := w.Serve(ctx)
	require.Error(t, err)
}

func TestLoadSpellerWorkerValidatesArchiveBeforeReturning(t *testing.T) {
	_, err := LoadSpellerWorker("se", "/does/not/exist.zhfst")

	var werr *workererr.Error
	require.Error(t, err)
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, workererr.LoadFailure, werr.Kind)
}

func TestLoadSpellerWorkerSucceedsAndServesWithoutReloading(t *testing.T) {
	path := writeTestArchive(t, []string{"oaidná"})
	w, err := LoadSpellerWorker("se", path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Serve(ctx)

	resp, err := w.Submit(context.Background(), SpellerRequest{Text: "oaidná"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].IsCorrect)

	w.Stop()
}
