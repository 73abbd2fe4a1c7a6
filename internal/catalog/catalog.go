// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package catalog enumerates on-disk model files for each analyzer kind.
// It is the one-shot startup scan; internal/watcher keeps the result
// fresh afterward using the same extension/stem rules.
package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/logging"
	"github.com/giellalt/langgate/internal/metrics"
)

// Scanner enumerates model files under a root directory.
type Scanner struct {
	root string
}

// NewScanner builds a Scanner rooted at the given data file directory.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// TypedDir returns the subdirectory holding model files of the given kind.
func (s *Scanner) TypedDir(kind analyzer.Kind) string {
	return filepath.Join(s.root, kind.Dir())
}

// Scan returns every non-directory entry under root/<kind.Dir()> whose extension
// equals kind.Ext(). Ordering is unspecified. A missing directory yields
// an empty, non-error result. A file whose stem does not decode as valid
// UTF-8 is skipped with a logged warning.
func (s *Scanner) Scan(kind analyzer.Kind) ([]analyzer.ModelFile, error) {
	dir := s.TypedDir(kind)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	ext := "." + kind.Ext()
	var files []analyzer.ModelFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ext {
			continue
		}

		stem := strings.TrimSuffix(name, ext)
		if !utf8.ValidString(stem) {
			logging.Warn().
				Str("kind", kind.String()).
				Str("file", name).
				Msg("skipping model file with non-UTF-8 stem")
			continue
		}

		files = append(files, analyzer.ModelFile{
			Kind:     kind,
			Language: analyzer.LanguageKey(stem),
			Path:     filepath.Join(dir, name),
		})
	}

	return files, nil
}

// ScanAll scans every known analyzer kind and returns the union of
// discovered model files.
func (s *Scanner) ScanAll() ([]analyzer.ModelFile, error) {
	start := time.Now()

	var all []analyzer.ModelFile
	for _, kind := range analyzer.AllKinds {
		files, err := s.Scan(kind)
		if err != nil {
			return nil, err
		}
		metrics.SetCatalogModelsDiscovered(kind.String(), len(files))
		all = append(all, files...)
	}

	metrics.RecordCatalogScan(time.Since(start))
	return all, nil
}
