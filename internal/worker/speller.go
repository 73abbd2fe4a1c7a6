// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package worker

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/workererr"
)

// SpellerConfig mirrors the fixed tuning knobs a spelling model is
// loaded with. Every worker uses the same values; the struct exists so
// the knobs are named and documented in one place rather than scattered
// as magic numbers.
type SpellerConfig struct {
	NBest              int
	MaxWeight          float64
	WithCaps           bool
	PoolStart          int
	PoolMax            int
	SeenNodeSampleRate int
}

// DefaultSpellerConfig is the configuration every speller worker loads
// with. It is not user-configurable.
func DefaultSpellerConfig() SpellerConfig {
	return SpellerConfig{
		NBest:              5,
		MaxWeight:          10000,
		WithCaps:           true,
		PoolStart:          128,
		PoolMax:            128,
		SeenNodeSampleRate: 20,
	}
}

// wordListEntry is the archive member a speller model stores its
// accepted vocabulary in: a plain newline-delimited word list. This is
// a deliberate simplification of the weighted finite-state acceptor a
// production spelling model actually ships; see the accompanying design
// notes for why.
const wordListEntry = "words.txt"

// loadWordList opens path as a zip archive and reads its word list
// entry into a set.
func loadWordList(path string) (map[string]struct{}, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, workererr.Wrap(workererr.LoadFailure, err, "opening speller archive %s", path)
	}
	defer archive.Close()

	for _, f := range archive.File {
		if f.Name != wordListEntry {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, workererr.Wrap(workererr.LoadFailure, err, "reading %s from %s", wordListEntry, path)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, workererr.Wrap(workererr.LoadFailure, err, "reading %s from %s", wordListEntry, path)
		}

		words := make(map[string]struct{})
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				words[line] = struct{}{}
			}
		}
		return words, nil
	}

	return nil, workererr.New(workererr.LoadFailure, "speller archive %s has no %s entry", path, wordListEntry)
}

// SpellerWorker checks words against the accepted vocabulary loaded from
// a model archive and proposes corrections for misspellings by nearest
// edit distance.
type SpellerWorker struct {
	*mailbox[SpellerRequest, SpellerResponse]

	language  analyzer.LanguageKey
	modelPath string
	config    SpellerConfig
	words     map[string]struct{}
}

// NewSpellerWorker builds a SpellerWorker for the given language backed
// by the archive at modelPath, without opening it. Prefer
// LoadSpellerWorker at registration time so a corrupt archive is
// reported as a LoadFailure before the worker is ever registered; this
// constructor exists for tests that supply their own word list.
func NewSpellerWorker(language analyzer.LanguageKey, modelPath string) *SpellerWorker {
	return &SpellerWorker{
		mailbox:   newMailbox[SpellerRequest, SpellerResponse](),
		language:  language,
		modelPath: modelPath,
		config:    DefaultSpellerConfig(),
	}
}

// LoadSpellerWorker opens the archive at modelPath and builds a
// SpellerWorker from it, returning a LoadFailure error if the archive
// is missing, unreadable, or has no word list entry. Callers that
// register a worker through Registry.Add should use this so a corrupt
// archive is caught before Add ever swaps the worker in, matching the
// same build-before-register pattern GrammarHandler uses for
// preferences validation.
func LoadSpellerWorker(language analyzer.LanguageKey, modelPath string) (*SpellerWorker, error) {
	words, err := loadWordList(modelPath)
	if err != nil {
		return nil, err
	}
	w := NewSpellerWorker(language, modelPath)
	w.words = words
	return w, nil
}

func (w *SpellerWorker) String() string {
	return fmt.Sprintf("speller-worker[%s]", w.language)
}

// Stop deliberately terminates the worker.
func (w *SpellerWorker) Stop() {
	w.mailbox.stop()
}

// Submit checks every word in req.Text against the loaded vocabulary.
func (w *SpellerWorker) Submit(ctx context.Context, req SpellerRequest) (SpellerResponse, error) {
	return w.mailbox.submit(ctx, req)
}

// Serve implements suture.Service. If the archive was not already
// loaded by LoadSpellerWorker, it is opened here before the mailbox is
// drained; a load failure is fatal for the worker and triggers a
// supervised restart unless the worker was deliberately stopped first.
func (w *SpellerWorker) Serve(ctx context.Context) error {
	if w.words == nil {
		words, err := loadWordList(w.modelPath)
		if err != nil {
			return err
		}
		w.words = words
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case j := <-w.jobs:
			resp := w.process(j.req)
			j.reply <- jobResult[SpellerResponse]{resp: resp, err: nil}
		}
	}
}

func (w *SpellerWorker) process(req SpellerRequest) SpellerResponse {
	words := tokenizeWords(req.Text)

	results := make([]SpellerResult, 0, len(words))
	for _, word := range words {
		results = append(results, w.check(word))
	}

	return SpellerResponse{Text: req.Text, Results: results}
}

func (w *SpellerWorker) check(word string) SpellerResult {
	lookup := word
	if !w.config.WithCaps {
		lookup = strings.ToLower(word)
	}

	if _, ok := w.words[lookup]; ok {
		return SpellerResult{Word: word, IsCorrect: true, Suggestions: nil}
	}

	return SpellerResult{Word: word, IsCorrect: false, Suggestions: w.suggest(lookup)}
}

// suggest returns up to NBest candidates from the vocabulary nearest to
// word by Levenshtein distance, used as the suggestion weight. Distances
// at or beyond MaxWeight are excluded.
func (w *SpellerWorker) suggest(word string) []Suggestion {
	type candidate struct {
		value  string
		weight float64
	}

	var candidates []candidate
	for v := range w.words {
		d := float64(levenshtein(word, v))
		if d >= w.config.MaxWeight {
			continue
		}
		candidates = append(candidates, candidate{value: v, weight: d})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight < candidates[j].weight
		}
		return candidates[i].value < candidates[j].value
	})

	if len(candidates) > w.config.NBest {
		candidates = candidates[:w.config.NBest]
	}

	suggestions := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = Suggestion{Value: c.value, Weight: c.weight}
	}
	return suggestions
}

// levenshtein returns the edit distance between a and b, operating on
// runes so multi-byte characters count as a single edit.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
