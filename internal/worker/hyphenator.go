// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package worker

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/workererr"
)

// HyphenationRunner invokes the backing hyphenation tool for a single
// word and returns its raw stdout. Satisfied in production by
// execHyphenationRunner; fakeable in tests.
type HyphenationRunner func(ctx context.Context, modelPath, word string) ([]byte, error)

// execHyphenationRunner runs `hfst-lookup -n 1 -q <modelPath>`, feeding
// word on stdin and capturing stdout.
func execHyphenationRunner(ctx context.Context, modelPath, word string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "hfst-lookup", "-n", "1", "-q", modelPath)
	cmd.Stdin = strings.NewReader(word)
	return cmd.Output()
}

// HyphenationWorker hyphenates one word at a time by invoking the
// backing transducer lookup tool per word. Unlike GrammarWorker it has
// no persistent child process: each word is an independent invocation,
// matching the one-shot nature of the lookup tool's protocol.
type HyphenationWorker struct {
	*mailbox[HyphenationRequest, HyphenationResponse]

	language  analyzer.LanguageKey
	modelPath string
	run       HyphenationRunner
}

// NewHyphenationWorker builds a HyphenationWorker for the given language
// backed by the model at modelPath.
func NewHyphenationWorker(language analyzer.LanguageKey, modelPath string) *HyphenationWorker {
	return &HyphenationWorker{
		mailbox:   newMailbox[HyphenationRequest, HyphenationResponse](),
		language:  language,
		modelPath: modelPath,
		run:       execHyphenationRunner,
	}
}

func (w *HyphenationWorker) String() string {
	return fmt.Sprintf("hyphenation-worker[%s]", w.language)
}

// Stop deliberately terminates the worker.
func (w *HyphenationWorker) Stop() {
	w.mailbox.stop()
}

// Submit hyphenates every word in req.Text.
func (w *HyphenationWorker) Submit(ctx context.Context, req HyphenationRequest) (HyphenationResponse, error) {
	return w.mailbox.submit(ctx, req)
}

// Serve implements suture.Service. There is no long-lived child process
// to supervise here, so Serve simply drains the mailbox until stopped;
// a failure in one lookup never tears down the worker.
func (w *HyphenationWorker) Serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case j := <-w.jobs:
			resp, err := w.process(j.ctx, j.req)
			j.reply <- jobResult[HyphenationResponse]{resp: resp, err: err}
		}
	}
}

func (w *HyphenationWorker) process(ctx context.Context, req HyphenationRequest) (HyphenationResponse, error) {
	words := tokenizeWords(req.Text)

	results := make([]HyphenationResult, 0, len(words))
	for _, word := range words {
		out, err := w.run(ctx, w.modelPath, word)
		if err != nil {
			return HyphenationResponse{}, workererr.Wrap(workererr.Io, err, "running hyphenation lookup for %q", word)
		}

		patterns, err := parseHyphenationOutput(out)
		if err != nil {
			return HyphenationResponse{}, err
		}

		results = append(results, HyphenationResult{Word: word, Patterns: patterns})
	}

	return HyphenationResponse{Text: req.Text, Results: results}, nil
}

// parseHyphenationOutput parses hfst-lookup's tab-separated output.
// Each non-empty line has the shape "<input>\t<value>\t<weight>"; a line
// with fewer than three columns is a protocol violation, fatal for the
// request but not for the worker.
func parseHyphenationOutput(out []byte) ([]HyphenationPattern, error) {
	var patterns []HyphenationPattern

	for _, line := range strings.Split(string(bytes.TrimSpace(out)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		components := strings.Split(line, "\t")
		if len(components) < 3 {
			return nil, workererr.New(workererr.Protocol, "hyphenation lookup returned %d columns, want at least 3", len(components))
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(components[2]), 64)
		if err != nil {
			return nil, workererr.Wrap(workererr.Protocol, err, "parsing hyphenation weight %q", components[2])
		}

		patterns = append(patterns, HyphenationPattern{Value: components[1], Weight: weight})
	}

	return patterns, nil
}

// tokenizeWords splits text on Unicode word boundaries, returning only
// the word-like runs (runs containing at least one letter or digit) and
// dropping punctuation and whitespace runs between them.
func tokenizeWords(text string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return words
}
