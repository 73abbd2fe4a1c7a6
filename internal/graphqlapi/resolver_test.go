// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package graphqlapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thejerf/suture/v4"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/dispatcher"
	"github.com/giellalt/langgate/internal/registry"
	"github.com/giellalt/langgate/internal/worker"
)

func newTestSupervisor(t *testing.T) *suture.Supervisor {
	t.Helper()
	sup := suture.New("test-graphql-layer", suture.Spec{})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go sup.Serve(ctx) //nolint:errcheck
	return sup
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	sup := newTestSupervisor(t)
	spellerReg := registry.New[*worker.SpellerWorker](analyzer.Speller, sup)
	grammarReg := registry.New[*worker.GrammarWorker](analyzer.GrammarChecker, sup)
	hyphenatorReg := registry.New[*worker.HyphenationWorker](analyzer.Hyphenator, sup)

	return &Resolver{
		speller:    dispatcher.NewSpellerDispatcher(spellerReg),
		grammar:    dispatcher.NewGrammarDispatcher(grammarReg),
		hyphenator: dispatcher.NewHyphenatorDispatcher(hyphenatorReg),
	}
}

func TestSuggestionsSpellerFieldReturnsNotFoundError(t *testing.T) {
	r := newTestResolver(t)
	s := r.Suggestions(suggestionsArgs{Text: "pákhat", Language: "xx"})

	_, err := s.Speller(context.Background())
	require.Error(t, err)
	assert.Equal(t, "No speller available for language xx", err.Error())
}

func TestSuggestionsGrammarFieldReturnsNotFoundError(t *testing.T) {
	r := newTestResolver(t)
	s := r.Suggestions(suggestionsArgs{Text: "pákhat", Language: "xx"})

	_, err := s.Grammar(context.Background())
	require.Error(t, err)
	assert.Equal(t, "No grammar available for language xx", err.Error())
}

func TestSuggestionsHyphenationFieldReturnsNotFoundError(t *testing.T) {
	r := newTestResolver(t)
	s := r.Suggestions(suggestionsArgs{Text: "pákhat", Language: "xx"})

	_, err := s.Hyphenation(context.Background())
	require.Error(t, err)
	assert.Equal(t, "No hyphenation available for language xx", err.Error())
}

func TestSpellerResultResolverExposesWordBreakdown(t *testing.T) {
	resp := worker.SpellerResponse{
		Text: "oainá páhkat",
		Results: []worker.SpellerResult{
			{Word: "oainá", IsCorrect: true},
			{Word: "páhkat", IsCorrect: false, Suggestions: []worker.Suggestion{{Value: "páhkku", Weight: 5}}},
		},
	}
	res := &spellerResultResolver{resp}

	assert.Equal(t, "oainá páhkat", res.Text())
	require.Len(t, res.Results(), 2)
	assert.Equal(t, "oainá", res.Results()[0].Word())
	assert.True(t, res.Results()[0].IsCorrect())
	assert.False(t, res.Results()[1].IsCorrect())
	require.Len(t, res.Results()[1].Suggestions(), 1)
	assert.Equal(t, "páhkku", res.Results()[1].Suggestions()[0].Value())
}

func TestGrammarErrorResolverExposesFields(t *testing.T) {
	resp := worker.GrammarResponse{
		Text: "sup  ney",
		Errs: []worker.GrammarError{
			{ErrorText: "sup  ney", StartIndex: 0, EndIndex: 8, Title: "Čállinmeattáhusat"},
		},
	}
	res := &grammarResultResolver{resp}

	require.Len(t, res.Errs(), 1)
	assert.Equal(t, int32(0), res.Errs()[0].StartIndex())
	assert.Equal(t, int32(8), res.Errs()[0].EndIndex())
	assert.Equal(t, "Čállinmeattáhusat", res.Errs()[0].Title())
}

func TestHyphenationResultResolverExposesPatterns(t *testing.T) {
	resp := worker.HyphenationResponse{
		Text: "ođasmahttinministtar",
		Results: []worker.HyphenationResult{
			{Word: "ođasmahttinministtar", Patterns: []worker.HyphenationPattern{
				{Value: "o^đas^maht^tin#mi^nist^tar", Weight: 60.0},
			}},
		},
	}
	res := &hyphenationResultResolver{resp}

	require.Len(t, res.Results(), 1)
	require.Len(t, res.Results()[0].Patterns(), 1)
	assert.Equal(t, "o^đas^maht^tin#mi^nist^tar", res.Results()[0].Patterns()[0].Value())
	assert.Equal(t, 60.0, res.Results()[0].Patterns()[0].Weight())
}

func TestNewSchemaParsesWithoutError(t *testing.T) {
	r := newTestResolver(t)
	schema := NewSchema(r.speller, r.grammar, r.hyphenator)
	require.NotNil(t, schema)
}
