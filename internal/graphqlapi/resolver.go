// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package graphqlapi

import (
	"context"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/dispatcher"
	"github.com/giellalt/langgate/internal/worker"
)

// Resolver is the GraphQL root resolver. It holds the same three
// dispatchers the REST handlers use, so a query and an HTTP call reach
// the exact same worker for a given language.
type Resolver struct {
	speller    *dispatcher.SpellerDispatcher
	grammar    *dispatcher.GrammarDispatcher
	hyphenator *dispatcher.HyphenatorDispatcher
}

// NewSchema parses the SDL and binds it to a Resolver wired to the given
// dispatchers.
func NewSchema(
	speller *dispatcher.SpellerDispatcher,
	grammar *dispatcher.GrammarDispatcher,
	hyphenator *dispatcher.HyphenatorDispatcher,
) *graphql.Schema {
	resolver := &Resolver{speller: speller, grammar: grammar, hyphenator: hyphenator}
	return graphql.MustParseSchema(schemaString, resolver)
}

// NewHandler wraps schema in a relay.Handler, the standard graph-gophers
// transport for POST /graphql.
func NewHandler(schema *graphql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

type suggestionsArgs struct {
	Text     string
	Language string
}

// Suggestions is the single root query field. It does not itself call
// any dispatcher; each requested sub-field resolves (and can fail)
// independently when the GraphQL engine invokes it.
func (r *Resolver) Suggestions(args suggestionsArgs) *suggestionsResolver {
	return &suggestionsResolver{
		resolver: r,
		language: analyzer.LanguageKey(args.Language),
		text:     args.Text,
	}
}

type suggestionsResolver struct {
	resolver *Resolver
	language analyzer.LanguageKey
	text     string
}

func (s *suggestionsResolver) Speller(ctx context.Context) (*spellerResultResolver, error) {
	resp, apiErr := s.resolver.speller.Check(ctx, s.language, s.text)
	if apiErr != nil {
		return nil, apiErr
	}
	return &spellerResultResolver{resp}, nil
}

func (s *suggestionsResolver) Grammar(ctx context.Context) (*grammarResultResolver, error) {
	resp, apiErr := s.resolver.grammar.Check(ctx, s.language, s.text)
	if apiErr != nil {
		return nil, apiErr
	}
	return &grammarResultResolver{resp}, nil
}

func (s *suggestionsResolver) Hyphenation(ctx context.Context) (*hyphenationResultResolver, error) {
	resp, apiErr := s.resolver.hyphenator.Hyphenate(ctx, s.language, s.text)
	if apiErr != nil {
		return nil, apiErr
	}
	return &hyphenationResultResolver{resp}, nil
}

// --- speller ---

type spellerResultResolver struct{ resp worker.SpellerResponse }

func (r *spellerResultResolver) Text() string { return r.resp.Text }

func (r *spellerResultResolver) Results() []*spellerWordResultResolver {
	out := make([]*spellerWordResultResolver, len(r.resp.Results))
	for i, res := range r.resp.Results {
		out[i] = &spellerWordResultResolver{res}
	}
	return out
}

type spellerWordResultResolver struct{ result worker.SpellerResult }

func (r *spellerWordResultResolver) Word() string    { return r.result.Word }
func (r *spellerWordResultResolver) IsCorrect() bool { return r.result.IsCorrect }

func (r *spellerWordResultResolver) Suggestions() []*suggestionResolver {
	out := make([]*suggestionResolver, len(r.result.Suggestions))
	for i, s := range r.result.Suggestions {
		out[i] = &suggestionResolver{s}
	}
	return out
}

type suggestionResolver struct{ suggestion worker.Suggestion }

func (r *suggestionResolver) Value() string  { return r.suggestion.Value }
func (r *suggestionResolver) Weight() float64 { return r.suggestion.Weight }

// --- grammar ---

type grammarResultResolver struct{ resp worker.GrammarResponse }

func (r *grammarResultResolver) Text() string { return r.resp.Text }

func (r *grammarResultResolver) Errs() []*grammarErrorResolver {
	out := make([]*grammarErrorResolver, len(r.resp.Errs))
	for i, e := range r.resp.Errs {
		out[i] = &grammarErrorResolver{e}
	}
	return out
}

type grammarErrorResolver struct{ err worker.GrammarError }

func (r *grammarErrorResolver) ErrorText() string   { return r.err.ErrorText }
func (r *grammarErrorResolver) StartIndex() int32   { return int32(r.err.StartIndex) }
func (r *grammarErrorResolver) EndIndex() int32     { return int32(r.err.EndIndex) }
func (r *grammarErrorResolver) ErrorCode() string   { return r.err.ErrorCode }
func (r *grammarErrorResolver) Description() string { return r.err.Description }
func (r *grammarErrorResolver) Suggestions() []string {
	return r.err.Suggestions
}
func (r *grammarErrorResolver) Title() string { return r.err.Title }

// --- hyphenation ---

type hyphenationResultResolver struct{ resp worker.HyphenationResponse }

func (r *hyphenationResultResolver) Text() string { return r.resp.Text }

func (r *hyphenationResultResolver) Results() []*hyphenationWordResultResolver {
	out := make([]*hyphenationWordResultResolver, len(r.resp.Results))
	for i, res := range r.resp.Results {
		out[i] = &hyphenationWordResultResolver{res}
	}
	return out
}

type hyphenationWordResultResolver struct{ result worker.HyphenationResult }

func (r *hyphenationWordResultResolver) Word() string { return r.result.Word }

func (r *hyphenationWordResultResolver) Patterns() []*hyphenationPatternResolver {
	out := make([]*hyphenationPatternResolver, len(r.result.Patterns))
	for i, p := range r.result.Patterns {
		out[i] = &hyphenationPatternResolver{p}
	}
	return out
}

type hyphenationPatternResolver struct{ pattern worker.HyphenationPattern }

func (r *hyphenationPatternResolver) Value() string   { return r.pattern.Value }
func (r *hyphenationPatternResolver) Weight() float64 { return r.pattern.Weight }
