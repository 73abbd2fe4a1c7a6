// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package worker

// SpellerRequest carries free text to be checked word by word.
type SpellerRequest struct {
	Text string `json:"text"`
}

// Suggestion is one candidate correction, ordered by ascending Weight
// (lower is a closer match).
type Suggestion struct {
	Value  string  `json:"value"`
	Weight float64 `json:"weight"`
}

// SpellerResult reports the spelling check for a single tokenized word.
type SpellerResult struct {
	Word        string       `json:"word"`
	IsCorrect   bool         `json:"is_correct"`
	Suggestions []Suggestion `json:"suggestions"`
}

// SpellerResponse is the per-word breakdown of a speller request.
type SpellerResponse struct {
	Text    string          `json:"text"`
	Results []SpellerResult `json:"results"`
}

// GrammarRequest carries text to be grammar-checked. Only the first
// line is analyzed; callers wanting multi-line analysis must split and
// submit one request per line themselves.
type GrammarRequest struct {
	Text string `json:"text"`
}

// GrammarError describes a single flagged span of text.
type GrammarError struct {
	ErrorText   string   `json:"error_text"`
	StartIndex  int      `json:"start_index"`
	EndIndex    int      `json:"end_index"`
	ErrorCode   string   `json:"error_code"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
	Title       string   `json:"title"`
}

// GrammarResponse is the full grammar check result for one request.
type GrammarResponse struct {
	Text string         `json:"text"`
	Errs []GrammarError `json:"errs"`
}

// HyphenationRequest carries free text to be hyphenated word by word.
type HyphenationRequest struct {
	Text string `json:"text"`
}

// HyphenationPattern is one candidate hyphenation with its weight (lower
// is preferred).
type HyphenationPattern struct {
	Value  string  `json:"value"`
	Weight float64 `json:"weight"`
}

// HyphenationResult reports the hyphenation patterns found for a single
// tokenized word.
type HyphenationResult struct {
	Word     string               `json:"word"`
	Patterns []HyphenationPattern `json:"patterns"`
}

// HyphenationResponse is the per-word breakdown of a hyphenation
// request.
type HyphenationResponse struct {
	Text    string               `json:"text"`
	Results []HyphenationResult  `json:"results"`
}
