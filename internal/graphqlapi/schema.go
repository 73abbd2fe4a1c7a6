// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package graphqlapi composes the speller, grammar and hyphenation
// dispatchers behind a single GraphQL round-trip: one "suggestions"
// query fans out to all three kinds, with a failure in one sub-resolver
// surfacing as a field error while the others still resolve.
package graphqlapi

// schemaString is the GraphQL SDL served at /graphql. Field names follow
// GraphQL's camelCase convention; graph-gophers/graphql-go maps each one
// to the identically-named (but exported) Go method on the resolver
// below.
const schemaString = `
	schema {
		query: Query
	}

	type Query {
		suggestions(text: String!, language: String!): Suggestions!
	}

	type Suggestions {
		speller: SpellerResult
		grammar: GrammarResult
		hyphenation: HyphenationResult
	}

	type SpellerResult {
		text: String!
		results: [SpellerWordResult!]!
	}

	type SpellerWordResult {
		word: String!
		isCorrect: Boolean!
		suggestions: [Suggestion!]!
	}

	type Suggestion {
		value: String!
		weight: Float!
	}

	type GrammarResult {
		text: String!
		errs: [GrammarError!]!
	}

	type GrammarError {
		errorText: String!
		startIndex: Int!
		endIndex: Int!
		errorCode: String!
		description: String!
		suggestions: [String!]!
		title: String!
	}

	type HyphenationResult {
		text: String!
		results: [HyphenationWordResult!]!
	}

	type HyphenationWordResult {
		word: String!
		patterns: [HyphenationPattern!]!
	}

	type HyphenationPattern {
		value: String!
		weight: Float!
	}
`
