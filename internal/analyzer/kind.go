// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package analyzer defines the static vocabulary shared by every layer of
// the gateway: the kinds of analyzer it fronts, the language identifiers
// used to key them, and the on-disk model files that back them.
package analyzer

import "fmt"

// Kind is a tagged variant identifying one of the three analyzer families
// the gateway supervises. Each kind carries the file extension used to
// discover its model files and the subdirectory they live under.
type Kind int

const (
	// Speller backs /speller/{lang}; model files carry a .zhfst extension
	// and live under <data_file_dir>/spelling.
	Speller Kind = iota
	// GrammarChecker backs /grammar/{lang} and /preferences/grammar/{lang};
	// model files carry a .zcheck extension and live under
	// <data_file_dir>/grammar.
	GrammarChecker
	// Hyphenator backs /hyphenation/{lang}; model files carry a .hfstol
	// extension and live under <data_file_dir>/hyphenation.
	Hyphenator
)

// AllKinds lists every Kind in a stable order, used by the catalog scanner
// and the /languages aggregation handler.
var AllKinds = [...]Kind{Speller, GrammarChecker, Hyphenator}

// Ext returns the file extension (without the leading dot) used to
// recognize a model file of this kind.
func (k Kind) Ext() string {
	switch k {
	case Speller:
		return "zhfst"
	case GrammarChecker:
		return "zcheck"
	case Hyphenator:
		return "hfstol"
	default:
		return ""
	}
}

// Dir returns the subdirectory name under the data file root that holds
// model files of this kind.
func (k Kind) Dir() string {
	switch k {
	case Speller:
		return "spelling"
	case GrammarChecker:
		return "grammar"
	case Hyphenator:
		return "hyphenation"
	default:
		return ""
	}
}

// String renders the kind the way it appears in log fields, metric
// labels, and error messages (e.g. "No speller available for language xx").
func (k Kind) String() string {
	switch k {
	case Speller:
		return "speller"
	case GrammarChecker:
		return "grammar"
	case Hyphenator:
		return "hyphenation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LanguageKey is a short identifier extracted from a model file's stem,
// e.g. "se", "smj". Case-sensitive, opaque outside the catalog; uniqueness
// within a given Kind is enforced by the registry, not this type.
type LanguageKey string

// ModelFile is an immutable triple identifying one discovered model on
// disk. A file replaced on disk produces a new ModelFile rather than
// mutating an existing one.
type ModelFile struct {
	Kind     Kind
	Language LanguageKey
	Path     string
}
