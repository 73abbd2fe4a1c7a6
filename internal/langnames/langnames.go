// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package langnames resolves a catalog LanguageKey to a human-readable
// title for the /languages response, backed by a static ISO-639 autonym
// table keyed preferentially by tag1 then tag3.
package langnames

// Record is a single row of the autonym table: ISO-639 identifiers plus
// the language's English name and autonym (the name the language uses for
// itself).
type Record struct {
	Tag3    string
	Tag1    string
	Name    string
	Autonym string
	Source  string
}

// table is a small, representative set of entries covering the Sámi and
// Nordic-minority languages this gateway is built to front. It is
// authored directly from the column layout documented at the boundary
// (tag3, tag1, name, autonym, source); it is not transcribed from any
// generated data file, since the upstream project generates its table at
// build time from a file outside this repository.
var table = []Record{
	{Tag3: "sme", Tag1: "se", Name: "Northern Sami", Autonym: "davvisámegiella", Source: "giellalt"},
	{Tag3: "smj", Tag1: "smj", Name: "Lule Sami", Autonym: "julevsámegiella", Source: "giellalt"},
	{Tag3: "sma", Tag1: "sma", Name: "Southern Sami", Autonym: "åarjelsaemien gïele", Source: "giellalt"},
	{Tag3: "smn", Tag1: "smn", Name: "Inari Sami", Autonym: "anarâškielâ", Source: "giellalt"},
	{Tag3: "sms", Tag1: "sms", Name: "Skolt Sami", Autonym: "nuõrttsääʹmǩiõll", Source: "giellalt"},
	{Tag3: "fkv", Tag1: "fkv", Name: "Kven", Autonym: "kväänin kieli", Source: "giellalt"},
	{Tag3: "fin", Tag1: "fi", Name: "Finnish", Autonym: "suomi", Source: "iso639"},
	{Tag3: "nob", Tag1: "nb", Name: "Norwegian Bokmål", Autonym: "norsk bokmål", Source: "iso639"},
	{Tag3: "swe", Tag1: "sv", Name: "Swedish", Autonym: "svenska", Source: "iso639"},
	{Tag3: "eng", Tag1: "en", Name: "English", Autonym: "English", Source: "iso639"},
}

// byKey indexes table rows by every key they might be looked up under
// (tag1 preferentially, tag3 as a fallback), built once at package init.
var byKey = func() map[string]Record {
	m := make(map[string]Record, len(table)*2)
	for _, r := range table {
		if r.Tag3 != "" {
			if _, exists := m[r.Tag3]; !exists {
				m[r.Tag3] = r
			}
		}
		if r.Tag1 != "" {
			// tag1 takes precedence over a prior tag3-only entry for the
			// same string, matching the "keyed preferentially by tag1"
			// rule at the boundary.
			m[r.Tag1] = r
		}
	}
	return m
}()

// Title resolves a LanguageKey to its display title using the fallback
// order autonym -> English name -> tag3 -> key itself. Unknown keys map
// to themselves, so this function is total over any input.
func Title(key string) string {
	r, ok := byKey[key]
	if !ok {
		return key
	}
	if r.Autonym != "" {
		return r.Autonym
	}
	if r.Name != "" {
		return r.Name
	}
	if r.Tag3 != "" {
		return r.Tag3
	}
	return key
}
