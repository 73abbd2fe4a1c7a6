// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package preferences

import (
	"sync"

	"github.com/giellalt/langgate/internal/analyzer"
)

// Cache is a thread-safe LanguageKey -> Set map, kept current by the
// watcher and read by the /preferences/grammar/{lang} handler.
type Cache struct {
	mu   sync.RWMutex
	sets map[analyzer.LanguageKey]*Set
}

// NewCache builds an empty Cache.
func NewCache() *Cache {
	return &Cache{sets: make(map[analyzer.LanguageKey]*Set)}
}

// Set stores the preferences Set for lang, replacing any previous
// value.
func (c *Cache) Set(lang analyzer.LanguageKey, set *Set) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets[lang] = set
}

// Get returns the preferences Set for lang, if any.
func (c *Cache) Get(lang analyzer.LanguageKey) (*Set, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sets[lang]
	return s, ok
}

// Delete removes any cached preferences for lang.
func (c *Cache) Delete(lang analyzer.LanguageKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sets, lang)
}
