// DeliMatch Core
// Copyright (c) 2026 The DeliMatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of DeliMatch Core.
//
// DeliMatch Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DeliMatch Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DeliMatch Core.  If not, see <http://www.gnu.org/licenses/>.

// Package matcher finds the stored dish or product name a search query most
// plausibly refers to, tolerating typos, accents, and regional spellings.
// It layers memoization and thresholded Levenshtein scoring on top of the
// textnorm pipeline.
package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/DeliMatchProject/delimatch-core/pkg/textnorm"
	"github.com/rs/zerolog/log"
)

// Options configures a Matcher. Zero values select the package defaults, so
// Options{} is a valid configuration.
type Options struct {
	// Vocabulary adds canonical-to-variants entries on top of the built-in
	// food vocabulary. Keys are normalized before merging.
	Vocabulary map[string][]string

	// SimilarThreshold is the strict lower bound for IsSimilar.
	SimilarThreshold float64

	// MatchThreshold is the strict lower bound for FindBestMatch and
	// RankCandidates.
	MatchThreshold float64

	// CacheSize bounds each of the two memoization caches.
	CacheSize int
}

// Matcher is a thread-safe matching engine instance. Normalization and
// variation results are memoized per instance; the caches never change
// results, only speed.
type Matcher struct {
	vocab            map[string][]string
	normCache        *lruCache[string]
	varCache         *lruCache[[]string]
	similarThreshold float64
	matchThreshold   float64
}

// New returns a Matcher for the given options.
func New(opts Options) *Matcher {
	if opts.SimilarThreshold == 0 {
		opts.SimilarThreshold = DefaultSimilarThreshold
	}
	if opts.MatchThreshold == 0 {
		opts.MatchThreshold = DefaultMatchThreshold
	}

	vocab := textnorm.Vocabulary()
	for canonical, variants := range opts.Vocabulary {
		key := textnorm.Normalize(canonical)
		if key == "" {
			continue
		}
		vocab[key] = append(vocab[key], variants...)
	}

	return &Matcher{
		vocab:            vocab,
		normCache:        newLRUCache[string](opts.CacheSize),
		varCache:         newLRUCache[[]string](opts.CacheSize),
		similarThreshold: opts.SimilarThreshold,
		matchThreshold:   opts.MatchThreshold,
	}
}

// Normalize returns the canonical form of text, memoized by the raw input.
func (m *Matcher) Normalize(text string) string {
	if cached, ok := m.normCache.Get(text); ok {
		return cached
	}
	normalized := textnorm.Normalize(text)
	m.normCache.Add(text, normalized)
	return normalized
}

// GenerateVariations returns the alternate spellings of query, memoized by
// the raw query.
func (m *Matcher) GenerateVariations(query string) []string {
	if cached, ok := m.varCache.Get(query); ok {
		return append([]string(nil), cached...)
	}
	variations := textnorm.GenerateVariationsWith(query, m.vocab)
	m.varCache.Add(query, variations)
	return append([]string(nil), variations...)
}

// IsSimilar reports whether a and b plausibly name the same thing: their
// normalized forms are equal, one contains the other, or their similarity
// strictly exceeds the similar threshold. Empty input on either side is
// never similar to anything.
func (m *Matcher) IsSimilar(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	na := m.Normalize(a)
	nb := m.Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	return levenshteinSimilarity(na, nb) > m.similarThreshold
}

// FindBestMatch returns the candidate that best matches query. A candidate
// whose normalized form equals the query's wins immediately. Otherwise the
// highest-scoring candidate wins, provided its score strictly exceeds the
// match threshold; on equal scores the earliest candidate is kept. The
// boolean is false when no candidate qualifies.
func (m *Matcher) FindBestMatch(query string, candidates []string) (string, bool) {
	if query == "" || len(candidates) == 0 {
		return "", false
	}
	nq := m.Normalize(query)
	if nq == "" {
		return "", false
	}
	lq := utf8.RuneCountInString(nq)

	best := ""
	bestScore := m.matchThreshold
	found := false

	for _, candidate := range candidates {
		nc := m.Normalize(candidate)
		if nc == nq {
			return candidate, true
		}
		if similarityCeiling(lq, utf8.RuneCountInString(nc)) <= bestScore {
			continue
		}
		score := levenshteinSimilarity(nq, nc)
		if score > bestScore {
			best = candidate
			bestScore = score
			found = true
			log.Debug().
				Str("query", query).
				Str("candidate", candidate).
				Float64("score", score).
				Msg("new best match")
		}
	}

	return best, found
}

// ClearCache empties both memoization caches.
func (m *Matcher) ClearCache() {
	m.normCache.Clear()
	m.varCache.Clear()
}

// CacheStats reports the number of entries held by each cache.
type CacheStats struct {
	Normalizations int
	Variations     int
}

// CacheStats returns current cache sizes.
func (m *Matcher) CacheStats() CacheStats {
	return CacheStats{
		Normalizations: m.normCache.Len(),
		Variations:     m.varCache.Len(),
	}
}

// DefaultMatcher is a shared instance behind the package-level functions.
var DefaultMatcher = New(Options{})

// Normalize calls Normalize on the default matcher.
func Normalize(text string) string {
	return DefaultMatcher.Normalize(text)
}

// GenerateVariations calls GenerateVariations on the default matcher.
func GenerateVariations(query string) []string {
	return DefaultMatcher.GenerateVariations(query)
}

// IsSimilar calls IsSimilar on the default matcher.
func IsSimilar(a, b string) bool {
	return DefaultMatcher.IsSimilar(a, b)
}

// FindBestMatch calls FindBestMatch on the default matcher.
func FindBestMatch(query string, candidates []string) (string, bool) {
	return DefaultMatcher.FindBestMatch(query, candidates)
}

// ClearCache clears the default matcher's caches.
func ClearCache() {
	DefaultMatcher.ClearCache()
}
