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

package textnorm

import "strings"

// GenerateVariations expands a raw query into the alternate spellings likely
// to appear in stored menu data: the normalized form, a minimally cleaned
// form, phonetic rewrites in both directions, abbreviation expansions and
// contractions, plausible misspellings from the typo table, and vocabulary
// variants. The result is de-duplicated and its order is stable for a given
// query. An empty query yields a single empty string.
func GenerateVariations(query string) []string {
	return generateVariations(query, vocabulary, vocabularyKeys)
}

// GenerateVariationsWith behaves like GenerateVariations but draws
// vocabulary variants from vocab instead of the built-in table.
func GenerateVariationsWith(query string, vocab map[string][]string) []string {
	if len(vocab) == 0 {
		return GenerateVariations(query)
	}
	return generateVariations(query, vocab, sortedKeys(vocab))
}

func generateVariations(query string, vocab map[string][]string, vocabKeys []string) []string {
	if query == "" {
		return []string{""}
	}

	normalized := Normalize(query)
	cleaned := Clean(query)

	variants := make([]string, 0, 8)
	variants = append(variants, normalized, cleaned)

	// Phonetic patterns are already collapsed in the normalized form, so the
	// forward direction works on the cleaned form and the reverse direction
	// restores clusters from surrogates in the normalized form.
	for _, p := range phoneticPairs {
		if strings.Contains(cleaned, p.pattern) {
			variants = append(variants, strings.ReplaceAll(cleaned, p.pattern, p.surrogate))
		}
		if strings.Contains(normalized, p.surrogate) {
			variants = append(variants, strings.ReplaceAll(normalized, p.surrogate, p.pattern))
		}
	}

	words := strings.Fields(normalized)
	for _, k := range abbreviationKeys {
		if containsWord(words, k) {
			variants = append(variants, replaceWord(words, k, abbreviations[k]))
		}
		if full := abbreviations[k]; strings.Contains(normalized, full) {
			variants = append(variants, strings.ReplaceAll(normalized, full, k))
		}
	}

	// Canonical spellings map back to the misspellings that produce them, so
	// a well-spelled query still matches stored data that was never cleaned.
	for _, k := range typoKeysByLength {
		if canonical := typoCorrections[k]; strings.Contains(normalized, canonical) {
			variants = append(variants, strings.ReplaceAll(normalized, canonical, k))
		}
	}

	for _, canonical := range vocabKeys {
		if strings.Contains(normalized, canonical) {
			for _, alt := range vocab[canonical] {
				variants = append(variants, strings.ReplaceAll(normalized, canonical, alt))
			}
		}
		for _, alt := range vocab[canonical] {
			if alt != canonical && strings.Contains(normalized, alt) {
				variants = append(variants, strings.ReplaceAll(normalized, alt, canonical))
			}
		}
	}

	return dedupe(variants)
}

func containsWord(words []string, w string) bool {
	for _, candidate := range words {
		if candidate == w {
			return true
		}
	}
	return false
}

func replaceWord(words []string, from, to string) string {
	out := make([]string, len(words))
	for i, w := range words {
		if w == from {
			out[i] = to
		} else {
			out[i] = w
		}
	}
	return strings.Join(out, " ")
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
