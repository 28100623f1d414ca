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

// Package textnorm canonicalizes food and grocery search terms so that
// typos, diacritics, and regional spellings of the same dish compare equal.
// All functions are pure and total: any string in, a string out, no errors.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes characters and removes combining marks,
// turning "café" into "cafe".
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts raw text to its canonical comparable form.
//
// The pipeline runs these stages in order:
//  1. Lowercase and trim surrounding whitespace
//  2. Fold diacritics and special characters to ASCII
//  3. Apply typo corrections, longest key first
//  4. Apply phonetic simplifications
//  5. Strip non-alphanumeric characters and collapse whitespace
//
// The result is stable under re-normalization: Normalize(Normalize(s))
// equals Normalize(s) for any s.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(strings.TrimSpace(text))
	s = foldDiacritics(s)
	s = replaceAllOrdered(s, typoKeysByLength, typoCorrections)
	s = applyPhonetics(s)
	return cleanup(s)
}

// Clean applies only the case folding and cleanup stages, keeping accents
// and corrected spellings intact. The variation generator uses it to emit a
// minimally processed form alongside the fully normalized one.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return cleanup(strings.ToLower(strings.TrimSpace(text)))
}

func foldDiacritics(s string) string {
	if isASCII(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if repl, ok := specialFoldings[r]; ok {
			sb.WriteString(repl)
			continue
		}
		sb.WriteRune(r)
	}

	folded, _, err := transform.String(diacriticStripper, sb.String())
	if err != nil {
		// Transform failures leave the input usable as-is.
		return sb.String()
	}
	return folded
}

// replaceAllOrdered applies table substitutions in the order given by keys.
func replaceAllOrdered(s string, keys []string, table map[string]string) string {
	for _, k := range keys {
		s = strings.ReplaceAll(s, k, table[k])
	}
	return s
}

func applyPhonetics(s string) string {
	for _, p := range phoneticPairs {
		s = strings.ReplaceAll(s, p.pattern, p.surrogate)
	}
	return s
}

// cleanup replaces every character that is not a letter or digit with a
// space, then collapses whitespace runs and trims.
func cleanup(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
