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

package matcher

import (
	"sort"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultSimilarThreshold is the strict lower bound IsSimilar requires of
	// a similarity score.
	DefaultSimilarThreshold = 0.70

	// DefaultMatchThreshold is the strict lower bound FindBestMatch requires
	// of a candidate score. It is deliberately looser than
	// DefaultSimilarThreshold and the two must not be unified.
	DefaultMatchThreshold = 0.60

	// DefaultCacheSize bounds each memoization cache.
	DefaultCacheSize = 4096
)

// Match is a scored candidate returned by RankCandidates.
type Match struct {
	Value string
	Score float64
}

// levenshteinSimilarity scores two already normalized strings in [0, 1]:
// one minus the edit distance over the longer rune length.
func levenshteinSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}

	maxLen := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}

	dist := edlib.LevenshteinDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

// similarityCeiling is the best score two strings of the given rune lengths
// can reach, since edit distance is at least the length difference. Used to
// skip scoring candidates that cannot clear a threshold.
func similarityCeiling(la, lb int) float64 {
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	return 1 - float64(diff)/float64(maxLen)
}

// Similarity returns the similarity score of the normalized forms of a and
// b. Exposed for observability and tuning; the boolean contracts live in
// IsSimilar and FindBestMatch.
func (m *Matcher) Similarity(a, b string) float64 {
	return levenshteinSimilarity(m.Normalize(a), m.Normalize(b))
}

// RankCandidates scores every candidate against the query and returns those
// strictly above the match threshold, best first. Candidates whose
// normalized form equals the query's score 1. Equal scores keep candidate
// order. A positive limit truncates the result.
func (m *Matcher) RankCandidates(query string, candidates []string, limit int) []Match {
	if query == "" || len(candidates) == 0 {
		return nil
	}
	nq := m.Normalize(query)
	if nq == "" {
		return nil
	}
	lq := utf8.RuneCountInString(nq)

	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		nc := m.Normalize(candidate)
		if nc == nq {
			matches = append(matches, Match{Value: candidate, Score: 1})
			continue
		}
		if similarityCeiling(lq, utf8.RuneCountInString(nc)) <= m.matchThreshold {
			continue
		}
		score := levenshteinSimilarity(nq, nc)
		if score <= m.matchThreshold {
			continue
		}
		if score > m.similarThreshold {
			log.Debug().
				Str("query", query).
				Str("candidate", candidate).
				Float64("score", score).
				Msg("close fuzzy match")
		}
		matches = append(matches, Match{Value: candidate, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
