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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVocabulary(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	csv := "canonical,variants\n" +
		"Sushi,sushis|maki roll\n" +
		"poke bowl,poke\n" +
		"Crêpe,crepes | panqueca\n"
	require.NoError(t, afero.WriteFile(fs, "vocab.csv", []byte(csv), 0o600))

	vocab, err := LoadVocabulary(fs, "vocab.csv")
	require.NoError(t, err)

	// Canonical terms are normalized; variants are kept verbatim, trimmed.
	assert.Equal(t, map[string][]string{
		"suxi":      {"sushis", "maki roll"},
		"poke bowl": {"poke"},
		"crepe":     {"crepes", "panqueca"},
	}, vocab)
}

func TestLoadVocabularySkipsBlankRows(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	csv := "canonical,variants\n" +
		",orphaned\n" +
		"!!!,junk\n" +
		"pizza,|pizzas||\n"
	require.NoError(t, afero.WriteFile(fs, "vocab.csv", []byte(csv), 0o600))

	vocab, err := LoadVocabulary(fs, "vocab.csv")
	require.NoError(t, err)

	// Rows whose canonical normalizes to nothing are dropped, as are empty
	// variant cells.
	assert.Equal(t, map[string][]string{
		"pizza": {"pizzas"},
	}, vocab)
}

func TestLoadVocabularyMergesDuplicateCanonicals(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	csv := "canonical,variants\n" +
		"taco,tacos\n" +
		"TACO,taquito\n"
	require.NoError(t, afero.WriteFile(fs, "vocab.csv", []byte(csv), 0o600))

	vocab, err := LoadVocabulary(fs, "vocab.csv")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"taco": {"tacos", "taquito"},
	}, vocab)
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := LoadVocabulary(fs, "missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open vocabulary file")
}

func TestLoadVocabularyMalformedCSV(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	csv := "canonical,variants\n" +
		"\"broken,row\n"
	require.NoError(t, afero.WriteFile(fs, "vocab.csv", []byte(csv), 0o600))

	_, err := LoadVocabulary(fs, "vocab.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse vocabulary file")
}

func TestLoadVocabularyFeedsMatcher(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	csv := "canonical,variants\n" +
		"feijoada,feijão\n"
	require.NoError(t, afero.WriteFile(fs, "vocab.csv", []byte(csv), 0o600))

	vocab, err := LoadVocabulary(fs, "vocab.csv")
	require.NoError(t, err)

	m := New(Options{Vocabulary: vocab})
	assert.Contains(t, m.GenerateVariations("feijoada completa"), "feijão completa")
}
