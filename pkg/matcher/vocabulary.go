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
	"fmt"
	"strings"

	"github.com/DeliMatchProject/delimatch-core/pkg/textnorm"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// vocabularyRow is one line of a vocabulary CSV file: a canonical term and
// its variant spellings separated by pipes.
type vocabularyRow struct {
	Canonical string `csv:"canonical"`
	Variants  string `csv:"variants"`
}

// LoadVocabulary reads extra canonical-to-variants vocabulary from a CSV
// file with a "canonical,variants" header. Canonical terms are normalized
// so they live in the same lookup space as the built-in table; variants are
// kept verbatim since they describe raw spellings. Rows with an empty
// canonical cell are skipped.
func LoadVocabulary(fsys afero.Fs, path string) (map[string][]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var rows []*vocabularyRow
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %q: %w", path, err)
	}

	vocab := make(map[string][]string, len(rows))
	for _, row := range rows {
		canonical := textnorm.Normalize(row.Canonical)
		if canonical == "" {
			continue
		}
		for _, variant := range strings.Split(row.Variants, "|") {
			variant = strings.TrimSpace(variant)
			if variant == "" {
				continue
			}
			vocab[canonical] = append(vocab[canonical], variant)
		}
	}

	log.Debug().
		Int("entries", len(vocab)).
		Str("path", path).
		Msg("loaded vocabulary file")

	return vocab, nil
}
