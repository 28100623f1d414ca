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

package config

import (
	"os"
	"testing"

	"pgregory.net/rapid"
)

// TestPropertySaveLoadRoundtrip verifies that any valid set of values
// survives a trip through the TOML file unchanged.
//
// Note: Cannot use t.Parallel() because NewConfig reads the DELIMATCH_CFG
// environment variable.
func TestPropertySaveLoadRoundtrip(t *testing.T) {
	t.Setenv(CfgEnv, "")
	rapid.Check(t, func(t *rapid.T) {
		defaults := Values{
			ConfigSchema: SchemaVersion,
			DebugLogging: rapid.Bool().Draw(t, "debug"),
			Matching: Matching{
				VocabularyFile:   rapid.StringMatching(`([a-z]{1,12}\.csv)?`).Draw(t, "vocab"),
				SimilarThreshold: rapid.Float64Range(0.05, 0.95).Draw(t, "similar"),
				MatchThreshold:   rapid.Float64Range(0.05, 0.95).Draw(t, "match"),
				CacheSize:        rapid.IntRange(0, 1<<16).Draw(t, "cacheSize"),
			},
		}

		dir, err := os.MkdirTemp("", "delimatch-config-*")
		if err != nil {
			t.Fatalf("Failed to create temp dir: %v", err)
		}
		defer func() { _ = os.RemoveAll(dir) }()

		cfg, err := NewConfig(dir, defaults)
		if err != nil {
			t.Fatalf("NewConfig failed for %+v: %v", defaults, err)
		}

		if cfg.SimilarThreshold() != defaults.Matching.SimilarThreshold {
			t.Fatalf("SimilarThreshold changed: wrote %v, read %v",
				defaults.Matching.SimilarThreshold, cfg.SimilarThreshold())
		}
		if cfg.MatchThreshold() != defaults.Matching.MatchThreshold {
			t.Fatalf("MatchThreshold changed: wrote %v, read %v",
				defaults.Matching.MatchThreshold, cfg.MatchThreshold())
		}
		if cfg.CacheSize() != defaults.Matching.CacheSize {
			t.Fatalf("CacheSize changed: wrote %d, read %d",
				defaults.Matching.CacheSize, cfg.CacheSize())
		}
		if cfg.VocabularyFile() != defaults.Matching.VocabularyFile {
			t.Fatalf("VocabularyFile changed: wrote %q, read %q",
				defaults.Matching.VocabularyFile, cfg.VocabularyFile())
		}
		if cfg.DebugLogging() != defaults.DebugLogging {
			t.Fatalf("DebugLogging changed: wrote %v, read %v",
				defaults.DebugLogging, cfg.DebugLogging())
		}
	})
}

// TestPropertySaveStampsSchemaVersion verifies that Save always writes the
// current schema version, no matter what the defaults carry.
//
// Note: Cannot use t.Parallel() because NewConfig reads the DELIMATCH_CFG
// environment variable.
func TestPropertySaveStampsSchemaVersion(t *testing.T) {
	t.Setenv(CfgEnv, "")
	rapid.Check(t, func(t *rapid.T) {
		defaults := BaseDefaults
		defaults.ConfigSchema = rapid.IntRange(-5, 5).Draw(t, "schema")

		dir, err := os.MkdirTemp("", "delimatch-config-*")
		if err != nil {
			t.Fatalf("Failed to create temp dir: %v", err)
		}
		defer func() { _ = os.RemoveAll(dir) }()

		// Save rewrites the schema field, so Load accepts the file even
		// when the defaults carried a stale version.
		if _, err := NewConfig(dir, defaults); err != nil {
			t.Fatalf("NewConfig failed for schema %d: %v", defaults.ConfigSchema, err)
		}
	})
}
