/*
DeliMatch Core
Copyright (c) 2026 The DeliMatch Project Contributors.
SPDX-License-Identifier: GPL-3.0-or-later

This file is part of DeliMatch Core.

DeliMatch Core is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DeliMatch Core is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DeliMatch Core.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DeliMatchProject/delimatch-core/pkg/config"
	"github.com/DeliMatchProject/delimatch-core/pkg/helpers"
	"github.com/DeliMatchProject/delimatch-core/pkg/matcher"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type flags struct {
	normalize  *string
	variations *string
	similar    *string
	to         *string
	match      *string
	candidates *string
	vocab      *string
	configDir  *string
	rank       *int
	debug      *bool
	version    *bool
}

func setupFlags() *flags {
	return &flags{
		normalize: flag.String(
			"normalize",
			"",
			"print the canonical form of the given text",
		),
		variations: flag.String(
			"variations",
			"",
			"print search variations of the given query, one per line",
		),
		similar: flag.String(
			"similar",
			"",
			"check similarity of the given text against -to",
		),
		to: flag.String(
			"to",
			"",
			"second text for -similar",
		),
		match: flag.String(
			"match",
			"",
			"find the best match for the given query in -candidates",
		),
		candidates: flag.String(
			"candidates",
			"",
			"path to a file with one candidate name per line",
		),
		vocab: flag.String(
			"vocab",
			"",
			"path to an extra vocabulary csv file",
		),
		configDir: flag.String(
			"config-dir",
			"",
			"directory for config and log files",
		),
		rank: flag.Int(
			"rank",
			0,
			"print the top N scored matches instead of the single best",
		),
		debug: flag.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	fl := setupFlags()
	flag.Parse()

	if *fl.version {
		_, _ = fmt.Printf("DeliMatch v%s\n", config.AppVersion)
		return nil
	}

	configDir := *fl.configDir
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, config.AppName)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	if err := helpers.InitLogging(configDir, console); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.NewConfig(configDir, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *fl.debug {
		cfg.SetDebugLogging(true)
	} else if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	fsys := afero.NewOsFs()
	opts := cfg.MatcherOptions()

	vocabPath := *fl.vocab
	if vocabPath == "" {
		vocabPath = cfg.VocabularyFile()
	}
	if vocabPath != "" {
		vocab, err := matcher.LoadVocabulary(fsys, vocabPath)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		opts.Vocabulary = vocab
	}

	m := matcher.New(opts)

	switch {
	case *fl.normalize != "":
		_, _ = fmt.Println(m.Normalize(*fl.normalize))
	case *fl.variations != "":
		for _, v := range m.GenerateVariations(*fl.variations) {
			_, _ = fmt.Println(v)
		}
	case *fl.similar != "":
		if *fl.to == "" {
			return errors.New("-similar requires -to")
		}
		_, _ = fmt.Println(m.IsSimilar(*fl.similar, *fl.to))
	case *fl.match != "":
		return runMatch(m, fl, fsys)
	default:
		flag.Usage()
		return errors.New("one of -normalize, -variations, -similar or -match is required")
	}

	return nil
}

func runMatch(m *matcher.Matcher, fl *flags, fsys afero.Fs) error {
	candidates, err := readCandidates(fsys, *fl.candidates)
	if err != nil {
		return err
	}

	if *fl.rank > 0 {
		for _, match := range m.RankCandidates(*fl.match, candidates, *fl.rank) {
			_, _ = fmt.Printf("%.3f\t%s\n", match.Score, match.Value)
		}
		return nil
	}

	match, ok := m.FindBestMatch(*fl.match, candidates)
	if !ok {
		_, _ = fmt.Println("no match")
		return nil
	}
	_, _ = fmt.Println(match)
	return nil
}

func readCandidates(fsys afero.Fs, path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("-match requires -candidates")
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	var candidates []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	return candidates, nil
}
