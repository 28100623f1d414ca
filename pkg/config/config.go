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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DeliMatchProject/delimatch-core/pkg/helpers/syncutil"
	"github.com/DeliMatchProject/delimatch-core/pkg/matcher"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "DELIMATCH_CFG"
)

type Values struct {
	Matching     Matching `toml:"matching"`
	ConfigSchema int      `toml:"config_schema"`
	DebugLogging bool     `toml:"debug_logging"`
}

type Matching struct {
	VocabularyFile   string  `toml:"vocabulary_file,omitempty"`
	SimilarThreshold float64 `toml:"similar_threshold" validate:"gt=0,lt=1"`
	MatchThreshold   float64 `toml:"match_threshold"   validate:"gt=0,lt=1"`
	CacheSize        int     `toml:"cache_size"        validate:"gte=0"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Matching: Matching{
		SimilarThreshold: matcher.DefaultSimilarThreshold,
		MatchThreshold:   matcher.DefaultMatchThreshold,
		CacheSize:        matcher.DefaultCacheSize,
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	if _, err := os.Stat(c.cfgPath); err != nil {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := validate.Struct(&newVals); err != nil {
		return fmt.Errorf("invalid config values: %w", err)
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	// set current schema version
	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Instance) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (c *Instance) SimilarThreshold() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.SimilarThreshold
}

func (c *Instance) MatchThreshold() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.MatchThreshold
}

func (c *Instance) CacheSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.CacheSize
}

func (c *Instance) VocabularyFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.VocabularyFile
}

// MatcherOptions translates the loaded config into matcher options. The
// vocabulary file, if any, is loaded separately by the caller.
func (c *Instance) MatcherOptions() matcher.Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return matcher.Options{
		SimilarThreshold: c.vals.Matching.SimilarThreshold,
		MatchThreshold:   c.vals.Matching.MatchThreshold,
		CacheSize:        c.vals.Matching.CacheSize,
	}
}
