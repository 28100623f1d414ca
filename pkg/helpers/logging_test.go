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

package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/DeliMatchProject/delimatch-core/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	// Note: Cannot use t.Parallel() because InitLogging modifies global log.Logger

	t.Run("creates the log directory and file", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "logs", "nested")

		err := InitLogging(logDir, nil)
		require.NoError(t, err)

		// Lumberjack creates the file lazily, so write an entry first.
		log.Info().Msg("delimatch started")

		info, err := os.Stat(logDir)
		require.NoError(t, err, "log directory should exist")
		assert.True(t, info.IsDir())

		_, err = os.Stat(filepath.Join(logDir, config.LogFile))
		require.NoError(t, err, "log file should exist after logging")
	})

	t.Run("works when the directory already exists", func(t *testing.T) {
		logDir := t.TempDir()

		require.NoError(t, InitLogging(logDir, nil))
		require.NoError(t, InitLogging(logDir, nil))
	})

	t.Run("mirrors entries to the console writer", func(t *testing.T) {
		logDir := t.TempDir()
		console := &bytes.Buffer{}

		err := InitLogging(logDir, console)
		require.NoError(t, err)

		log.Info().Str("query", "pizza").Msg("hello console")

		assert.Contains(t, console.String(), "hello console")
		assert.Contains(t, console.String(), "pizza")
	})
}

func TestInitLoggingErrorHandling(t *testing.T) {
	t.Parallel()

	t.Run("fails when log dir path is invalid", func(t *testing.T) {
		t.Parallel()

		logDir := filepath.Join(t.TempDir(), "invalid\x00path") // null byte makes it invalid

		err := InitLogging(logDir, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create log directory")
	})
}
