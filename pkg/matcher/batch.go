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
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchResult pairs a query with its best match, if any.
type BatchResult struct {
	Query string
	Match string
	OK    bool
}

// FindBestMatchBatch runs FindBestMatch for every query against the same
// candidate list, bounded to one worker per CPU. Results keep query order.
// The only error source is ctx: a cancellation aborts the batch and is
// returned wrapped.
func (m *Matcher) FindBestMatchBatch(
	ctx context.Context, queries, candidates []string,
) ([]BatchResult, error) {
	results := make([]BatchResult, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, query := range queries {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			match, ok := m.FindBestMatch(query, candidates)
			results[i] = BatchResult{Query: query, Match: match, OK: ok}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch match aborted: %w", err)
	}
	return results, nil
}
