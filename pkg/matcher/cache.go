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
	"container/list"

	"github.com/DeliMatchProject/delimatch-core/pkg/helpers/syncutil"
)

// lruCache memoizes results of pure string functions with a least recently
// used eviction bound. Concurrent callers racing on the same key at worst
// recompute the value; they never observe a wrong one.
type lruCache[V any] struct {
	entries  map[string]*list.Element
	order    *list.List
	capacity int
	mu       syncutil.Mutex
}

type lruEntry[V any] struct {
	key   string
	value V
}

func newLRUCache[V any](capacity int) *lruCache[V] {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &lruCache[V]{
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the cached value for key and marks it most recently used.
func (c *lruCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	entry, _ := elem.Value.(*lruEntry[V])
	return entry.value, true
}

// Add stores the value for key, evicting the least recently used entry when
// the cache is full.
func (c *lruCache[V]) Add(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		entry, _ := elem.Value.(*lruEntry[V])
		entry.value = value
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			entry, _ := oldest.Value.(*lruEntry[V])
			delete(c.entries, entry.key)
			c.order.Remove(oldest)
		}
	}

	c.entries[key] = c.order.PushFront(&lruEntry[V]{key: key, value: value})
}

// Clear removes all entries.
func (c *lruCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}

// Len returns the number of cached entries.
func (c *lruCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
