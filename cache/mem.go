// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import "sync"

// MemStore is a [Store] that keeps entries in memory.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemStore returns a new empty [MemStore].
func NewMemStore() *MemStore {
	return &MemStore{entries: map[string]Entry{}}
}

func (m *MemStore) Get(key Key) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key.Hash()]
	return e, ok, nil
}

func (m *MemStore) Put(key Key, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key.Hash()] = e
	return nil
}

// Len returns the number of entries in the store.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
