// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"log/slog"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/colors/ansi"
	"golang.org/x/sync/singleflight"
)

// Cache computes palettes through a [Store], so that each palette
// is computed at most once per key. Concurrent requests for the
// same key share one computation.
type Cache struct {
	Store Store

	group singleflight.Group
}

// New returns a new [Cache] using the given store.
// A nil store uses a new [MemStore].
func New(store Store) *Cache {
	if store == nil {
		store = NewMemStore()
	}
	return &Cache{Store: store}
}

// lookup returns the stored entry for the key if it exists
// and has the current [Version]. Store errors count as a miss.
func (c *Cache) lookup(key Key) (ansi.Palette, bool) {
	e, ok, err := c.Store.Get(key)
	if err != nil {
		slog.Error("cache: loading palette", "source", key.Source, "err", err)
		return ansi.Palette{}, false
	}
	if !ok {
		return ansi.Palette{}, false
	}
	if e.Version != Version {
		slog.Debug("cache: ignoring stale entry", "source", key.Source, "version", e.Version)
		return ansi.Palette{}, false
	}
	return e.Palette, true
}

// Palette returns the cached palette for the given key, calling
// compute to make and store it if there is none. Errors from
// compute are returned and nothing is stored; errors from the
// store are logged and otherwise ignored.
func (c *Cache) Palette(key Key, compute func() (ansi.Palette, error)) (ansi.Palette, error) {
	if p, ok := c.lookup(key); ok {
		slog.Debug("cache: hit", "source", key.Source, "mode", key.Mode)
		return p, nil
	}
	v, err, _ := c.group.Do(key.Hash(), func() (any, error) {
		if p, ok := c.lookup(key); ok {
			return p, nil
		}
		p, err := compute()
		if err != nil {
			return nil, err
		}
		if err := c.Store.Put(key, Entry{Version: Version, Palette: p}); err != nil {
			slog.Error("cache: saving palette", "source", key.Source, "err", err)
		} else {
			slog.Info("cache: saved palette", "source", key.Source, "mode", key.Mode)
			c.prune(key)
		}
		return p, nil
	})
	if err != nil {
		return ansi.Palette{}, err
	}
	return v.(ansi.Palette), nil
}

// prune removes the entries of older versions of the source
// of the key, if the store supports it.
func (c *Cache) prune(key Key) {
	p, ok := c.Store.(Pruner)
	if !ok {
		return
	}
	if n := errors.Log1(p.Prune(key.Source, key.ModTime)); n > 0 {
		slog.Debug("cache: pruned stale entries", "source", key.Source, "n", n)
	}
}

// File is a helper for [Cache.Palette] that derives the key from
// the current modification time of the given file.
func (c *Cache) File(path string, mode ansi.Mode, compute func() (ansi.Palette, error)) (ansi.Palette, error) {
	key, err := KeyForFile(path, mode)
	if err != nil {
		return ansi.Palette{}, err
	}
	return c.Palette(key, compute)
}
