// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache stores generated palettes keyed by their source
// file, its modification time, and the palette mode, so that a
// palette is only computed again when its source changes.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/tint/colors/ansi"
)

// Version is the version of the cached palette format. Entries
// with a different version are treated as absent.
const Version = 3

// Key identifies one cached palette.
type Key struct {

	// Source is the path of the file the palette was generated from
	Source string

	// ModTime is the modification time of the source, in Unix seconds
	ModTime int64

	// Mode is the mode of the palette
	Mode ansi.Mode
}

// KeyForFile returns the [Key] for the given source file in the given
// mode, using the current modification time of the file.
func KeyForFile(path string, mode ansi.Mode) (Key, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Key{}, err
	}
	st, err := os.Stat(abs)
	if err != nil {
		return Key{}, err
	}
	return Key{Source: abs, ModTime: st.ModTime().Unix(), Mode: mode}, nil
}

// Hash returns the hex MD5 digest of the key, which is used
// as the file name or row key of the entry.
func (k Key) Hash() string {
	sum := md5.Sum([]byte(k.String()))
	return hex.EncodeToString(sum[:])
}

// String returns the key as source-mtime-mode.
func (k Key) String() string {
	return fmt.Sprintf("%s-%d-%s", k.Source, k.ModTime, k.Mode)
}

// Entry is one cached palette.
type Entry struct {
	Version int          `json:"version"`
	Palette ansi.Palette `json:"palette"`
}

// Store is a persistent or in-memory collection of cache entries.
// Implementations must be safe for concurrent use.
type Store interface {

	// Get returns the entry for the given key, and whether it exists.
	Get(key Key) (Entry, bool, error)

	// Put stores the entry for the given key, replacing any existing one.
	Put(key Key, e Entry) error
}

// Pruner is a [Store] that can delete the entries made from
// other versions of a source, which can never be hit again.
type Pruner interface {

	// Prune deletes the entries for the given source whose
	// modification time differs from the given one, returning
	// the number of deleted entries.
	Prune(source string, modTime int64) (int64, error)
}
