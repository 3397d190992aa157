// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// DefaultDir is the default directory of a [FileStore], before
// the home directory is expanded.
const DefaultDir = "~/.cache/tint/color-cache"

// FileStore is a [Store] that keeps each entry in its own
// JSON file, named by the hash of its key.
type FileStore struct {

	// Dir is the directory containing the entry files
	Dir string
}

// NewFileStore returns a new [FileStore] in the given directory,
// creating it if needed. An empty dir uses [DefaultDir].
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = DefaultDir
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (f *FileStore) path(key Key) string {
	return filepath.Join(f.Dir, key.Hash()+".json")
}

func (f *FileStore) Get(key Key) (Entry, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return Entry{}, false, fmt.Errorf("read cache entry %s: %w", key.Hash(), err)
	}
	return e, true, nil
}

// Put writes the entry to a temporary file and renames it into
// place, so readers never see a partial entry.
func (f *FileStore) Put(key Key, e Entry) error {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.Dir, "entry-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path(key))
}
