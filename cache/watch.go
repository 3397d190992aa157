// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls a function whenever one of a set of source files
// is written or created. Since cache keys include the modification
// time, the caller only needs to derive the key again to pick up
// the change.
//
// The parent directories are watched rather than the files, so
// that files replaced by a rename (as many editors do) are seen.
type Watcher struct {

	// OnChange is called with the absolute path of each changed file
	OnChange func(path string)

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	files   map[string]bool
	dirs    map[string]bool
}

// NewWatcher returns a new [Watcher] calling the given function,
// watching the given files.
func NewWatcher(onChange func(path string), files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{OnChange: onChange, watcher: fw, files: map[string]bool{}, dirs: map[string]bool{}}
	for _, f := range files {
		if err := w.Add(f); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Add starts watching the given file.
func (w *Watcher) Add(file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[abs] = true
	dir := filepath.Dir(abs)
	if w.dirs[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.dirs[dir] = true
	return nil
}

func (w *Watcher) watched(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[path]
}

// Watch delivers changes until the context is done, and then
// releases the underlying watcher. It returns nil when the
// context is canceled.
func (w *Watcher) Watch(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(event.Name)
			if !w.watched(path) {
				continue
			}
			slog.Debug("cache: source changed", "path", path, "op", event.Op)
			if w.OnChange != nil {
				w.OnChange(path)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("cache: watching sources", "err", err)
		}
	}
}
