// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS palettes (
		hash TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		mtime INTEGER NOT NULL,
		mode TEXT NOT NULL,
		version INTEGER NOT NULL,
		palette TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS palettes_source ON palettes(source)`,
}

// SQLiteStore is a [Store] backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at the
// given path and returns a [SQLiteStore] using it.
func OpenSQLite(path string) (*SQLiteStore, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", pragma, err)
		}
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key Key) (Entry, bool, error) {
	var e Entry
	var pal string
	err := s.db.QueryRow(`SELECT version, palette FROM palettes WHERE hash = ?`, key.Hash()).Scan(&e.Version, &pal)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	if err := json.Unmarshal([]byte(pal), &e.Palette); err != nil {
		return Entry{}, false, fmt.Errorf("read cache entry %s: %w", key.Hash(), err)
	}
	return e, true, nil
}

func (s *SQLiteStore) Put(key Key, e Entry) error {
	pal, err := json.Marshal(e.Palette)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO palettes (hash, source, mtime, mode, version, palette)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(hash) DO UPDATE SET version = excluded.version, palette = excluded.palette`,
		key.Hash(), key.Source, key.ModTime, key.Mode.String(), e.Version, string(pal))
	return err
}

var _ Pruner = (*SQLiteStore)(nil)

// Prune deletes all entries for the given source whose
// modification time differs from the given one, returning
// the number of deleted entries.
func (s *SQLiteStore) Prune(source string, modTime int64) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM palettes WHERE source = ? AND mtime != ?`, source, modTime)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
