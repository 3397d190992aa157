// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the default location of the config file,
// before the home directory is expanded.
const DefaultPath = "~/.config/tint/config.toml"

// Open reads the config from the given TOML file on top of the
// default values. A missing file gives the defaults, and an empty
// path uses [DefaultPath]. Unknown keys are an error.
func Open(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		path = DefaultPath
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := Read(cfg, bufio.NewReader(f)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Read reads TOML config values from the given reader into cfg,
// leaving values that are not present unchanged.
func Read(cfg *Config, r io.Reader) error {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Save writes the config to the given TOML file, creating
// its directory if needed. An empty path uses [DefaultPath].
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(cfg, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes the config as TOML to the given writer.
func Write(cfg *Config, w io.Writer) error {
	e := toml.NewEncoder(w)
	e.SetIndentTables(true)
	return e.Encode(cfg)
}
