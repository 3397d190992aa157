// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the tint tool.
package config

import (
	"fmt"
	"log/slog"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/cache"
	"cogentcore.org/tint/colors/ansi"
	"cogentcore.org/tint/colors/matcolor"
)

// Config is the main config struct
// that contains all of the configuration
// options for the tint tool.
type Config struct {

	// the palette mode: auto, dark, or light
	Mode string `toml:"mode" default:"auto"`

	// the thresholds of palette synthesis and normalization
	Palette ansi.Options `toml:"palette"`

	// the options of scheme generation
	Scheme matcolor.Options `toml:"scheme"`

	// where generated palettes are cached
	Cache Cache `toml:"cache"`

	// the logging options
	Log Log `toml:"log"`
}

// Cache contains the configuration options for the palette cache.
type Cache struct {

	// the cache backend: file, sqlite, memory, or none
	Backend string `toml:"backend" default:"file"`

	// the directory of the file backend
	Dir string `toml:"dir" default:"~/.cache/tint/color-cache"`

	// the database path of the sqlite backend
	Database string `toml:"database" default:"~/.cache/tint/palettes.db"`
}

// Log contains the configuration options for logging.
type Log struct {

	// the minimum level of messages that are shown
	Level slog.Level `toml:"level" default:"INFO"`
}

// New returns a new [Config] with all default values set.
func New() *Config {
	cfg := &Config{}
	// the default tags are fixed, so this cannot fail
	errors.Must(Defaults(cfg))
	return cfg
}

// Validate returns an error if any of the values are not
// among the allowed ones.
func (c *Config) Validate() error {
	if _, _, err := c.PaletteMode(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "file", "sqlite", "memory", "none":
	default:
		return fmt.Errorf("config: unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// PaletteMode returns the configured [ansi.Mode], and whether
// it should instead be detected from the samples (auto).
func (c *Config) PaletteMode() (mode ansi.Mode, auto bool, err error) {
	if c.Mode == "auto" || c.Mode == "" {
		return ansi.Dark, true, nil
	}
	if err := mode.SetString(c.Mode); err != nil {
		return ansi.Dark, false, fmt.Errorf("config: mode: %w", err)
	}
	return mode, false, nil
}

// Store opens the cache [cache.Store] of the configured backend.
// It returns a nil store for the none backend. The returned
// close function must be called when the store is no longer used.
func (c *Cache) Store() (cache.Store, func() error, error) {
	nop := func() error { return nil }
	switch c.Backend {
	case "none":
		return nil, nop, nil
	case "memory":
		return cache.NewMemStore(), nop, nil
	case "file", "":
		s, err := cache.NewFileStore(c.Dir)
		return s, nop, err
	case "sqlite":
		s, err := cache.OpenSQLite(c.Database)
		if err != nil {
			return nil, nop, err
		}
		return s, s.Close, nil
	}
	return nil, nop, fmt.Errorf("config: unknown cache backend %q", c.Backend)
}
