// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/tint/cache"
	"cogentcore.org/tint/colors/ansi"
	"cogentcore.org/tint/colors/matcolor"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()
	assert.Equal(t, *ansi.DefaultOptions(), cfg.Palette)
	assert.Equal(t, *matcolor.DefaultOptions(), cfg.Scheme)
	assert.Equal(t, "auto", cfg.Mode)
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.Equal(t, cache.DefaultDir, cfg.Cache.Dir)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestDefaults(t *testing.T) {
	type inner struct {
		N int8    `default:"0x10"`
		U uint    `default:"7"`
		F float64 `default:"2.5"`
	}
	type outer struct {
		S     string `default:"hi"`
		B     bool   `default:"true"`
		In    inner
		Level slog.Level `default:"WARN"`
		plain int
	}
	var o outer
	require.NoError(t, Defaults(&o))
	assert.Equal(t, "hi", o.S)
	assert.True(t, o.B)
	assert.Equal(t, int8(16), o.In.N)
	assert.Equal(t, uint(7), o.In.U)
	assert.Equal(t, 2.5, o.In.F)
	assert.Equal(t, slog.LevelWarn, o.Level)
	assert.Zero(t, o.plain)

	assert.Error(t, Defaults(o))
	var bad struct {
		N int `default:"lots"`
	}
	assert.Error(t, Defaults(&bad))
	var unsupported struct {
		M map[string]int `default:"x"`
	}
	assert.Error(t, Defaults(&unsupported))
}

func TestOpenMissing(t *testing.T) {
	cfg, err := Open(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestSaveOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tint", "config.toml")
	cfg := New()
	cfg.Mode = "light"
	cfg.Palette.MinContrastRatio = 7
	cfg.Scheme.Harmonize = false
	cfg.Cache.Backend = "sqlite"
	cfg.Log.Level = slog.LevelDebug
	require.NoError(t, Save(cfg, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[palette]")
	assert.Contains(t, string(b), "min-contrast-ratio = 7")
	assert.Contains(t, string(b), "DEBUG")
	assert.NotContains(t, string(b), "Converter")

	got, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestRead(t *testing.T) {
	cfg := New()
	err := Read(cfg, strings.NewReader("mode = 'dark'\n[palette]\nmin-samples = 4\n"))
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Mode)
	assert.Equal(t, 4, cfg.Palette.MinSamples)
	assert.Equal(t, ansi.DefaultOptions().MaxBackground, cfg.Palette.MaxBackground)

	mode, auto, err := cfg.PaletteMode()
	require.NoError(t, err)
	assert.False(t, auto)
	assert.Equal(t, ansi.Dark, mode)
}

func TestReadErrors(t *testing.T) {
	err := Read(New(), strings.NewReader("[palette]\nbogus = 1\n"))
	var sme *toml.StrictMissingError
	assert.True(t, errors.As(err, &sme), "%v", err)

	assert.Error(t, Read(New(), strings.NewReader("mode = 'sepia'\n")))
	assert.Error(t, Read(New(), strings.NewReader("[cache]\nbackend = 'redis'\n")))
	assert.Error(t, Read(New(), strings.NewReader("[palette\n")))

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = 'LOUD'\n"), 0o644))
	_, err = Open(path)
	assert.ErrorContains(t, err, path)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(New(), &buf))
	cfg := New()
	cfg.Mode = "light"
	require.NoError(t, Read(cfg, &buf))
	assert.Equal(t, New(), cfg)
}

func TestPaletteMode(t *testing.T) {
	cfg := New()
	_, auto, err := cfg.PaletteMode()
	require.NoError(t, err)
	assert.True(t, auto)

	cfg.Mode = "Light"
	mode, auto, err := cfg.PaletteMode()
	require.NoError(t, err)
	assert.False(t, auto)
	assert.Equal(t, ansi.Light, mode)
}

func TestCacheStore(t *testing.T) {
	dir := t.TempDir()
	c := Cache{Backend: "file", Dir: filepath.Join(dir, "files"), Database: filepath.Join(dir, "db", "p.db")}

	s, closer, err := c.Store()
	require.NoError(t, err)
	assert.IsType(t, &cache.FileStore{}, s)
	assert.NoError(t, closer())

	c.Backend = "sqlite"
	s, closer, err = c.Store()
	require.NoError(t, err)
	assert.IsType(t, &cache.SQLiteStore{}, s)
	assert.NoError(t, closer())

	c.Backend = "memory"
	s, _, err = c.Store()
	require.NoError(t, err)
	assert.IsType(t, &cache.MemStore{}, s)

	c.Backend = "none"
	s, _, err = c.Store()
	require.NoError(t, err)
	assert.Nil(t, s)

	c.Backend = "redis"
	_, _, err = c.Store()
	assert.Error(t, err)
}
