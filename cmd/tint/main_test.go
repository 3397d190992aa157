// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// night is a diverse set of colors on a dark blue background
var night = []string{"#1a1b26", "#7aa2f7", "#c0caf5", "#f7768e", "#9ece6a", "#e0af68", "#bb9af7", "#7dcfff", "#414868"}

const histogram = `     12: (26,27,38) #1A1B26 srgb(26,27,38)
    340: (122,162,247) #7AA2F7 srgb(122,162,247)
      7: (192,202,245) #C0CAF5 srgb(192,202,245)
   1203: (247,118,142) #F7768E srgb(247,118,142)
     90: (158,206,106) #9ECE6A srgb(158,206,106)
     80: (224,175,104) #E0AF68 srgb(224,175,104)
     70: (187,154,247) #BB9AF7 srgb(187,154,247)
     60: (125,207,255) #7DCFFF srgb(125,207,255)
     50: (65,72,104) #414868 srgb(65,72,104)
`

// writeConfig writes a config file using the given cache backend
// and returns its path.
func writeConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	cfg := "[cache]\nbackend = \"" + backend + "\"\ndir = \"" + filepath.ToSlash(filepath.Join(dir, "cache")) + "\"\ndatabase = \"" + filepath.ToSlash(filepath.Join(dir, "palettes.db")) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func writeHistogram(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wall.txt")
	require.NoError(t, os.WriteFile(path, []byte(histogram), 0o644))
	return path
}

func run(t *testing.T, backend string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(append([]string{"--config", writeConfig(t, backend)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPaletteJSON(t *testing.T) {
	out, err := run(t, "none", append([]string{"palette", "--dark", "-o", "json"}, night...)...)
	require.NoError(t, err)

	var res paletteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "dark", res.Mode.String())
	assert.Equal(t, "chromatic", res.Class.String())
	assert.Len(t, res.Colors, 16)
	assert.Empty(t, res.Source)
	assert.Empty(t, res.Variant)
}

func TestPaletteFormats(t *testing.T) {
	args := append([]string{"palette", "--light"}, night...)

	out, err := run(t, "none", append(args, "-o", "yaml")...)
	require.NoError(t, err)
	var y paletteOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &y))
	assert.Len(t, y.Colors, 16)
	assert.Equal(t, "light", y.Mode.String())

	out, err = run(t, "none", append(args, "-o", "toml")...)
	require.NoError(t, err)
	var tm paletteOutput
	require.NoError(t, toml.Unmarshal([]byte(out), &tm))
	assert.Equal(t, y.Colors, tm.Colors)

	out, err = run(t, "none", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "light palette")
	assert.Contains(t, out, "brightWhite")
}

func TestPaletteHistogram(t *testing.T) {
	for _, backend := range []string{"none", "memory", "file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			out, err := run(t, backend, "palette", "--histogram", writeHistogram(t), "--dark", "-o", "json")
			require.NoError(t, err)
			var res paletteOutput
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.Len(t, res.Colors, 16)
			assert.True(t, strings.HasSuffix(res.Source, "wall.txt"))
		})
	}
}

func TestPaletteSlider(t *testing.T) {
	out, err := run(t, "none", append([]string{"palette", "--dark", "--variant-slider", "25", "-o", "json"}, night...)...)
	require.NoError(t, err)
	var res paletteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Neutral", res.Variant)
	assert.Len(t, res.Colors, 16)
}

func TestPaletteErrors(t *testing.T) {
	_, err := run(t, "none", "palette")
	assert.ErrorContains(t, err, "need colors")

	_, err = run(t, "none", append([]string{"palette", "-o", "xml"}, night...)...)
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "none", "palette", "#000000", "#ffffff")
	assert.ErrorContains(t, err, "need 8")

	_, err = run(t, "none", "palette", "not-a-color")
	assert.Error(t, err)

	_, err = run(t, "none", append([]string{"palette", "--light", "--dark"}, night...)...)
	assert.Error(t, err)

	_, err = run(t, "bogus", append([]string{"palette"}, night...)...)
	assert.ErrorContains(t, err, "bogus")
}

func TestScheme(t *testing.T) {
	out, err := run(t, "none", "scheme", "#3daee9", "-o", "json")
	require.NoError(t, err)
	var res schemeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "#3daee9", res.Seed)
	assert.Empty(t, res.Families)

	names := make(map[string]role)
	for _, r := range res.Roles {
		names[r.Name] = r
	}
	require.Contains(t, names, "linkPrimary")
	require.Contains(t, names, "surface")
	assert.NotEqual(t, names["surface"].Light, names["surface"].Dark)

	out, err = run(t, "none", "scheme", "--histogram", writeHistogram(t), "--tones", "-o", "yaml")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Families)
	assert.Equal(t, "primary", res.Families[0].Name)
	assert.Len(t, res.Families[0].Tones, 101)
	assert.Equal(t, "#000000", res.Families[0].Tones[0])
	assert.Equal(t, "#ffffff", res.Families[0].Tones[100])

	out, err = run(t, "none", "scheme", "#3daee9")
	require.NoError(t, err)
	assert.Contains(t, out, "onPrimaryContainer")
	assert.Contains(t, out, "light ")
	assert.Contains(t, out, "dark  ")

	_, err = run(t, "none", "scheme")
	assert.Error(t, err)
}

func TestVariant(t *testing.T) {
	out, err := run(t, "none", "variant", "monochrome", "#ff0000", "#00ff00", "-o", "json")
	require.NoError(t, err)
	var res variantOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Monochrome", res.Variant)
	assert.Nil(t, res.Slider)
	assert.Equal(t, []string{"#808080", "#808080"}, res.Colors)

	out, err = run(t, "none", "variant", "0", "#ff0000", "-o", "json")
	require.NoError(t, err)
	res = variantOutput{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Slider)
	assert.Equal(t, float32(0), *res.Slider)
	assert.Equal(t, "Content", res.Variant)

	_, err = run(t, "none", "variant", "sparkly", "#ff0000")
	assert.Error(t, err)

	_, err = run(t, "none", "variant", "50")
	assert.Error(t, err)

	for _, bad := range []string{"NaN", "Inf", "-Inf"} {
		_, err = run(t, "none", "variant", bad, "#123456")
		assert.ErrorContains(t, err, "invalid slider position", bad)
	}
}

// syncBuffer is a buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	hist := writeHistogram(t)
	cmd := newRootCmd()
	out := &syncBuffer{}
	cmd.SetOut(out)
	cmd.SetErr(&syncBuffer{})
	cmd.SetArgs([]string{"--config", writeConfig(t, "none"), "watch", hist, "--dark", "-o", "json"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), `"colors"`) >= 1
	}, 5*time.Second, 10*time.Millisecond)

	// keep rewriting until the watcher is set up and notices
	require.Eventually(t, func() bool {
		if err := os.WriteFile(hist, []byte(histogram), 0o644); err != nil {
			return false
		}
		return strings.Count(out.String(), `"colors"`) >= 2
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
