// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"encoding/json"
	"errors"
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/hsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexSamples(hex ...string) []Sample {
	cs := make([]color.RGBA, len(hex))
	for i, h := range hex {
		cs[i] = colors.MustFromHex(h)
	}
	return SamplesFromColors(cs...)
}

// grays are gray scale samples from very dark to very light
var grays = []string{"#737373", "#080808", "#262626", "#404040", "#595959", "#999999", "#bfbfbf", "#e6e6e6"}

// night is a diverse set of colors on a dark blue background
var night = []string{"#1a1b26", "#7aa2f7", "#c0caf5", "#f7768e", "#9ece6a", "#e0af68", "#bb9af7", "#7dcfff", "#414868"}

func blues() []Sample {
	vals := [][3]float32{{210, 60, 45}, {215, 55, 48}, {205, 65, 50}, {212, 50, 42}, {220, 60, 47}, {208, 58, 52}, {214, 62, 44}, {200, 40, 60}}
	cs := make([]color.RGBA, len(vals))
	for i, v := range vals {
		cs[i] = hsl.New(v[0], v[1], v[2]).AsRGBA()
	}
	return SamplesFromColors(cs...)
}

func lightness(c color.RGBA) float32 {
	return hsl.FromColor(c).L
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Monochrome, Classify(hexSamples(grays...), nil))
	assert.Equal(t, Chromatic, Classify(hexSamples(night...), nil))
	assert.Equal(t, LowDiversity, Classify(blues(), nil))

	// similar reds among mostly (but not enough) grays
	assert.Equal(t, LowDiversity, Classify(hexSamples("#101010", "#202020", "#303030", "#404040", "#505050", "#ff0000", "#f00000", "#e00000"), nil))

	// 6 of 8 gray is more than 70%
	assert.Equal(t, Monochrome, Classify(hexSamples("#808080", "#808080", "#808080", "#808080", "#808080", "#808080", "#ff0000", "#00ff00"), nil))

	// without any chromatic pair there is no low diversity
	assert.Equal(t, Chromatic, Classify(hexSamples("#808080", "#404040", "#ff0000"), nil))
}

func TestInsufficientColors(t *testing.T) {
	_, err := Generate(hexSamples(night[:7]...), Dark, nil)
	var ie *InsufficientColorsError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 7, ie.Have)
	assert.Equal(t, 8, ie.Need)

	_, _, err = Synthesize(nil, Light, nil)
	assert.True(t, errors.As(err, &ie))

	_, err = SynthesizeClass(nil, Monochrome, Light, nil)
	assert.True(t, errors.As(err, &ie))
}

func TestSynthesizeMonochrome(t *testing.T) {
	for _, mode := range []Mode{Dark, Light} {
		p, class, err := Synthesize(hexSamples(grays...), mode, nil)
		require.NoError(t, err)
		assert.Equal(t, Monochrome, class)
		if mode == Dark {
			assert.Equal(t, "#080808", colors.AsHex(p[Background]))
			assert.Equal(t, "#e6e6e6", colors.AsHex(p[Foreground]))
		} else {
			assert.Equal(t, "#e6e6e6", colors.AsHex(p[Background]))
			assert.Equal(t, "#080808", colors.AsHex(p[Foreground]))
		}
		for i := Red; i <= Cyan; i++ {
			assert.LessOrEqual(t, hsl.FromColor(p[i]).S, float32(5), "slot %d", i)
			if i > Red {
				assert.Greater(t, lightness(p[i]), lightness(p[i-1]), "slot %d", i)
			}
		}
	}
}

func TestSynthesizeLowDiversity(t *testing.T) {
	p, class, err := Synthesize(blues(), Dark, nil)
	require.NoError(t, err)
	assert.Equal(t, LowDiversity, class)
	for i, hue := range Hues {
		h := hsl.FromColor(p[i+1])
		assert.InDelta(t, hue, h.H, 2, "slot %d", i+1)
		assert.InDelta(t, 28, h.S, 1.5, "slot %d", i+1)
		assert.InDelta(t, 50+(float32(i)-2.5)*4, h.L, 0.5, "slot %d", i+1)
		assert.InDelta(t, 50+(float32(i)-2.5)*4+8, lightness(p[i+9]), 0.5, "slot %d", i+9)
	}
	// the neutrals are tinted with the mean hue of the blues
	assert.InDelta(t, 211, hsl.FromColor(p[BrightBlack]).H, 4)
	assert.InDelta(t, 211, hsl.FromColor(p[BrightWhite]).H, 6)

	p, _, err = Synthesize(blues(), Light, nil)
	require.NoError(t, err)
	for i := range Hues {
		assert.InDelta(t, 50+(float32(i)-2.5)*4-8, lightness(p[i+9]), 0.5, "slot %d", i+9)
	}
	assert.Greater(t, lightness(p[Background]), lightness(p[Foreground]))
}

func TestSynthesizeChromatic(t *testing.T) {
	p, class, err := Synthesize(hexSamples(night...), Dark, nil)
	require.NoError(t, err)
	assert.Equal(t, Chromatic, class)
	want := map[int]string{
		Background: "#1a1b26",
		Red:        "#f7768e",
		Green:      "#9ece6a",
		Yellow:     "#e0af68",
		Blue:       "#414868",
		Magenta:    "#bb9af7",
		Cyan:       "#7dcfff",
		Foreground: "#c0caf5",
	}
	for i, h := range want {
		assert.Equal(t, h, colors.AsHex(p[i]), "slot %d", i)
	}
	// bright versions are lighter, and bright black is lifted from the background
	for i := Red; i <= Foreground; i++ {
		assert.GreaterOrEqual(t, lightness(p[i+8]), lightness(p[i]), "slot %d", i)
	}
	assert.InDelta(t, lightness(p[Background])+15, lightness(p[BrightBlack]), 0.5)

	p, _, err = Synthesize(hexSamples(night...), Light, nil)
	require.NoError(t, err)
	assert.Equal(t, "#c0caf5", colors.AsHex(p[Background]))
	assert.Equal(t, "#1a1b26", colors.AsHex(p[Foreground]))
	assert.InDelta(t, lightness(p[Background])-15, lightness(p[BrightBlack]), 0.5)
}

func TestChromaticBackgroundClamp(t *testing.T) {
	// every sample is darker than the minimum background
	s := hexSamples("#0a0000", "#000a00", "#00000a", "#050505", "#0a0a00", "#000a0a", "#0a000a", "#080000")
	p, err := SynthesizeClass(s, Chromatic, Dark, nil)
	require.NoError(t, err)
	assert.InDelta(t, 8, lightness(p[Background]), 0.5)
	assert.GreaterOrEqual(t, lightness(p[Foreground])-lightness(p[Background]), float32(39.5))
}

func TestGenerateContrast(t *testing.T) {
	sets := map[string][]Sample{
		"grays": hexSamples(grays...),
		"night": hexSamples(night...),
		"blues": blues(),
	}
	opts := DefaultOptions()
	for name, s := range sets {
		for _, mode := range []Mode{Dark, Light} {
			p, err := Generate(s, mode, opts)
			require.NoError(t, err, name)
			assert.Len(t, p, Size)
			bg := lightness(p[Background])
			assert.GreaterOrEqual(t, bg, opts.MinBackground, name)
			assert.LessOrEqual(t, bg, opts.MaxBackground, name)
			assert.GreaterOrEqual(t, colors.ContrastRatio(p[Background], p[Foreground]), opts.MinContrastRatio, "%s %v", name, mode)
			for _, c := range p {
				assert.Equal(t, uint8(255), c.A)
			}
		}
	}
}

func TestGenerateMonochrome(t *testing.T) {
	p, err := Generate(hexSamples(grays...), Dark, nil)
	require.NoError(t, err)
	// the darkest sample has lightness 3 and is clamped
	assert.GreaterOrEqual(t, lightness(p[Background]), float32(8))
	for i := Red; i <= Cyan; i++ {
		assert.LessOrEqual(t, hsl.FromColor(p[i]).S, float32(5), "slot %d", i)
	}
}

func TestMonochromeSaturation(t *testing.T) {
	cs := make([]color.RGBA, 8)
	for i := range cs {
		v := uint8(i * 28)
		cs[i] = color.RGBA{v, v, v, 255}
	}
	s := SamplesFromColors(cs...)
	for _, mode := range []Mode{Dark, Light} {
		p, class, err := Synthesize(s, mode, nil)
		require.NoError(t, err)
		require.Equal(t, Monochrome, class)
		g, err := Generate(s, mode, nil)
		require.NoError(t, err)
		for i := Red; i <= Cyan; i++ {
			assert.LessOrEqual(t, hsl.FromColor(p[i]).S, float32(5), "%v slot %d", mode, i)
			assert.LessOrEqual(t, hsl.FromColor(g[i]).S, float32(5), "%v generated slot %d", mode, i)
		}
	}
}

func TestNormalizeSeparatesForeground(t *testing.T) {
	opts := DefaultOptions()
	check := func(bg, fg color.RGBA) {
		t.Helper()
		var b Builder
		for i := range Size {
			b.SetHSL(i, 0, 0, 50)
		}
		b.Set(Background, bg).Set(Foreground, fg)
		p, err := b.Palette()
		require.NoError(t, err)
		n := Normalize(p, opts)
		name := colors.AsHex(bg) + " " + colors.AsHex(fg)
		d := lightness(n[Foreground]) - lightness(n[Background])
		if d < 0 {
			d = -d
		}
		assert.GreaterOrEqual(t, d, opts.MinForegroundContrast, name)
		assert.GreaterOrEqual(t, colors.ContrastRatio(n[Background], n[Foreground]), opts.MinContrastRatio, name)
		assert.GreaterOrEqual(t, lightness(n[Background]), opts.MinBackground, name)
		assert.LessOrEqual(t, lightness(n[Background]), opts.MaxBackground, name)
	}

	// a mid-tone green where only the lighter side has room, but
	// white does not contrast enough with it
	check(colors.MustFromHex("#288570"), colors.MustFromHex("#202020"))

	for h := float32(0); h < 360; h += 30 {
		for _, s := range []float32{0, 50, 100} {
			for l := float32(25); l <= 75; l += 5 {
				bg := hsl.New(h, s, l).AsRGBA()
				check(bg, colors.MustFromHex("#202020"))
				check(bg, colors.MustFromHex("#e0e0e0"))
				check(bg, bg)
			}
		}
	}
}

func TestNormalizeVeryDark(t *testing.T) {
	p, _, err := Synthesize(hexSamples(night...), Dark, nil)
	require.NoError(t, err)
	n := Normalize(p, nil)
	assert.Equal(t, p[Background], n[Background])
	for i := Red; i <= Foreground; i++ {
		assert.GreaterOrEqual(t, lightness(n[i]), float32(54.5), "slot %d", i)
	}
	// blue was too dark and is pushed to 55 + 4*3
	assert.InDelta(t, 67, lightness(n[Blue]), 0.5)
	assert.InDelta(t, hsl.FromColor(p[Blue]).H, hsl.FromColor(n[Blue]).H, 2)
	assert.NotEqual(t, p[BrightBlue], n[BrightBlue])
	// colors that were fine are untouched
	assert.Equal(t, p[Red], n[Red])
	assert.Equal(t, p[BrightRed], n[BrightRed])
}

func TestNormalizeVeryLight(t *testing.T) {
	p, _, err := Synthesize(hexSamples(night...), Light, nil)
	require.NoError(t, err)
	n := Normalize(p, nil)
	for i := Red; i <= Foreground; i++ {
		assert.LessOrEqual(t, lightness(n[i]), float32(45.5), "slot %d", i)
	}
	assert.InDelta(t, 43, lightness(n[Red]), 0.5)
	assert.InDelta(t, 33, lightness(n[Cyan]), 0.5)
	assert.Equal(t, p[Blue], n[Blue])
	assert.GreaterOrEqual(t, lightness(n[Background])-lightness(n[BrightWhite]), float32(40))
}

func TestNormalizeBackgroundClamp(t *testing.T) {
	var b Builder
	for i := range Size {
		b.SetHSL(i, 0, 0, 60)
	}
	b.SetHSL(Background, 200, 40, 3)
	p, err := b.Palette()
	require.NoError(t, err)
	n := Normalize(p, nil)
	assert.GreaterOrEqual(t, lightness(n[Background]), float32(8))
	assert.InDelta(t, 200, hsl.FromColor(n[Background]).H, 3)

	b.SetHSL(Background, 200, 40, 97)
	p, err = b.Palette()
	require.NoError(t, err)
	n = Normalize(p, nil)
	assert.LessOrEqual(t, lightness(n[Background]), float32(92))
	assert.GreaterOrEqual(t, colors.ContrastRatio(n[Background], n[Foreground]), float32(4.5))
	assert.GreaterOrEqual(t, lightness(n[Background])-lightness(n[BrightWhite]), float32(40))
}

func TestNormalizeOutliers(t *testing.T) {
	var b Builder
	b.SetHSL(Background, 0, 0, 40).SetHSL(BrightBlack, 0, 0, 55)
	for i := Red; i <= Foreground; i++ {
		b.SetHSL(i, float32(i)*40, 60, 70)
		b.SetHSL(i+8, float32(i)*40, 60, 80)
	}
	b.SetHSL(Green, 120, 60, 20)
	p, err := b.Palette()
	require.NoError(t, err)
	n := Normalize(p, nil)
	// mean lightness is (6*70+20)/7, so green is a dark outlier in a bright palette
	mean := float32(6*70+20) / 7
	assert.InDelta(t, mean-10, lightness(n[Green]), 0.5)
	assert.InDelta(t, mean-10+18, lightness(n[BrightGreen]), 0.5)
	assert.Equal(t, p[Red], n[Red])
}

func TestBuilder(t *testing.T) {
	var b Builder
	b.Set(Background, colors.Black).Set(Foreground, colors.White)
	c, ok := b.Get(Foreground)
	assert.True(t, ok)
	assert.Equal(t, colors.White, c)
	_, ok = b.Get(Red)
	assert.False(t, ok)

	_, err := b.Palette()
	var ie *IncompleteError
	require.True(t, errors.As(err, &ie))
	assert.Len(t, ie.Missing, 14)
	assert.Equal(t, Red, ie.Missing[0])

	for i := range Size {
		b.Set(i, colors.White)
	}
	p, err := b.Palette()
	require.NoError(t, err)
	assert.Equal(t, colors.White, p[Background])
}

func TestPaletteJSON(t *testing.T) {
	p, err := Generate(hexSamples(night...), Dark, nil)
	require.NoError(t, err)
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), `["#1a1b26",`))

	var q Palette
	require.NoError(t, json.Unmarshal(b, &q))
	assert.Equal(t, p, q)

	assert.Error(t, json.Unmarshal([]byte(`["#000000"]`), &q))
	_, err = PaletteFromHex(append(make([]string, 15), "#zzz"))
	assert.Error(t, err)
}

func TestEnums(t *testing.T) {
	var c Class
	require.NoError(t, c.SetString("lowdiversity"))
	assert.Equal(t, LowDiversity, c)
	assert.Equal(t, "LowDiversity", c.String())
	assert.Error(t, c.SetString("vivid"))
	assert.Len(t, c.Values(), 3)
	assert.Equal(t, "Class(9)", Class(9).String())

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("Light")))
	assert.Equal(t, Light, m)
	b, err := Dark.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dark", string(b))
}
