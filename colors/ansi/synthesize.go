// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/tint/colors/hsl"
	"github.com/chewxy/math32"
)

const (
	// monoSaturation is the saturation of the gray stops of a monochrome palette.
	monoSaturation = 5

	// subtleSaturation is the saturation of the standard colors of a low diversity palette.
	subtleSaturation = 28

	// darkColor is the lightness below which a background counts as dark.
	darkColor = 50
)

// InsufficientColorsError is returned when there are too
// few samples to synthesize a palette from.
type InsufficientColorsError struct {
	Have int
	Need int
}

func (e *InsufficientColorsError) Error() string {
	return fmt.Sprintf("ansi: not enough colors to build a palette: have %d, need %d", e.Have, e.Need)
}

// Synthesize classifies the given samples and builds a palette
// for the given mode with the strategy for their [Class].
// The palette is not normalized; see [Generate] for the full pipeline.
// The options may be nil, in which case [DefaultOptions] are used.
func Synthesize(samples []Sample, mode Mode, opts *Options) (Palette, Class, error) {
	opts = orDefault(opts)
	if len(samples) < opts.MinSamples {
		return Palette{}, Chromatic, &InsufficientColorsError{Have: len(samples), Need: opts.MinSamples}
	}
	class := Classify(samples, opts)
	p, err := SynthesizeClass(samples, class, mode, opts)
	return p, class, err
}

// SynthesizeClass builds a palette for the given mode with the
// strategy for the given class, regardless of the class of the samples.
func SynthesizeClass(samples []Sample, class Class, mode Mode, opts *Options) (Palette, error) {
	opts = orDefault(opts)
	if len(samples) < opts.MinSamples || len(samples) == 0 {
		return Palette{}, &InsufficientColorsError{Have: len(samples), Need: max(opts.MinSamples, 1)}
	}
	ss := make([]sampleHSL, len(samples))
	for i, s := range samples {
		ss[i] = sampleHSL{c: s.Color, h: opts.toHSL(s.Color)}
	}
	var b *Builder
	switch class {
	case Monochrome:
		b = monochrome(ss, mode)
	case LowDiversity:
		b = lowDiversity(ss, mode, opts)
	default:
		b = chromatic(ss, mode, opts)
	}
	slog.Debug("ansi: synthesized palette", "class", class, "mode", mode, "samples", len(samples))
	return b.Palette()
}

// sampleHSL is a sample color along with its HSL value.
type sampleHSL struct {
	c color.RGBA
	h hsl.HSL
}

// extremes returns the darkest and lightest samples.
func extremes(ss []sampleHSL) (darkest, lightest sampleHSL) {
	sorted := slices.Clone(ss)
	slices.SortStableFunc(sorted, func(a, b sampleHSL) int {
		switch {
		case a.h.L < b.h.L:
			return -1
		case a.h.L > b.h.L:
			return 1
		}
		return 0
	})
	return sorted[0], sorted[len(sorted)-1]
}

// anchor sets the background and foreground to the darkest and
// lightest samples, swapped for light mode.
func anchor(b *Builder, darkest, lightest sampleHSL, mode Mode) {
	if mode == Light {
		b.Set(Background, lightest.c).Set(Foreground, darkest.c)
		return
	}
	b.Set(Background, darkest.c).Set(Foreground, lightest.c)
}

// monochrome builds a gray scale palette tinted with the hue of
// the darkest sample, with six evenly spaced lightness stops.
func monochrome(ss []sampleHSL, mode Mode) *Builder {
	b := &Builder{}
	darkest, lightest := extremes(ss)
	anchor(b, darkest, lightest, mode)
	d, l := darkest.h.L, lightest.h.L
	hue := darkest.h.H

	var start, end, shift float32
	if mode == Light {
		start, end, shift = d+10, min(d+40, l-10), -10
		if end <= start {
			start, end = max(0, d), min(100, l)
		}
	} else {
		start, end, shift = max(d+30, l-40), l-10, 10
		if end <= start {
			start, end = max(0, d+10), min(100, l)
		}
	}
	step := max(end-start, 15) / 5
	for i := 1; i <= 6; i++ {
		li := start + float32(i-1)*step
		b.Set(i, saturationWithin(hsl.New(hue, monoSaturation, li)))
		b.Set(i+8, saturationWithin(hsl.New(hue, monoSaturation, li+shift)))
	}
	if mode == Light {
		b.Set(BrightBlack, saturationWithin(hsl.New(hue, monoSaturation*0.5, d+5)))
		b.Set(BrightWhite, saturationWithin(hsl.New(hue, 2, d-5)))
	} else {
		b.Set(BrightBlack, saturationWithin(hsl.New(hue, monoSaturation*0.5, l-25)))
		b.Set(BrightWhite, saturationWithin(hsl.New(hue, 2, l+5)))
	}
	return b
}

// lowDiversity builds a subtle palette: the standard hues at a low
// saturation with staggered lightness, and neutrals tinted with the
// mean hue of the chromatic samples.
func lowDiversity(ss []sampleHSL, mode Mode, opts *Options) *Builder {
	b := &Builder{}
	darkest, lightest := extremes(ss)
	anchor(b, darkest, lightest, mode)

	// circular mean, so that hues on both sides of 0 average to
	// about 0 rather than to 180
	var sin, cos float32
	n := 0
	for _, s := range ss {
		if s.h.S > opts.ChromaticSaturation {
			r := s.h.H * math32.Pi / 180
			sin += math32.Sin(r)
			cos += math32.Cos(r)
			n++
		}
	}
	avg := darkest.h.H
	if n > 0 {
		avg = hsl.WrapHue(math32.Atan2(sin, cos) * 180 / math32.Pi)
	}

	shift := float32(8)
	if mode == Light {
		shift = -8
	}
	for i, hue := range Hues {
		l := 50 + (float32(i)-2.5)*4
		b.SetHSL(i+1, hue, subtleSaturation, l)
		b.SetHSL(i+9, hue, subtleSaturation+8, l+shift)
	}
	if mode == Light {
		b.SetHSL(BrightBlack, avg, subtleSaturation*0.5, lightest.h.L-15)
		b.SetHSL(BrightWhite, avg, subtleSaturation*0.3, darkest.h.L-5)
	} else {
		b.SetHSL(BrightBlack, avg, subtleSaturation*0.5, darkest.h.L+15)
		b.SetHSL(BrightWhite, avg, subtleSaturation*0.3, lightest.h.L+5)
	}
	return b
}

// chromatic builds a palette from the samples themselves: a background
// and foreground chosen by lightness, and each standard hue matched
// to its closest remaining sample.
func chromatic(ss []sampleHSL, mode Mode, opts *Options) *Builder {
	b := &Builder{}
	used := make([]bool, len(ss))

	bgi := -1
	for i, s := range ss {
		if mode == Light {
			if s.h.L <= opts.MaxBackground && (bgi < 0 || s.h.L > ss[bgi].h.L) {
				bgi = i
			}
		} else if s.h.L >= opts.MinBackground && (bgi < 0 || s.h.L < ss[bgi].h.L) {
			bgi = i
		}
	}
	var bg color.RGBA
	if bgi >= 0 {
		bg = ss[bgi].c
	} else {
		// every sample is past the bound, so take the closest and clamp it
		target := opts.MinBackground
		if mode == Light {
			target = opts.MaxBackground
		}
		bgi = 0
		best := math32.Inf(1)
		for i, s := range ss {
			if d := math32.Abs(s.h.L - target); d < best {
				best, bgi = d, i
			}
		}
		h := ss[bgi].h
		bg = hsl.New(h.H, h.S, target).AsRGBA()
	}
	used[bgi] = true
	bh := opts.toHSL(bg)
	b.Set(Background, bg)

	fgi := -1
	for i, s := range ss {
		if used[i] {
			continue
		}
		if fgi < 0 || (mode == Light && s.h.L < ss[fgi].h.L) || (mode == Dark && s.h.L > ss[fgi].h.L) {
			fgi = i
		}
	}
	target := min(100, bh.L+opts.MinForegroundContrast)
	if mode == Light {
		target = max(0, bh.L-opts.MinForegroundContrast)
	}
	var fg color.RGBA
	switch {
	case fgi < 0:
		fg = hsl.New(0, 0, target).AsRGBA()
	case math32.Abs(ss[fgi].h.L-bh.L) < opts.MinForegroundContrast:
		used[fgi] = true
		fg = hsl.New(ss[fgi].h.H, ss[fgi].h.S, target).AsRGBA()
	default:
		used[fgi] = true
		fg = ss[fgi].c
	}
	b.Set(Foreground, fg)
	b.Set(BrightWhite, opts.bright(fg))

	for i, hue := range Hues {
		m := bestMatch(ss, used, hue, opts)
		used[m] = true
		b.Set(i+1, ss[m].c)
		b.Set(i+9, opts.bright(ss[m].c))
	}

	if bh.L < darkColor {
		b.SetHSL(BrightBlack, bh.H, bh.S*0.5, bh.L+15)
	} else {
		b.SetHSL(BrightBlack, bh.H, bh.S*0.5, bh.L-15)
	}
	return b
}

// bestMatch returns the index of the unused sample that best fits the
// given hue. Lower scores are better and ties go to the earlier sample.
func bestMatch(ss []sampleHSL, used []bool, hue float32, opts *Options) int {
	best := -1
	bestScore := math32.Inf(1)
	for i, s := range ss {
		if used[i] {
			continue
		}
		score := 3 * hsl.HueDistance(s.h.H, hue)
		if s.h.S < opts.ChromaticSaturation {
			score += 50
		}
		if s.h.L < opts.TooDark || s.h.L > opts.TooBright {
			score += 10
		}
		if score < bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		// more hues than samples; reuse the first one
		return 0
	}
	return best
}
