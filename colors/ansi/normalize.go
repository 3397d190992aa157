// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"image/color"
	"log/slog"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/hsl"
	"github.com/chewxy/math32"
)

// Normalize adjusts the lightness of a synthesized palette so that
// every color reads well against its background:
//   - the background lightness is clamped into
//     [Options.MinBackground, Options.MaxBackground]
//   - on a very dark or very light background, standard colors that
//     are too close to it are moved away, with a small per slot stagger
//   - otherwise, standard colors far from the mean lightness are
//     pulled back toward it
//   - bright black and bright white keep their distance from the background
//   - the foreground is kept at least [Options.MinForegroundContrast]
//     lightness and [Options.MinContrastRatio] contrast away from the background,
//     moving the background a little when no foreground can meet both
//
// Bright versions of adjusted standard colors are derived again.
// Normalize never fails. The options may be nil, in which case
// [DefaultOptions] are used.
func Normalize(p Palette, opts *Options) Palette {
	opts = orDefault(opts)

	bg := opts.toHSL(p[Background])
	switch {
	case bg.L < opts.MinBackground:
		slog.Debug("ansi: clamping background lightness", "from", bg.L, "to", opts.MinBackground)
		p[Background] = lightnessPast(bg, opts.MinBackground, true)
	case bg.L > opts.MaxBackground:
		slog.Debug("ansi: clamping background lightness", "from", bg.L, "to", opts.MaxBackground)
		p[Background] = lightnessPast(bg, opts.MaxBackground, false)
	}
	bgL := opts.toHSL(p[Background]).L
	veryDark := bgL < opts.VeryDark
	veryLight := bgL > opts.VeryLight

	var ls [Foreground + 1]float32
	var mean float32
	for i := Red; i <= Foreground; i++ {
		ls[i] = opts.toHSL(p[i]).L
		mean += ls[i]
	}
	mean /= Foreground

	setL := func(i int, l float32) {
		h := opts.toHSL(p[i])
		slog.Debug("ansi: adjusting lightness", "slot", i, "from", h.L, "to", l)
		p[i] = saturationWithin(hsl.New(h.H, h.S, l))
		if i >= Red && i <= Cyan {
			p[i+8] = opts.bright(p[i])
		}
	}

	switch {
	case veryDark:
		for i := Red; i <= Foreground; i++ {
			if ls[i] < opts.MinOnDark {
				setL(i, opts.MinOnDark+float32(i)*3)
			}
		}
	case veryLight:
		for i := Red; i <= Foreground; i++ {
			if ls[i] > opts.MaxOnLight {
				setL(i, max(opts.AbsoluteMinLightness, opts.MaxOnLight-float32(i)*2))
			}
		}
	default:
		bright := mean > 50
		for i := Red; i <= Foreground; i++ {
			switch {
			case bright && ls[i] < mean-opts.Outlier:
				setL(i, mean-10)
			case !bright && ls[i] > mean+opts.Outlier:
				setL(i, mean+10)
			}
		}
	}

	// the background may move a little to make room for the foreground,
	// so the bright slots are checked against the final background
	p[Background], p[Foreground] = separate(p[Background], p[Foreground], opts)
	bgL = opts.toHSL(p[Background]).L

	// bright black only ever moves away from the background
	c8 := opts.toHSL(p[BrightBlack])
	switch {
	case veryDark && c8.L < min(opts.MinOnDark, bgL+15):
		p[BrightBlack] = hsl.New(c8.H, c8.S, min(opts.MinOnDark, bgL+15)).AsRGBA()
	case veryLight && c8.L > max(opts.MaxOnLight, bgL-15):
		p[BrightBlack] = hsl.New(c8.H, c8.S, max(opts.MaxOnLight, bgL-15)).AsRGBA()
	}

	c15 := opts.toHSL(p[BrightWhite])
	if math32.Abs(c15.L-bgL) < opts.MinForegroundContrast {
		sep := opts.MinForegroundContrast + 10
		up := bgL < darkColor
		if (up && bgL+opts.MinForegroundContrast > 100) || (!up && bgL-opts.MinForegroundContrast < 0) {
			up = !up // no room on that side
		}
		if up {
			p[BrightWhite] = lightnessPast(c15, min(100, bgL+sep), true)
		} else {
			p[BrightWhite] = lightnessPast(c15, max(0, bgL-sep), false)
		}
	}
	return p
}

// separate returns the background and foreground adjusted so that the
// foreground is at least [Options.MinForegroundContrast] lightness and
// [Options.MinContrastRatio] contrast away from the background. The
// foreground moves toward black or white, trying the one that contrasts
// more with the background first. When neither works, the background
// moves one unit of lightness at a time away from that pole, staying
// within [Options.MinBackground] and [Options.MaxBackground].
func separate(bg, fg color.RGBA, opts *Options) (color.RGBA, color.RGBA) {
	if separated(bg, fg, opts) {
		return bg, fg
	}
	up := colors.BestContrast(bg, colors.Black, colors.White) == colors.White
	bh := opts.toHSL(bg)
	for range 101 {
		for _, dir := range [2]bool{up, !up} {
			if f, ok := foregroundFrom(bg, fg, dir, opts); ok {
				return bg, f
			}
		}
		l := bh.L + 1
		if up {
			l = bh.L - 1
		}
		if l < opts.MinBackground || l > opts.MaxBackground {
			break
		}
		bh.L = l
		bg = lightnessPast(bh, l, !up)
		slog.Debug("ansi: moving background to separate the foreground", "to", l)
	}
	if up {
		return bg, colors.White
	}
	return bg, colors.Black
}

// separated returns whether fg is far enough from bg in both lightness
// and contrast ratio.
func separated(bg, fg color.RGBA, opts *Options) bool {
	d := math32.Abs(opts.toHSL(fg).L - opts.toHSL(bg).L)
	return d >= opts.MinForegroundContrast && colors.ContrastRatio(fg, bg) >= opts.MinContrastRatio
}

// foregroundFrom returns fg moved past bg toward white (up) or black,
// and whether the result is separated from bg.
func foregroundFrom(bg, fg color.RGBA, up bool, opts *Options) (color.RGBA, bool) {
	bh, fh := opts.toHSL(bg), opts.toHSL(fg)
	l, pole := bh.L-opts.MinForegroundContrast, colors.Black
	if up {
		l, pole = bh.L+opts.MinForegroundContrast, colors.White
	}
	if l < 0 || l > 100 {
		return fg, false
	}
	if (up && fh.L < l) || (!up && fh.L > l) {
		fg = lightnessPast(fh, l, up)
	}
	if colors.ContrastRatio(fg, bg) < opts.MinContrastRatio {
		fg = colors.BlendToContrast(fg, bg, pole, opts.MinContrastRatio)
	}
	return fg, separated(bg, fg, opts)
}

// lightnessPast returns the color h with its lightness set to l,
// nudged so that the lightness measured after rounding to 8 bit
// channels is still at least l (up) or at most l (!up).
func lightnessPast(h hsl.HSL, l float32, up bool) color.RGBA {
	target := l
	var c color.RGBA
	for range 20 {
		c = hsl.New(h.H, h.S, l).AsRGBA()
		m := hsl.FromColor(c).L
		if (up && m >= target) || (!up && m <= target) {
			break
		}
		if up {
			l += 0.1
		} else {
			l -= 0.1
		}
	}
	return c
}

// saturationWithin returns the color h, with the saturation lowered
// as needed so that the saturation measured after rounding to 8 bit
// channels is at most that of h.
func saturationWithin(h hsl.HSL) color.RGBA {
	target := h.S
	var c color.RGBA
	for s := h.S; s >= 0; s -= 0.25 {
		c = hsl.New(h.H, s, h.L).AsRGBA()
		if hsl.FromColor(c).S <= target {
			return c
		}
	}
	return hsl.New(h.H, 0, h.L).AsRGBA()
}
