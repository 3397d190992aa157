// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides a representation of color in the
// hue, saturation, lightness color space, along with
// transformations and distance functions defined on it.
package hsl

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// HSL represents a color in the hue, saturation, lightness color space.
// All values are kept in the ranges used by CSS: hue in degrees [0, 360),
// and saturation and lightness as percentages [0, 100].
type HSL struct {

	// H is the hue of the color, in degrees [0, 360)
	H float32

	// S is the saturation of the color, as a percentage [0, 100]
	S float32

	// L is the lightness of the color, as a percentage [0, 100]
	L float32
}

// New returns a new [HSL] from the given hue, saturation, and lightness
// values. The hue is wrapped into [0, 360) and saturation and lightness
// are clamped into [0, 100].
func New(h, s, l float32) HSL {
	return HSL{H: WrapHue(h), S: clamp(s, 0, 100), L: clamp(l, 0, 100)}
}

// FromColor returns a new [HSL] from the given color.
func FromColor(c color.Color) HSL {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return FromRGB(r.R, r.G, r.B)
}

// FromRGB returns a new [HSL] from the given 8-bit red, green, and blue values.
func FromRGB(r8, g8, b8 uint8) HSL {
	r := float32(r8) / 255
	g := float32(g8) / 255
	b := float32(b8) / 255
	mx := max(r, g, b)
	mn := min(r, g, b)
	l := (mx + mn) / 2
	if mx == mn {
		return HSL{H: 0, S: 0, L: l * 100}
	}
	d := mx - mn
	var s float32
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}
	var h float32
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return HSL{H: WrapHue(h * 60), S: clamp(s*100, 0, 100), L: clamp(l*100, 0, 100)}
}

// AsRGBA returns the [HSL] color as a [color.RGBA]. Out-of-range
// values are wrapped and clamped before the conversion, so the
// result is always a valid opaque color.
func (h HSL) AsRGBA() color.RGBA {
	hue := WrapHue(h.H) / 360
	s := clamp(h.S, 0, 100) / 100
	l := clamp(h.L, 0, 100) / 100
	if s == 0 {
		v := channel(l)
		return color.RGBA{v, v, v, 255}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return color.RGBA{
		R: channel(hueToRGB(p, q, hue+1.0/3)),
		G: channel(hueToRGB(p, q, hue)),
		B: channel(hueToRGB(p, q, hue-1.0/3)),
		A: 255,
	}
}

// RGBA implements the [color.Color] interface.
func (h HSL) RGBA() (r, g, b, a uint32) {
	return h.AsRGBA().RGBA()
}

// SetH sets the hue of this color, wrapping it into [0, 360).
func (h *HSL) SetH(hue float32) *HSL {
	h.H = WrapHue(hue)
	return h
}

// SetS sets the saturation of this color, clamping it into [0, 100].
func (h *HSL) SetS(saturation float32) *HSL {
	h.S = clamp(saturation, 0, 100)
	return h
}

// SetL sets the lightness of this color, clamping it into [0, 100].
func (h *HSL) SetL(lightness float32) *HSL {
	h.L = clamp(lightness, 0, 100)
	return h
}

// String returns the color in CSS hsl() notation.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h.H, h.S, h.L)
}

// WrapHue returns the given hue wrapped into [0, 360).
func WrapHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func channel(v float32) uint8 {
	return uint8(clamp(math32.Round(v*255), 0, 255))
}
