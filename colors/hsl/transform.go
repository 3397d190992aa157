// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Lighten returns a color that is lighter by the
// given absolute HSL lightness amount (0-100, ranges enforced)
func Lighten(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.SetL(h.L + amount)
	return h.AsRGBA()
}

// Darken returns a color that is darker by the
// given absolute HSL lightness amount (0-100, ranges enforced)
func Darken(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.SetL(h.L - amount)
	return h.AsRGBA()
}

// WithLightness returns the given color with its HSL lightness
// replaced by the given value (0-100, ranges enforced).
// Hue and saturation are preserved.
func WithLightness(c color.Color, lightness float32) color.RGBA {
	h := FromColor(c)
	h.SetL(lightness)
	return h.AsRGBA()
}

// Saturate returns a color that is more saturated by the
// given absolute HSL saturation amount (0-100, ranges enforced)
func Saturate(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.SetS(h.S + amount)
	return h.AsRGBA()
}

// Desaturate returns a color that is less saturated by the
// given absolute HSL saturation amount (0-100, ranges enforced)
func Desaturate(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.SetS(h.S - amount)
	return h.AsRGBA()
}

// ScaleSaturation returns a color whose HSL saturation is multiplied
// by the given factor (result clamped to 0-100).
func ScaleSaturation(c color.Color, factor float32) color.RGBA {
	h := FromColor(c)
	h.SetS(h.S * factor)
	return h.AsRGBA()
}

// Spin returns a color that has a different hue by the
// given HSL hue amount in degrees, wrapping around 360.
func Spin(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.SetH(h.H + amount)
	return h.AsRGBA()
}

// IsLight returns whether the given color is light
// (has an HSL lightness greater than or equal to 60)
func IsLight(c color.Color) bool {
	return FromColor(c).L >= 60
}

// IsDark returns whether the given color is dark
// (has an HSL lightness less than 60)
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should
// be used to contrast this color (white or black),
// based on the result of [IsLight].
func ContrastColor(c color.Color) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

// HueDistance returns the shortest distance in degrees between
// the two given hues around the color wheel, in the range [0, 180].
func HueDistance(h1, h2 float32) float32 {
	d := math32.Abs(WrapHue(h1) - WrapHue(h2))
	return min(d, 360-d)
}

// Harmonize returns the hue h rotated toward the hue of the seed
// by half of the distance between them, but never more than 15 degrees.
// This keeps fixed accent hues recognizable while pulling them
// toward the overall theme.
func Harmonize(h, seed float32) float32 {
	d := HueDistance(h, seed)
	rot := min(d*0.5, 15)
	// rotate in the direction of the shortest arc
	if WrapHue(seed-h) <= 180 {
		return WrapHue(h + rot)
	}
	return WrapHue(h - rot)
}
