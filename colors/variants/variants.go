// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variants reshapes finished palettes along a
// saturation and hue axis, and maps a one-dimensional
// slider position onto a blend between two variants.
package variants

import (
	"image/color"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/hsl"
	"github.com/chewxy/math32"
)

// fruitSaladHues are the hue offsets of [FruitSalad], by index mod 8.
var fruitSaladHues = [8]float32{0, 30, 60, 120, 180, 210, 270, 300}

// Apply returns the given color transformed by the given variant.
// The index and total are the position of the color within its
// palette, which matter for [Expressive], [Rainbow], and [FruitSalad].
func Apply(c color.Color, v Variant, index, total int) color.RGBA {
	if v == TonalSpot || v < 0 || v >= VariantN {
		return colors.AsRGBA(c)
	}
	h := hsl.FromColor(c)
	switch v {
	case Monochrome:
		h.S = 0
	case Neutral:
		h.S *= 0.15
	case Content:
		h.S *= 0.7
	case Fidelity:
		h.S *= 0.9
	case Vibrant:
		h.S = min(h.S*1.4, 100)
	case Expressive:
		h.S = min(h.S*1.3, 100)
		h.H += (float32(index) - float32(total)/2) * 3
	case Rainbow:
		if total > 0 {
			h.H += float32(index) / float32(total) * 360
		}
		h.S = max(h.S, 60)
	case FruitSalad:
		n := len(fruitSaladHues)
		h.H += fruitSaladHues[(index%n+n)%n]
		h.S = max(70, min(100, h.S*1.2))
	}
	return hsl.New(h.H, h.S, h.L).AsRGBA()
}

// ApplyPalette applies the given variant to every color of the palette,
// using each position as the index.
func ApplyPalette(cs []color.RGBA, v Variant) []color.RGBA {
	res := make([]color.RGBA, len(cs))
	for i, c := range cs {
		res[i] = Apply(c, v, i, len(cs))
	}
	return res
}

// Interpolate blends the palette transformed by the from variant
// with the palette transformed by the to variant, entry by entry.
// A progress of 0 gives the from palette and 1 gives the to palette.
func Interpolate(cs []color.RGBA, from, to Variant, progress float32) []color.RGBA {
	fp := ApplyPalette(cs, from)
	tp := ApplyPalette(cs, to)
	for i := range fp {
		fp[i] = colors.Blend(progress, fp[i], tp[i])
	}
	return fp
}

// SliderOrder is the order in which the slider traverses the variants.
var SliderOrder = [...]Variant{Content, Fidelity, Neutral, Monochrome, TonalSpot, Vibrant, Expressive, Rainbow, FruitSalad}

// SegmentSize is the slider distance between two consecutive
// variants of [SliderOrder].
const SegmentSize float32 = 100.0 / float32(len(SliderOrder)-1)

// SliderSegment returns the pair of variants that surround the given
// slider position in [0, 100], along with the progress between them.
// Values outside of that range are clamped, and NaN counts as 0.
func SliderSegment(value float32) (from, to Variant, progress float32) {
	value = clampSlider(value)
	n := len(SliderOrder) - 1
	seg := min(int(value/SegmentSize), n-1)
	progress = (value - float32(seg)*SegmentSize) / SegmentSize
	return SliderOrder[seg], SliderOrder[seg+1], progress
}

// PaletteAtSlider returns the palette at the given slider position,
// interpolated between the two variants around it.
func PaletteAtSlider(cs []color.RGBA, value float32) []color.RGBA {
	from, to, progress := SliderSegment(value)
	return Interpolate(cs, from, to, progress)
}

// NameAtSlider returns the variant closest to the given slider position.
func NameAtSlider(value float32) Variant {
	i := int(math32.Round(clampSlider(value) / SegmentSize))
	return SliderOrder[min(max(i, 0), len(SliderOrder)-1)]
}

// clampSlider clamps the slider position to [0, 100].
func clampSlider(value float32) float32 {
	if math32.IsNaN(value) {
		return 0
	}
	return min(max(value, 0), 100)
}
