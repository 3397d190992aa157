// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image/color"

	"cogentcore.org/tint/colors/hsl"
)

// NTones is the number of tones in a [Tones] scale (0 to 100 inclusive).
const NTones = 101

// Tones contains the color values for every tone of one
// hue and saturation. The tone of a color is its HSL lightness,
// so tone 0 is always black and tone 100 is always white.
type Tones struct {

	// Hue is the hue shared by all of the tones, in degrees
	Hue float32

	// Saturation is the saturation shared by all of the tones, as a percentage
	Saturation float32

	// Colors are the computed colors, indexed by tone
	Colors [NTones]color.RGBA
}

// NewTones returns a new set of [Tones] for the given hue and saturation,
// with all tones computed up front.
func NewTones(hue, saturation float32) Tones {
	t := Tones{Hue: hsl.WrapHue(hue), Saturation: min(max(saturation, 0), 100)}
	for i := range t.Colors {
		t.Colors[i] = t.HSL(i).AsRGBA()
	}
	return t
}

// AbsTone returns the color at the given absolute tone on a
// scale of 0 to 100. Tones outside of that range are clamped.
func (t *Tones) AbsTone(tone int) color.RGBA {
	return t.Colors[clampTone(tone)]
}

// HSL returns the exact [hsl.HSL] value of the given tone,
// before it is quantized to RGB. Its lightness equals the tone.
func (t *Tones) HSL(tone int) hsl.HSL {
	return hsl.HSL{H: t.Hue, S: t.Saturation, L: float32(clampTone(tone))}
}

func clampTone(tone int) int {
	return min(max(tone, 0), NTones-1)
}
