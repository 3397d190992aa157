// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Luminance returns the WCAG relative luminance of the given color,
// in the range [0, 1].
func Luminance(c color.Color) float32 {
	r := AsRGBA(c)
	return 0.2126*linear(r.R) + 0.7152*linear(r.G) + 0.0722*linear(r.B)
}

// linear decodes an sRGB channel value into linear light.
func linear(v uint8) float32 {
	f := float32(v) / 255
	if f <= 0.03928 {
		return f / 12.92
	}
	return math32.Pow((f+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between the two
// given colors. It is symmetric and in the range [1, 21].
func ContrastRatio(a, b color.Color) float32 {
	la := Luminance(a)
	lb := Luminance(b)
	hi, lo := max(la, lb), min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// BestContrast returns the candidate with the highest contrast ratio
// against base. Ties keep the earliest candidate. With no candidates,
// it returns [Black] for bases with a luminance above 0.5 and
// [White] otherwise.
func BestContrast(base color.Color, candidates ...color.Color) color.RGBA {
	if len(candidates) == 0 {
		if Luminance(base) > 0.5 {
			return Black
		}
		return White
	}
	best := candidates[0]
	bestRatio := ContrastRatio(base, best)
	for _, c := range candidates[1:] {
		if r := ContrastRatio(base, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return AsRGBA(best)
}

// BlendToContrast blends c toward target in 5% steps until its contrast
// ratio against bg reaches minRatio, and returns the first color that does.
// If no step reaches it, target itself is returned.
func BlendToContrast(c, bg, target color.Color, minRatio float32) color.RGBA {
	for i := 0; i <= 20; i++ {
		b := Blend(float32(i)*0.05, c, target)
		if ContrastRatio(b, bg) >= minRatio {
			return b
		}
	}
	return AsRGBA(target)
}
