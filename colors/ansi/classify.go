// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"cogentcore.org/tint/colors/hsl"
)

// Classify returns the [Class] of the given samples. [Monochrome]
// takes priority over [LowDiversity], and [Chromatic] is the default.
// The options may be nil, in which case [DefaultOptions] are used.
func Classify(samples []Sample, opts *Options) Class {
	opts = orDefault(opts)
	hs := make([]hsl.HSL, len(samples))
	for i, s := range samples {
		hs[i] = opts.toHSL(s.Color)
	}
	switch {
	case isMonochrome(hs, opts):
		return Monochrome
	case isLowDiversity(hs, opts):
		return LowDiversity
	}
	return Chromatic
}

// isMonochrome returns whether the fraction of gray colors
// exceeds [Options.MonochromeFraction].
func isMonochrome(hs []hsl.HSL, opts *Options) bool {
	if len(hs) == 0 {
		return false
	}
	gray := 0
	for _, h := range hs {
		if h.S < opts.ChromaticSaturation {
			gray++
		}
	}
	return float32(gray)/float32(len(hs)) > opts.MonochromeFraction
}

// isLowDiversity returns whether the fraction of similar pairs among
// the chromatic colors exceeds [Options.LowDiversityFraction].
// Pairs involving a gray color are not counted at all.
func isLowDiversity(hs []hsl.HSL, opts *Options) bool {
	similar, total := 0, 0
	for i, a := range hs {
		if a.S < opts.ChromaticSaturation {
			continue
		}
		for _, b := range hs[i+1:] {
			if b.S < opts.ChromaticSaturation {
				continue
			}
			total++
			dl := a.L - b.L
			if dl < 0 {
				dl = -dl
			}
			if hsl.HueDistance(a.H, b.H) < opts.SimilarHue && dl < opts.SimilarLightness {
				similar++
			}
		}
	}
	if total == 0 {
		return false
	}
	return float32(similar)/float32(total) > opts.LowDiversityFraction
}
