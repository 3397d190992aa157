// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image/color"

	"cogentcore.org/tint/colors/hsl"
)

// Options are the parameters of scheme generation.
type Options struct {

	// Harmonize rotates the hues of the semantic colors toward
	// the hue of the primary color, by half of the distance
	// between them but never more than 15 degrees.
	Harmonize bool `toml:"harmonize" json:"harmonize" yaml:"harmonize" default:"true"`
}

// DefaultOptions returns the default scheme generation [Options].
func DefaultOptions() *Options {
	return &Options{Harmonize: true}
}

// ErrorSeed is the key color of the error family.
var ErrorSeed = color.RGBA{0xba, 0x1a, 0x1a, 0xff}

// SemanticSeeds are the base colors of each [SemanticRole],
// before harmonization.
var SemanticSeeds = [SemanticRoleN]color.RGBA{
	Link:     {0x29, 0x80, 0xb9, 0xff},
	Visited:  {0x9b, 0x59, 0xb6, 0xff},
	Negative: {0xda, 0x44, 0x53, 0xff},
	Neutral:  {0xf6, 0x74, 0x00, 0xff},
	Positive: {0x27, 0xae, 0x60, 0xff},
}

// Key contains the set of key colors used to generate
// a [Palette]. Only the hue and saturation of each key
// matter; the tones supply the lightness.
type Key struct {

	// the primary accent key color
	Primary hsl.HSL

	// the secondary accent key color
	Secondary hsl.HSL

	// the tertiary accent key color
	Tertiary hsl.HSL

	// the error accent key color
	Error hsl.HSL

	// the neutral key color used to generate surface and surface container colors
	Neutral hsl.HSL

	// the neutral variant key color used to generate surface variant and outline colors
	NeutralVariant hsl.HSL

	// the key colors of the semantic families
	Semantic [SemanticRoleN]hsl.HSL
}

// KeyFromPrimary returns a new [Key] from the given primary color.
// The secondary and tertiary keys are rotated 30 and 60 degrees
// and less saturated, and the neutral keys keep only a trace of
// the primary saturation. A nil opts uses [DefaultOptions].
func KeyFromPrimary(primary color.Color, opts *Options) *Key {
	if opts == nil {
		opts = DefaultOptions()
	}
	p := hsl.FromColor(primary)
	k := &Key{
		Primary:        p,
		Secondary:      hsl.New(p.H+30, p.S*0.6, p.L),
		Tertiary:       hsl.New(p.H+60, p.S*0.8, p.L),
		Error:          hsl.FromColor(ErrorSeed),
		Neutral:        hsl.New(p.H, p.S*0.05, p.L),
		NeutralVariant: hsl.New(p.H, p.S*0.12, p.L),
	}
	for i, seed := range SemanticSeeds {
		s := hsl.FromColor(seed)
		if opts.Harmonize {
			s.H = hsl.Harmonize(s.H, p.H)
		}
		k.Semantic[i] = s
	}
	return k
}
