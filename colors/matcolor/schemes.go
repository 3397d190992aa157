// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matcolor generates tonal palettes and light and dark
// color schemes from a single primary color, in the manner of
// Material Design 3 but with HSL lightness as the tone.
package matcolor

import "image/color"

// Schemes contains the light and dark color schemes
// along with the palette they were generated from.
type Schemes struct {
	Light   Scheme
	Dark    Scheme
	Palette *Palette
}

// NewSchemes returns new [Schemes] for the given
// [Palette] containing both light and dark schemes.
func NewSchemes(p *Palette) *Schemes {
	return &Schemes{
		Light:   NewLightScheme(p),
		Dark:    NewDarkScheme(p),
		Palette: p,
	}
}

// SchemesFromPrimary is a helper that generates the [Key],
// [Palette], and [Schemes] for the given primary color.
func SchemesFromPrimary(primary color.Color, opts *Options) *Schemes {
	return NewSchemes(NewPalette(KeyFromPrimary(primary, opts)))
}

// Scheme returns the light or dark scheme.
func (s *Schemes) Scheme(dark bool) *Scheme {
	if dark {
		return &s.Dark
	}
	return &s.Light
}
