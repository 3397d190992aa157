// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "image/color"

// Scheme contains the colors for one color scheme
// (ie: light or dark), picked from the tones of a [Palette].
type Scheme struct {

	// Dark is whether this is a dark scheme
	Dark bool

	// Primary is the primary color applied to important elements
	Primary Accent

	// Secondary is the secondary color applied to less important elements
	Secondary Accent

	// Tertiary is the tertiary color applied as an accent to highlight elements and create contrast between other colors
	Tertiary Accent

	// Error is the error color applied to elements that indicate an error or danger
	Error Accent

	// Surface is the color applied to contained areas, like the background of an app
	Surface color.RGBA

	// SurfaceDim is the color applied to elements that will always have the dimmest surface color
	SurfaceDim color.RGBA

	// SurfaceContainerLowest is the color applied to surface container elements that have the lowest emphasis
	SurfaceContainerLowest color.RGBA

	// SurfaceContainerLow is the color applied to surface container elements that have lower emphasis
	SurfaceContainerLow color.RGBA

	// SurfaceContainer is the color applied to container elements that contrast elements with the surface color
	SurfaceContainer color.RGBA

	// SurfaceContainerHigh is the color applied to surface container elements that have higher emphasis
	SurfaceContainerHigh color.RGBA

	// SurfaceContainerHighest is the color applied to surface container elements that have the highest emphasis
	SurfaceContainerHighest color.RGBA

	// SurfaceVariant is the color applied to contained areas that contrast standard Surface elements
	SurfaceVariant color.RGBA

	// OnSurface is the color applied to content on top of Surface elements
	OnSurface color.RGBA

	// OnSurfaceVariant is the color applied to content on top of SurfaceVariant elements
	OnSurfaceVariant color.RGBA

	// InverseSurface is the color applied to elements to make them the reverse color of the surrounding elements
	InverseSurface color.RGBA

	// InverseOnSurface is the color applied to content on top of InverseSurface
	InverseOnSurface color.RGBA

	// InversePrimary is the color applied to interactive elements on top of InverseSurface
	InversePrimary color.RGBA

	// Outline is the color applied to borders to create emphasized boundaries
	Outline color.RGBA

	// OutlineVariant is the color applied to create decorative boundaries
	OutlineVariant color.RGBA

	// Semantic contains the colors of each semantic family
	Semantic [SemanticRoleN]SemanticColors
}

// SemanticColors are the two scheme colors of a semantic family.
type SemanticColors struct {

	// Primary is the main color of the family
	Primary color.RGBA

	// OnPrimaryFixedVariant is a lower-emphasis variation of [SemanticColors.Primary]
	OnPrimaryFixedVariant color.RGBA
}

// NewLightScheme returns a new light-themed [Scheme]
// based on the given [Palette].
func NewLightScheme(p *Palette) Scheme {
	s := Scheme{
		Primary:   NewAccentLight(&p.Primary),
		Secondary: NewAccentLight(&p.Secondary),
		Tertiary:  NewAccentLight(&p.Tertiary),
		Error:     NewAccentLight(&p.Error),

		Surface:    p.Neutral.AbsTone(99),
		SurfaceDim: p.Neutral.AbsTone(95),

		SurfaceContainerLowest:  p.Neutral.AbsTone(100),
		SurfaceContainerLow:     p.Neutral.AbsTone(96),
		SurfaceContainer:        p.Neutral.AbsTone(94),
		SurfaceContainerHigh:    p.Neutral.AbsTone(92),
		SurfaceContainerHighest: p.Neutral.AbsTone(90),

		SurfaceVariant:   p.NeutralVariant.AbsTone(90),
		OnSurface:        p.Neutral.AbsTone(10),
		OnSurfaceVariant: p.NeutralVariant.AbsTone(30),

		InverseSurface:   p.Neutral.AbsTone(20),
		InverseOnSurface: p.Neutral.AbsTone(95),
		InversePrimary:   p.Primary.AbsTone(80),

		Outline:        p.NeutralVariant.AbsTone(50),
		OutlineVariant: p.NeutralVariant.AbsTone(80),
	}
	for i := range p.Semantic {
		s.Semantic[i] = SemanticColors{
			Primary:               p.Semantic[i].AbsTone(40),
			OnPrimaryFixedVariant: p.Semantic[i].AbsTone(30),
		}
	}
	return s
}

// NewDarkScheme returns a new dark-themed [Scheme]
// based on the given [Palette].
func NewDarkScheme(p *Palette) Scheme {
	s := Scheme{
		Dark:      true,
		Primary:   NewAccentDark(&p.Primary),
		Secondary: NewAccentDark(&p.Secondary),
		Tertiary:  NewAccentDark(&p.Tertiary),
		Error:     NewAccentDark(&p.Error),

		Surface:    p.Neutral.AbsTone(10),
		SurfaceDim: p.Neutral.AbsTone(5),

		SurfaceContainerLowest:  p.Neutral.AbsTone(5),
		SurfaceContainerLow:     p.Neutral.AbsTone(10),
		SurfaceContainer:        p.Neutral.AbsTone(12),
		SurfaceContainerHigh:    p.Neutral.AbsTone(17),
		SurfaceContainerHighest: p.Neutral.AbsTone(22),

		SurfaceVariant:   p.NeutralVariant.AbsTone(30),
		OnSurface:        p.Neutral.AbsTone(90),
		OnSurfaceVariant: p.NeutralVariant.AbsTone(80),

		InverseSurface:   p.Neutral.AbsTone(90),
		InverseOnSurface: p.Neutral.AbsTone(20),
		InversePrimary:   p.Primary.AbsTone(40),

		Outline:        p.NeutralVariant.AbsTone(60),
		OutlineVariant: p.NeutralVariant.AbsTone(30),
	}
	for i := range p.Semantic {
		s.Semantic[i] = SemanticColors{
			Primary:               p.Semantic[i].AbsTone(80),
			OnPrimaryFixedVariant: p.Semantic[i].AbsTone(80),
		}
	}
	return s
}
