// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "image/color"

// Role is a named color of a [Scheme].
type Role struct {
	Name  string
	Color color.RGBA
}

func accentRoles(name, title string, a Accent) []Role {
	return []Role{
		{name, a.Base},
		{"on" + title, a.On},
		{name + "Container", a.Container},
		{"on" + title + "Container", a.OnContainer},
	}
}

// Roles returns all of the colors of the scheme under their
// stable role names, in a fixed order. Semantic families are
// named like linkPrimary and linkOnPrimaryFixedVariant.
func (s *Scheme) Roles() []Role {
	rs := []Role{
		{"surface", s.Surface},
		{"surfaceDim", s.SurfaceDim},
		{"surfaceContainerLowest", s.SurfaceContainerLowest},
		{"surfaceContainerLow", s.SurfaceContainerLow},
		{"surfaceContainer", s.SurfaceContainer},
		{"surfaceContainerHigh", s.SurfaceContainerHigh},
		{"surfaceContainerHighest", s.SurfaceContainerHighest},
		{"surfaceVariant", s.SurfaceVariant},
		{"onSurface", s.OnSurface},
		{"onSurfaceVariant", s.OnSurfaceVariant},
		{"inverseSurface", s.InverseSurface},
		{"inverseOnSurface", s.InverseOnSurface},
		{"inversePrimary", s.InversePrimary},
		{"outline", s.Outline},
		{"outlineVariant", s.OutlineVariant},
	}
	rs = append(rs, accentRoles("primary", "Primary", s.Primary)...)
	rs = append(rs, accentRoles("secondary", "Secondary", s.Secondary)...)
	rs = append(rs, accentRoles("tertiary", "Tertiary", s.Tertiary)...)
	rs = append(rs, accentRoles("error", "Error", s.Error)...)
	for i, sc := range s.Semantic {
		n := SemanticRole(i).String()
		rs = append(rs,
			Role{n + "Primary", sc.Primary},
			Role{n + "OnPrimaryFixedVariant", sc.OnPrimaryFixedVariant},
		)
	}
	return rs
}

// Role returns the color with the given role name, as
// listed by [Scheme.Roles].
func (s *Scheme) Role(name string) (color.RGBA, bool) {
	for _, r := range s.Roles() {
		if r.Name == name {
			return r.Color, true
		}
	}
	return color.RGBA{}, false
}

// Preview returns the small set of roles that summarize
// the scheme at a glance.
func (s *Scheme) Preview() []Role {
	return []Role{
		{"surface", s.Surface},
		{"onSurface", s.OnSurface},
		{"primary", s.Primary.Base},
		{"onPrimary", s.Primary.On},
		{"secondary", s.Secondary.Base},
		{"tertiary", s.Tertiary.Base},
		{"error", s.Error.Base},
		{"outline", s.Outline},
	}
}
