// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// Palette contains a tonal palette with tonal values
// for each of the standard colors and semantic families.
type Palette struct {

	// the tones for the primary key color
	Primary Tones

	// the tones for the secondary key color
	Secondary Tones

	// the tones for the tertiary key color
	Tertiary Tones

	// the tones for the error key color
	Error Tones

	// the tones for the neutral key color
	Neutral Tones

	// the tones for the neutral variant key color
	NeutralVariant Tones

	// the tones for each semantic family
	Semantic [SemanticRoleN]Tones
}

// NewPalette creates a new [Palette] from the given key colors.
func NewPalette(key *Key) *Palette {
	p := &Palette{
		Primary:        NewTones(key.Primary.H, key.Primary.S),
		Secondary:      NewTones(key.Secondary.H, key.Secondary.S),
		Tertiary:       NewTones(key.Tertiary.H, key.Tertiary.S),
		Error:          NewTones(key.Error.H, key.Error.S),
		Neutral:        NewTones(key.Neutral.H, key.Neutral.S),
		NeutralVariant: NewTones(key.NeutralVariant.H, key.NeutralVariant.S),
	}
	for i, k := range key.Semantic {
		p.Semantic[i] = NewTones(k.H, k.S)
	}
	return p
}

// Families returns the named tonal families of the palette
// in a stable order, for tabular output.
func (p *Palette) Families() []Family {
	fs := []Family{
		{"primary", &p.Primary},
		{"secondary", &p.Secondary},
		{"tertiary", &p.Tertiary},
		{"neutral", &p.Neutral},
		{"neutralVariant", &p.NeutralVariant},
		{"error", &p.Error},
	}
	for i := range p.Semantic {
		fs = append(fs, Family{SemanticRole(i).String(), &p.Semantic[i]})
	}
	return fs
}

// Family is a named set of [Tones].
type Family struct {
	Name  string
	Tones *Tones
}
