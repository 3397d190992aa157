// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variants

import (
	"fmt"
	"strings"
)

// Variant is a way of reshaping the saturation and hue
// of every color in a palette.
type Variant int32

const (
	// Content slightly reduces saturation, staying faithful to the source.
	Content Variant = iota

	// Expressive boosts saturation and spreads hues slightly by position.
	Expressive

	// Fidelity keeps colors very close to the source.
	Fidelity

	// Monochrome removes all saturation.
	Monochrome

	// Neutral keeps only a trace of saturation.
	Neutral

	// TonalSpot leaves colors unchanged.
	TonalSpot

	// Vibrant strongly boosts saturation.
	Vibrant

	// Rainbow distributes hues evenly around the color wheel.
	Rainbow

	// FruitSalad rotates hues by a fixed table of offsets with high saturation.
	FruitSalad

	VariantN
)

var _VariantNames = []string{"Content", "Expressive", "Fidelity", "Monochrome", "Neutral", "TonalSpot", "Vibrant", "Rainbow", "FruitSalad"}

var _VariantDescs = []string{
	"Content slightly reduces saturation, staying faithful to the source.",
	"Expressive boosts saturation and spreads hues slightly by position.",
	"Fidelity keeps colors very close to the source.",
	"Monochrome removes all saturation.",
	"Neutral keeps only a trace of saturation.",
	"TonalSpot leaves colors unchanged.",
	"Vibrant strongly boosts saturation.",
	"Rainbow distributes hues evenly around the color wheel.",
	"FruitSalad rotates hues by a fixed table of offsets with high saturation.",
}

// String returns the string representation of this Variant value.
func (i Variant) String() string {
	if i < 0 || i >= VariantN {
		return fmt.Sprintf("Variant(%d)", int32(i))
	}
	return _VariantNames[i]
}

// SetString sets the Variant value from its string representation,
// and returns an error if the string is invalid.
func (i *Variant) SetString(s string) error {
	for j, n := range _VariantNames {
		if strings.EqualFold(n, s) {
			*i = Variant(j)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Variant", s)
}

// Int64 returns the Variant value as an int64.
func (i Variant) Int64() int64 { return int64(i) }

// Desc returns the description of the Variant value.
func (i Variant) Desc() string {
	if i < 0 || i >= VariantN {
		return i.String()
	}
	return _VariantDescs[i]
}

// Values returns all possible values for the type Variant.
func (i Variant) Values() []Variant {
	vs := make([]Variant, VariantN)
	for j := range vs {
		vs[j] = Variant(j)
	}
	return vs
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Variant) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Variant) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
