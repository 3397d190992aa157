// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"fmt"
	"strings"
)

// Class is the color character of an image, as judged
// from its dominant colors. It decides which synthesis
// strategy is used to build a [Palette].
type Class int32

const (
	// Monochrome images are mostly unsaturated (gray scale).
	Monochrome Class = iota

	// LowDiversity images have saturated colors that are
	// mostly similar in hue and lightness.
	LowDiversity

	// Chromatic images have a diverse set of saturated colors.
	Chromatic

	ClassN
)

var _ClassNames = []string{"Monochrome", "LowDiversity", "Chromatic"}

var _ClassDescs = []string{
	"Monochrome images are mostly unsaturated (gray scale).",
	"LowDiversity images have saturated colors that are mostly similar in hue and lightness.",
	"Chromatic images have a diverse set of saturated colors.",
}

// String returns the string representation of this Class value.
func (i Class) String() string {
	if i < 0 || i >= ClassN {
		return fmt.Sprintf("Class(%d)", int32(i))
	}
	return _ClassNames[i]
}

// SetString sets the Class value from its string representation,
// and returns an error if the string is invalid.
func (i *Class) SetString(s string) error {
	for j, n := range _ClassNames {
		if strings.EqualFold(n, s) {
			*i = Class(j)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Class", s)
}

// Int64 returns the Class value as an int64.
func (i Class) Int64() int64 { return int64(i) }

// Desc returns the description of the Class value.
func (i Class) Desc() string {
	if i < 0 || i >= ClassN {
		return i.String()
	}
	return _ClassDescs[i]
}

// Values returns all possible values for the type Class.
func (i Class) Values() []Class {
	return []Class{Monochrome, LowDiversity, Chromatic}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Class) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Class) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Mode is whether a palette is meant for a dark or a light background.
type Mode int32

const (
	// Dark palettes have a dark background and light text.
	Dark Mode = iota

	// Light palettes have a light background and dark text.
	Light

	ModeN
)

var _ModeNames = []string{"dark", "light"}

// String returns the string representation of this Mode value.
func (i Mode) String() string {
	if i < 0 || i >= ModeN {
		return fmt.Sprintf("Mode(%d)", int32(i))
	}
	return _ModeNames[i]
}

// SetString sets the Mode value from its string representation,
// and returns an error if the string is invalid.
func (i *Mode) SetString(s string) error {
	for j, n := range _ModeNames {
		if strings.EqualFold(n, s) {
			*i = Mode(j)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Mode", s)
}

// Int64 returns the Mode value as an int64.
func (i Mode) Int64() int64 { return int64(i) }

// Values returns all possible values for the type Mode.
func (i Mode) Values() []Mode { return []Mode{Dark, Light} }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Mode) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Mode) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
