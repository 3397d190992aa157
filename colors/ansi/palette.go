// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"encoding/json"
	"fmt"
	"image/color"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/hsl"
)

// Size is the number of colors in a [Palette].
const Size = 16

// The slots of a [Palette]. Consumers rely on these positions.
const (
	Background = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Foreground
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// SlotNames are the names of the slots of a [Palette].
var SlotNames = [Size]string{
	"background", "red", "green", "yellow", "blue", "magenta", "cyan", "foreground",
	"brightBlack", "brightRed", "brightGreen", "brightYellow", "brightBlue", "brightMagenta", "brightCyan", "brightWhite",
}

// Hues are the target hues of the six standard colors,
// in slot order (red, green, yellow, blue, magenta, cyan).
var Hues = [6]float32{0, 120, 60, 240, 300, 180}

// Palette is a complete 16 color terminal palette.
// It marshals to JSON as an array of #rrggbb strings.
type Palette [Size]color.RGBA

// Hex returns the palette colors as #rrggbb strings.
func (p Palette) Hex() []string {
	s := make([]string, Size)
	for i, c := range p {
		s[i] = colors.AsHex(c)
	}
	return s
}

// PaletteFromHex returns the palette for the given 16 hex strings.
func PaletteFromHex(hex []string) (Palette, error) {
	var p Palette
	if len(hex) != Size {
		return p, fmt.Errorf("ansi.PaletteFromHex: expected %d colors, got %d", Size, len(hex))
	}
	for i, h := range hex {
		c, err := colors.FromHex(h)
		if err != nil {
			return p, fmt.Errorf("ansi.PaletteFromHex: color %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

func (p Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Hex())
}

func (p *Palette) UnmarshalJSON(b []byte) error {
	var hex []string
	if err := json.Unmarshal(b, &hex); err != nil {
		return err
	}
	np, err := PaletteFromHex(hex)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// IncompleteError is returned by [Builder.Palette] when
// some of the palette slots have not been set.
type IncompleteError struct {
	Missing []int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("ansi: palette is missing slots %v", e.Missing)
}

// Builder fills in the slots of a [Palette] one at a time,
// and only yields the palette once every slot is set.
type Builder struct {
	colors [Size]color.RGBA
	set    uint16
}

// Set sets the slot i to the given color.
func (b *Builder) Set(i int, c color.Color) *Builder {
	b.colors[i] = colors.AsRGBA(c)
	b.set |= 1 << i
	return b
}

// SetHSL sets the slot i to the color with the given
// hue, saturation, and lightness (ranges enforced).
func (b *Builder) SetHSL(i int, h, s, l float32) *Builder {
	return b.Set(i, hsl.New(h, s, l).AsRGBA())
}

// Get returns the color in slot i and whether it has been set.
func (b *Builder) Get(i int) (color.RGBA, bool) {
	return b.colors[i], b.set&(1<<i) != 0
}

// Palette returns the completed palette, or an [*IncompleteError]
// listing the slots that have not been set.
func (b *Builder) Palette() (Palette, error) {
	if b.set == 1<<Size-1 {
		return b.colors, nil
	}
	e := &IncompleteError{}
	for i := range Size {
		if b.set&(1<<i) == 0 {
			e.Missing = append(e.Missing, i)
		}
	}
	return Palette{}, e
}
