// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the basic color value operations used
// throughout tint: parsing and formatting, blending, and the WCAG
// luminance and contrast functions.
package colors

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/colors/hsl"
	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

var (
	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}
)

// ParseError is returned when a string cannot be interpreted as a color.
type ParseError struct {

	// Input is the string that could not be parsed.
	Input string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("colors: could not parse %q: %s", e.Input, e.Reason)
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromHex parses the given hex color string
// and returns the resulting color. The leading # is optional,
// and 3 (#rgb), 6 (#rrggbb), and 8 (#rrggbbaa) digit forms are
// accepted. It returns a [*ParseError] for anything else; see
// [MustFromHex] and [LogFromHex] for versions that do not return an error.
func FromHex(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.RGBA{}, &ParseError{Input: hex, Reason: "expected 3, 6, or 8 hex digits"}
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, &ParseError{Input: hex, Reason: "invalid hex digits"}
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MustFromHex is a version of [FromHex] that panics on errors.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// LogFromHex is a version of [FromHex] that logs errors
// and returns [Black] for malformed input.
func LogFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		slog.Error("colors.LogFromHex", "err", err)
		return Black
	}
	return c
}

// AsHex returns the color as a lowercase #rrggbb string.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, &ParseError{Input: name, Reason: "unknown color name"}
	}
	return c, nil
}

// FromString returns a color value from the given string.
// FromString accepts the following types of strings:
//   - hex values (#rgb, #rrggbb)
//   - standard CSS color names (for example, "navy")
//   - rgb(r, g, b), with channel values 0-255
//   - hsl(h, s, l), with h in degrees and s and l in percent
//   - lighten-PCT, darken-PCT, saturate-PCT, desaturate-PCT, spin-DEG,
//     which transform the given base color
func FromString(str string, base color.Color) (color.RGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	if lstr == "" {
		return color.RGBA{}, &ParseError{Input: str, Reason: "empty string"}
	}
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "hsl("):
		v, err := parseTriple(str, lstr[4:])
		if err != nil {
			return color.RGBA{}, err
		}
		return hsl.New(v[0], v[1], v[2]).AsRGBA(), nil
	case strings.HasPrefix(lstr, "rgb("):
		v, err := parseTriple(str, lstr[4:])
		if err != nil {
			return color.RGBA{}, err
		}
		ch := func(f float32) uint8 { return uint8(min(max(math32.Round(f), 0), 255)) }
		return color.RGBA{ch(v[0]), ch(v[1]), ch(v[2]), 255}, nil
	}
	if cmd, arg, ok := strings.Cut(lstr, "-"); ok {
		amt, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return color.RGBA{}, &ParseError{Input: str, Reason: "invalid amount " + strconv.Quote(arg)}
		}
		if base == nil {
			return color.RGBA{}, &ParseError{Input: str, Reason: "a base color is required for " + cmd}
		}
		pct := float32(amt)
		switch cmd {
		case "lighten":
			return hsl.Lighten(base, pct), nil
		case "darken":
			return hsl.Darken(base, pct), nil
		case "saturate":
			return hsl.Saturate(base, pct), nil
		case "desaturate":
			return hsl.Desaturate(base, pct), nil
		case "spin":
			return hsl.Spin(base, pct), nil
		}
		return color.RGBA{}, &ParseError{Input: str, Reason: "unknown transform " + strconv.Quote(cmd)}
	}
	if c, err := FromName(lstr); err == nil {
		return c, nil
	}
	// bare hex without the leading #
	if c, err := FromHex(lstr); err == nil {
		return c, nil
	}
	return color.RGBA{}, &ParseError{Input: str, Reason: "not a color name, hex value, rgb(), or hsl()"}
}

// MustFromString is a version of [FromString] that panics on errors.
func MustFromString(str string, base color.Color) color.RGBA {
	return errors.Must1(FromString(str, base))
}

// parseTriple parses the "a, b, c)" tail of a functional color notation.
func parseTriple(input, tail string) ([3]float32, error) {
	var v [3]float32
	body, ok := strings.CutSuffix(strings.TrimSpace(tail), ")")
	if !ok {
		return v, &ParseError{Input: input, Reason: "missing closing parenthesis"}
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return v, &ParseError{Input: input, Reason: "expected three comma-separated values"}
	}
	for i, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "%")
		p = strings.TrimSuffix(p, "deg")
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return v, &ParseError{Input: input, Reason: "invalid number " + strconv.Quote(p)}
		}
		v[i] = float32(f)
	}
	return v, nil
}

// Blend returns a color that is the given ratio blend between the first
// and second color: 0 returns x, 1 returns y, 0.1 is 10% of y and 90% of x.
// The ratio is clamped to [0, 1] and blending is done per channel
// directly on the RGB values.
func Blend(ratio float32, x, y color.Color) color.RGBA {
	a := AsRGBA(x)
	b := AsRGBA(y)
	ratio = min(max(ratio, 0), 1)
	mix := func(p, q uint8) uint8 {
		v := float32(p)*(1-ratio) + float32(q)*ratio
		return uint8(min(max(math32.Round(v), 0), 255))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
