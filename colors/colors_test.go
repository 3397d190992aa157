// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	tests := map[string]color.RGBA{
		"#3daee9":   {0x3d, 0xae, 0xe9, 255},
		"3DAEE9":    {0x3d, 0xae, 0xe9, 255},
		"#fff":      {255, 255, 255, 255},
		"#a1b":      {0xaa, 0x11, 0xbb, 255},
		"#11223344": {0x11, 0x22, 0x33, 0x44},
	}
	for in, want := range tests {
		have, err := FromHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, have, in)
	}

	for _, in := range []string{"", "#12", "#12345", "#gggggg", "#1234567"} {
		_, err := FromHex(in)
		var pe *ParseError
		assert.True(t, errors.As(err, &pe), in)
	}

	assert.Panics(t, func() { MustFromHex("#zz") })
	assert.Equal(t, Black, LogFromHex("nope"))
	assert.Equal(t, color.RGBA{0xda, 0x44, 0x53, 255}, LogFromHex("#da4453"))
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#3daee9", AsHex(color.RGBA{0x3d, 0xae, 0xe9, 255}))
	assert.Equal(t, "#000000", AsHex(Black))
	assert.Equal(t, "#ba1a1a", AsHex(MustFromHex("#BA1A1A")))
}

func TestFromString(t *testing.T) {
	base := color.RGBA{255, 0, 0, 255}
	tests := map[string]color.RGBA{
		"#ff0000":            {255, 0, 0, 255},
		"navy":               {0, 0, 128, 255},
		"NAVY":               {0, 0, 128, 255},
		"rgb(10, 20, 30)":    {10, 20, 30, 255},
		"rgb(300, -5, 30)":   {255, 0, 30, 255},
		"hsl(120, 100%, 50%)": {0, 255, 0, 255},
		"hsl(0, 0, 100)":     {255, 255, 255, 255},
		"lighten-20":         {255, 102, 102, 255},
		"darken-20":          {153, 0, 0, 255},
		"desaturate-50":      {191, 64, 64, 255},
		"spin-120":           {0, 255, 0, 255},
		"3daee9":             {0x3d, 0xae, 0xe9, 255},
	}
	for in, want := range tests {
		have, err := FromString(in, base)
		require.NoError(t, err, in)
		assert.Equal(t, want, have, in)
	}

	for _, in := range []string{"", "notacolor", "rgb(1, 2)", "hsl(1, 2, 3", "rgb(a, b, c)", "lighten-x", "wobble-10"} {
		_, err := FromString(in, base)
		var pe *ParseError
		assert.True(t, errors.As(err, &pe), in)
	}
	_, err := FromString("lighten-10", nil)
	assert.Error(t, err)

	assert.Panics(t, func() { MustFromString("notacolor", nil) })
	assert.Equal(t, color.RGBA{0, 128, 0, 255}, MustFromString("green", nil))
}

func TestBlend(t *testing.T) {
	a := color.RGBA{0, 100, 200, 255}
	b := color.RGBA{200, 0, 100, 255}
	assert.Equal(t, a, Blend(0, a, b))
	assert.Equal(t, b, Blend(1, a, b))
	assert.Equal(t, color.RGBA{100, 50, 150, 255}, Blend(0.5, a, b))
	assert.Equal(t, a, Blend(-3, a, b))
	assert.Equal(t, b, Blend(7, a, b))
	assert.Equal(t, a, Blend(0.37, a, a))
}
