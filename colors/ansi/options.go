// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"image/color"

	"cogentcore.org/tint/colors/hsl"
)

// Options contains the thresholds used to classify samples,
// synthesize palettes, and normalize them. All lightness
// and saturation values are HSL percentages (0-100).
// Use [DefaultOptions] to get the standard values.
type Options struct {

	// MinSamples is the minimum number of dominant colors needed to synthesize a palette.
	MinSamples int `toml:"min-samples" default:"8"`

	// ChromaticSaturation is the saturation below which a color counts as gray.
	ChromaticSaturation float32 `toml:"chromatic-saturation" default:"15"`

	// MonochromeFraction is the fraction of gray samples above which an image is [Monochrome].
	MonochromeFraction float32 `toml:"monochrome-fraction" default:"0.7"`

	// LowDiversityFraction is the fraction of similar chromatic pairs above which an image is [LowDiversity].
	LowDiversityFraction float32 `toml:"low-diversity-fraction" default:"0.6"`

	// SimilarHue is the hue distance (degrees) below which two colors are similar.
	SimilarHue float32 `toml:"similar-hue" default:"30"`

	// SimilarLightness is the lightness difference below which two colors are similar.
	SimilarLightness float32 `toml:"similar-lightness" default:"20"`

	// MinBackground is the minimum background lightness of a dark palette.
	MinBackground float32 `toml:"min-background" default:"8"`

	// MaxBackground is the maximum background lightness of a light palette.
	MaxBackground float32 `toml:"max-background" default:"92"`

	// VeryDark is the background lightness below which a palette is treated as very dark.
	VeryDark float32 `toml:"very-dark" default:"20"`

	// VeryLight is the background lightness above which a palette is treated as very light.
	VeryLight float32 `toml:"very-light" default:"80"`

	// MinOnDark is the minimum lightness of a standard color on a very dark background.
	MinOnDark float32 `toml:"min-on-dark" default:"55"`

	// MaxOnLight is the maximum lightness of a standard color on a very light background.
	MaxOnLight float32 `toml:"max-on-light" default:"45"`

	// AbsoluteMinLightness is the floor used when darkening colors for a very light background.
	AbsoluteMinLightness float32 `toml:"absolute-min-lightness" default:"25"`

	// MinForegroundContrast is the minimum lightness difference between the foreground and the background.
	MinForegroundContrast float32 `toml:"min-foreground-contrast" default:"40"`

	// MinContrastRatio is the minimum WCAG contrast ratio between the foreground and the background.
	MinContrastRatio float32 `toml:"min-contrast-ratio" default:"4.5"`

	// Outlier is the distance from the mean lightness beyond which a standard color is an outlier.
	Outlier float32 `toml:"outlier" default:"25"`

	// TooDark and TooBright bound the lightness range preferred when matching hues.
	TooDark   float32 `toml:"too-dark" default:"20"`
	TooBright float32 `toml:"too-bright" default:"85"`

	// BrightBoost is the lightness added to make the bright version of a color.
	BrightBoost float32 `toml:"bright-boost" default:"18"`

	// BrightSaturation is the saturation factor used to make the bright version of a color.
	BrightSaturation float32 `toml:"bright-saturation" default:"1.25"`

	// Converter converts colors to HSL; it can be set to a shared [hsl.Memo].
	Converter hsl.Converter `toml:"-" json:"-" yaml:"-"`
}

// DefaultOptions returns the standard [Options].
func DefaultOptions() *Options {
	return &Options{
		MinSamples:            8,
		ChromaticSaturation:   15,
		MonochromeFraction:    0.7,
		LowDiversityFraction:  0.6,
		SimilarHue:            30,
		SimilarLightness:      20,
		MinBackground:         8,
		MaxBackground:         92,
		VeryDark:              20,
		VeryLight:             80,
		MinOnDark:             55,
		MaxOnLight:            45,
		AbsoluteMinLightness:  25,
		MinForegroundContrast: 40,
		MinContrastRatio:      4.5,
		Outlier:               25,
		TooDark:               20,
		TooBright:             85,
		BrightBoost:           18,
		BrightSaturation:      1.25,
	}
}

// orDefault returns the given options, or the defaults if they are nil.
func orDefault(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}

// toHSL returns the HSL value of the given color, through the
// [Options.Converter] if there is one.
func (o *Options) toHSL(c color.RGBA) hsl.HSL {
	if o.Converter != nil {
		return o.Converter.HSL(c)
	}
	return hsl.FromRGB(c.R, c.G, c.B)
}

// bright returns the bright version of the given color.
func (o *Options) bright(c color.RGBA) color.RGBA {
	h := o.toHSL(c)
	return hsl.New(h.H, h.S*o.BrightSaturation, h.L+o.BrightBoost).AsRGBA()
}
