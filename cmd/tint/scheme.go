// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/ansi"
	"cogentcore.org/tint/colors/matcolor"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// role is one named color of a scheme, in order.
type role struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Light string `json:"light" yaml:"light" toml:"light"`
	Dark  string `json:"dark" yaml:"dark" toml:"dark"`
}

// family is the tone table of one tonal family.
type family struct {
	Name  string   `json:"name" yaml:"name" toml:"name"`
	Tones []string `json:"tones" yaml:"tones" toml:"tones"`
}

// schemeOutput is the result of the scheme command.
type schemeOutput struct {
	Seed     string   `json:"seed" yaml:"seed" toml:"seed"`
	Roles    []role   `json:"roles" yaml:"roles" toml:"roles"`
	Families []family `json:"families,omitempty" yaml:"families,omitempty" toml:"families,omitempty"`

	// preview is the short set of roles shown first in the terminal
	preview []role
}

func newSchemeOutput(seed color.RGBA, s *matcolor.Schemes, tones bool) *schemeOutput {
	o := &schemeOutput{Seed: colors.AsHex(seed)}
	light, dark := s.Light.Roles(), s.Dark.Roles()
	for i, r := range light {
		o.Roles = append(o.Roles, role{Name: r.Name, Light: colors.AsHex(r.Color), Dark: colors.AsHex(dark[i].Color)})
	}
	lp, dp := s.Light.Preview(), s.Dark.Preview()
	for i, r := range lp {
		o.preview = append(o.preview, role{Name: r.Name, Light: colors.AsHex(r.Color), Dark: colors.AsHex(dp[i].Color)})
	}
	if !tones {
		return o
	}
	for _, f := range s.Palette.Families() {
		fo := family{Name: f.Name, Tones: make([]string, matcolor.NTones)}
		for t := range fo.Tones {
			fo.Tones[t] = colors.AsHex(f.Tones.AbsTone(t))
		}
		o.Families = append(o.Families, fo)
	}
	return o
}

func (o *schemeOutput) term(out *termenv.Output) {
	fmt.Fprintf(out, "%s %s\n", swatch(out, o.Seed), out.String("scheme for "+o.Seed).Bold())
	var light, dark string
	for _, r := range o.preview {
		light += swatch(out, r.Light)
		dark += swatch(out, r.Dark)
	}
	fmt.Fprintf(out, "light %s\ndark  %s\n\n", light, dark)
	fmt.Fprintf(out, "%-4s %-4s %-32s %-8s %s\n", "L", "D", "role", "light", "dark")
	for _, r := range o.Roles {
		fmt.Fprintf(out, "%s %s %-32s %s %s\n", swatch(out, r.Light), swatch(out, r.Dark), r.Name, r.Light, r.Dark)
	}
	for _, f := range o.Families {
		fmt.Fprintf(out, "\n%s\n", out.String(f.Name).Bold())
		for t := 0; t < len(f.Tones); t += 10 {
			fmt.Fprintf(out, "%s %3d %s\n", swatch(out, f.Tones[t]), t, f.Tones[t])
		}
	}
}

func newSchemeCmd(a *app) *cobra.Command {
	var histogram, format string
	var tones bool
	cmd := &cobra.Command{
		Use:   "scheme [seed]",
		Short: "Generate light and dark color schemes from a seed color",
		Long: `scheme generates tonal palettes and light and dark color schemes from a seed
color, given as an argument or picked as the accent of a histogram file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			seed, err := schemeSeed(args, histogram)
			if err != nil {
				return err
			}
			s := matcolor.SchemesFromPrimary(seed, &a.cfg.Scheme)
			return write(cmd.OutOrStdout(), format, newSchemeOutput(seed, s, tones))
		},
	}
	cmd.Flags().StringVar(&histogram, "histogram", "", "pick the seed as the accent of an ImageMagick histogram file")
	cmd.Flags().BoolVar(&tones, "tones", false, "include the tone tables of every family")
	cmd.Flags().StringVarP(&format, "output", "o", "term", "output format: term, json, yaml, or toml")
	return cmd
}

// schemeSeed returns the seed color from the arguments or
// the accent color of the histogram file.
func schemeSeed(args []string, histogram string) (color.RGBA, error) {
	if len(args) == 1 {
		return colors.FromString(args[0], nil)
	}
	if histogram == "" {
		return color.RGBA{}, errors.New("need a seed color or a --histogram file")
	}
	samples, err := readHistogram(histogram)
	if err != nil {
		return color.RGBA{}, err
	}
	if c, ok := ansi.Accent(samples); ok {
		return c, nil
	}
	if len(samples) == 0 {
		return color.RGBA{}, fmt.Errorf("%s: no colors", histogram)
	}
	slog.Warn("no accent color, using the most frequent color", "histogram", histogram)
	return samples[0].Color, nil
}
