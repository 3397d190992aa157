// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/variants"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// variantOutput is the result of the variant command.
type variantOutput struct {
	Variant string   `json:"variant" yaml:"variant" toml:"variant"`
	Slider  *float32 `json:"slider,omitempty" yaml:"slider,omitempty" toml:"slider,omitempty"`
	Colors  []string `json:"colors" yaml:"colors" toml:"colors"`
}

func (o *variantOutput) term(out *termenv.Output) {
	title := o.Variant
	if o.Slider != nil {
		title = fmt.Sprintf("slider %g, near %s", *o.Slider, o.Variant)
	}
	fmt.Fprintln(out, out.String(title).Bold())
	for i, hex := range o.Colors {
		fmt.Fprintf(out, "%s %2d %s\n", swatch(out, hex), i, hex)
	}
}

func newVariantCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "variant <slider|name> <color...>",
		Short: "Reshape colors by a palette variant",
		Long: `variant reshapes the given colors by the named variant, or by the blend of
variants at the given slider position (0-100).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cs := make([]color.RGBA, len(args)-1)
			for i, arg := range args[1:] {
				c, err := colors.FromString(arg, nil)
				if err != nil {
					return err
				}
				cs[i] = c
			}
			out, err := reshape(args[0], cs)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), format, out)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "term", "output format: term, json, yaml, or toml")
	return cmd
}

// reshape applies the variant or slider position given by sel.
func reshape(sel string, cs []color.RGBA) (*variantOutput, error) {
	out := &variantOutput{}
	var res []color.RGBA
	if f, err := strconv.ParseFloat(sel, 32); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("invalid slider position %q", sel)
		}
		v := float32(f)
		out.Slider = &v
		out.Variant = variants.NameAtSlider(v).String()
		res = variants.PaletteAtSlider(cs, v)
	} else {
		var v variants.Variant
		if err := v.SetString(sel); err != nil {
			return nil, err
		}
		out.Variant = v.String()
		res = variants.ApplyPalette(cs, v)
	}
	out.Colors = make([]string, len(res))
	for i, c := range res {
		out.Colors[i] = colors.AsHex(c)
	}
	return out, nil
}
