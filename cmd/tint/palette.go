// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/tint/cache"
	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/ansi"
	"cogentcore.org/tint/colors/variants"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type paletteCmd struct {
	a         *app
	mode      modeFlags
	histogram string
	slider    float32
	dedupe    float64
	format    string
}

// paletteOutput is the result of the palette and watch commands.
type paletteOutput struct {
	Source  string     `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Mode    ansi.Mode  `json:"mode" yaml:"mode" toml:"mode"`
	Class   ansi.Class `json:"class" yaml:"class" toml:"class"`
	Variant string     `json:"variant,omitempty" yaml:"variant,omitempty" toml:"variant,omitempty"`
	Colors  []string   `json:"colors" yaml:"colors" toml:"colors"`
}

func (o *paletteOutput) term(out *termenv.Output) {
	title := fmt.Sprintf("%s palette (%s)", o.Mode, o.Class)
	if o.Variant != "" {
		title += ", near " + o.Variant
	}
	fmt.Fprintln(out, out.String(title).Bold())
	for i, hex := range o.Colors {
		fmt.Fprintf(out, "%s %2d %-14s %s\n", swatch(out, hex), i, ansi.SlotNames[i], hex)
	}
}

func newPaletteCmd(a *app) *cobra.Command {
	p := &paletteCmd{a: a}
	cmd := &cobra.Command{
		Use:   "palette [color...]",
		Short: "Generate a terminal palette from dominant colors",
		Long: `palette generates a 16 color terminal palette from dominant colors, given
either as arguments (most frequent first) or as an ImageMagick histogram file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(p.format); err != nil {
				return err
			}
			if len(args) == 0 && p.histogram == "" {
				return errors.New("need colors or a --histogram file")
			}
			c, closer, err := a.openCache()
			if err != nil {
				return err
			}
			defer closer()
			out, err := p.build(args, c)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), p.format, out)
		},
	}
	p.addFlags(cmd)
	cmd.Flags().StringVar(&p.histogram, "histogram", "", "read colors from an ImageMagick histogram file")
	return cmd
}

// addFlags adds the flags shared with the watch command.
func (p *paletteCmd) addFlags(cmd *cobra.Command) {
	p.mode.add(cmd)
	cmd.Flags().Float32Var(&p.slider, "variant-slider", -1, "reshape the palette at this variant slider position (0-100)")
	cmd.Flags().Float64Var(&p.dedupe, "dedupe", 0, "merge colors closer than this CIEDE2000 distance")
	cmd.Flags().StringVarP(&p.format, "output", "o", "term", "output format: term, json, yaml, or toml")
}

// samples returns the samples from the arguments or the histogram file.
func (p *paletteCmd) samples(args []string) ([]ansi.Sample, error) {
	var samples []ansi.Sample
	if p.histogram != "" {
		s, err := readHistogram(p.histogram)
		if err != nil {
			return nil, err
		}
		samples = s
	}
	cs := make([]color.RGBA, len(args))
	for i, arg := range args {
		c, err := colors.FromString(arg, nil)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	samples = append(samples, ansi.SamplesFromColors(cs...)...)
	if p.dedupe > 0 {
		n := len(samples)
		samples = ansi.Dedupe(samples, p.dedupe)
		slog.Debug("merged similar colors", "from", n, "to", len(samples))
	}
	return samples, nil
}

// build generates the palette, through the cache if there is one
// and the colors come from a file.
func (p *paletteCmd) build(args []string, c *cache.Cache) (*paletteOutput, error) {
	samples, err := p.samples(args)
	if err != nil {
		return nil, err
	}
	opts := &p.a.cfg.Palette
	mode, err := p.mode.resolve(p.a.cfg, samples)
	if err != nil {
		return nil, err
	}
	compute := func() (ansi.Palette, error) {
		return ansi.Generate(samples, mode, opts)
	}
	var pal ansi.Palette
	if c != nil && p.histogram != "" && len(args) == 0 && p.dedupe == 0 {
		pal, err = c.File(p.histogram, mode, compute)
	} else {
		pal, err = compute()
	}
	if err != nil {
		return nil, err
	}
	out := &paletteOutput{
		Source: p.histogram,
		Mode:   mode,
		Class:  ansi.Classify(samples, opts),
	}
	if p.slider >= 0 {
		copy(pal[:], variants.PaletteAtSlider(pal[:], p.slider))
		out.Variant = variants.NameAtSlider(p.slider).String()
	}
	out.Colors = pal.Hex()
	return out, nil
}
