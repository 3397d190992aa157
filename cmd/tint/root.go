// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/tint/base/logx"
	"cogentcore.org/tint/cache"
	"cogentcore.org/tint/colors/ansi"
	"cogentcore.org/tint/colors/hsl"
	"cogentcore.org/tint/config"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands.
type app struct {
	configPath string
	vv, v, q   bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tint",
		Short: "Generate terminal palettes and color schemes",
		Long: `tint derives a 16 color terminal palette from the dominant colors of an
image, and light and dark tonal color schemes from a single seed color.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "config file")
	pf.BoolVar(&a.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")

	root.AddCommand(newPaletteCmd(a))
	root.AddCommand(newSchemeCmd(a))
	root.AddCommand(newVariantCmd(a))
	root.AddCommand(newWatchCmd(a))
	return root
}

// setup loads the config and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Open(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logx.UserLevel = cfg.Log.Level
	if a.vv || a.v || a.q {
		logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	}
	slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr())))
	a.cfg.Palette.Converter = hsl.NewMemo(0)
	return nil
}

// modeFlags are the flags that select the palette mode.
type modeFlags struct {
	light, dark, auto bool
}

func (m *modeFlags) add(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&m.light, "light", false, "generate a light palette")
	cmd.Flags().BoolVar(&m.dark, "dark", false, "generate a dark palette")
	cmd.Flags().BoolVar(&m.auto, "auto", false, "detect the mode from the colors")
	cmd.MarkFlagsMutuallyExclusive("light", "dark", "auto")
}

// resolve returns the mode selected by the flags, falling
// back on the config.
func (m *modeFlags) resolve(cfg *config.Config, samples []ansi.Sample) (ansi.Mode, error) {
	switch {
	case m.light:
		return ansi.Light, nil
	case m.dark:
		return ansi.Dark, nil
	case m.auto:
		return ansi.DetectMode(samples), nil
	}
	mode, auto, err := cfg.PaletteMode()
	if err != nil {
		return ansi.Dark, err
	}
	if auto {
		return ansi.DetectMode(samples), nil
	}
	return mode, nil
}

// readHistogram reads samples from the given histogram file.
func readHistogram(path string) ([]ansi.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	samples, err := ansi.ParseHistogram(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// openCache returns the configured palette cache, or nil if
// caching is disabled, and a function to release it.
func (a *app) openCache() (*cache.Cache, func() error, error) {
	store, closer, err := a.cfg.Cache.Store()
	if err != nil || store == nil {
		return nil, closer, err
	}
	return cache.New(store), closer, nil
}
