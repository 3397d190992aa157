// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/tint/cache"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	p := &paletteCmd{a: a}
	cmd := &cobra.Command{
		Use:   "watch <histogram-file>",
		Short: "Generate a palette again whenever a histogram file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(p.format); err != nil {
				return err
			}
			p.histogram = args[0]
			c, closer, err := a.openCache()
			if err != nil {
				return err
			}
			defer closer()

			emit := func() error {
				out, err := p.build(nil, c)
				if err != nil {
					return err
				}
				return write(cmd.OutOrStdout(), p.format, out)
			}
			if err := emit(); err != nil {
				return err
			}
			w, err := cache.NewWatcher(func(path string) {
				if err := emit(); err != nil {
					slog.Error("regenerating palette", "path", path, "err", err)
				}
			}, p.histogram)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return w.Watch(ctx)
		},
	}
	p.addFlags(cmd)
	return cmd
}
