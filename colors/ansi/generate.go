// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ansi derives 16 color terminal palettes from the
// dominant colors of an image. The samples are classified
// ([Classify]), turned into a palette with the strategy for their
// class ([Synthesize]), and then made readable ([Normalize]).
// [Generate] runs the whole pipeline.
package ansi

import (
	"log/slog"
)

// Generate builds a normalized palette for the given mode from
// the given samples, which must be sorted by descending frequency.
// It returns an [*InsufficientColorsError] if there are fewer than
// [Options.MinSamples] samples. The options may be nil, in which
// case [DefaultOptions] are used.
func Generate(samples []Sample, mode Mode, opts *Options) (Palette, error) {
	opts = orDefault(opts)
	p, class, err := Synthesize(samples, mode, opts)
	if err != nil {
		return Palette{}, err
	}
	slog.Info("ansi: generating palette", "class", class, "mode", mode)
	return Normalize(p, opts), nil
}
