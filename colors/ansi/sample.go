// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ansi

import (
	"bufio"
	"cmp"
	"fmt"
	"image/color"
	"io"
	"regexp"
	"slices"
	"strconv"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/hsl"
	"github.com/lucasb-eyer/go-colorful"
)

// Sample is one dominant color of an image, together with
// how often it occurs. Sample slices are kept in order of
// descending frequency.
type Sample struct {
	Color     color.RGBA
	Frequency int
}

// SamplesFromColors returns samples for the given colors,
// treating their order as the frequency ranking.
func SamplesFromColors(cs ...color.RGBA) []Sample {
	s := make([]Sample, len(cs))
	for i, c := range cs {
		s[i] = Sample{Color: c, Frequency: len(cs) - i}
	}
	return s
}

// SortSamples sorts the given samples by descending frequency,
// keeping the order of samples with equal frequencies.
func SortSamples(s []Sample) {
	slices.SortStableFunc(s, func(a, b Sample) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
}

// histogramLine matches one line of ImageMagick histogram output:
//
//	  1234: (61,174,233) #3DAEE9 srgb(61,174,233)
var histogramLine = regexp.MustCompile(`^\s*(\d+):\s*\([^)]+\)\s*(#[0-9A-Fa-f]{6})`)

// ParseHistogram reads samples from the output of an ImageMagick
// "-format %c histogram:info:-" command. Lines that do not
// describe a color are skipped. The result is sorted by
// descending frequency.
func ParseHistogram(r io.Reader) ([]Sample, error) {
	var samples []Sample
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		m := histogramLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("ansi.ParseHistogram: %w", err)
		}
		c, err := colors.FromHex(m[2])
		if err != nil {
			return nil, fmt.Errorf("ansi.ParseHistogram: %w", err)
		}
		samples = append(samples, Sample{Color: c, Frequency: n})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ansi.ParseHistogram: %w", err)
	}
	SortSamples(samples)
	return samples, nil
}

// Dedupe merges samples whose CIEDE2000 distance is at most
// maxDistance (about 0.01 is a just noticeable difference),
// adding the frequency of each merged sample to the more
// frequent one it is merged into.
func Dedupe(samples []Sample, maxDistance float64) []Sample {
	sorted := slices.Clone(samples)
	SortSamples(sorted)
	var out []Sample
	var labs []colorful.Color
	for _, s := range sorted {
		c, _ := colorful.MakeColor(s.Color)
		merged := false
		for i, l := range labs {
			if l.DistanceCIEDE2000(c) <= maxDistance {
				out[i].Frequency += s.Frequency
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, s)
			labs = append(labs, c)
		}
	}
	SortSamples(out)
	return out
}

// DetectMode returns [Light] if the mean lightness of the
// samples is above 50, and [Dark] otherwise.
func DetectMode(samples []Sample) Mode {
	if len(samples) == 0 {
		return Dark
	}
	var sum float32
	for _, s := range samples {
		sum += hsl.FromColor(s.Color).L
	}
	if sum/float32(len(samples)) > 50 {
		return Light
	}
	return Dark
}

// Accent returns the most vibrant sample, scored by HSV saturation
// times value, ignoring washed out, nearly black, and nearly white
// colors. It returns false if no sample qualifies.
func Accent(samples []Sample) (color.RGBA, bool) {
	best := -1.0
	var accent color.RGBA
	for _, s := range samples {
		c, _ := colorful.MakeColor(s.Color)
		_, sat, v := c.Hsv()
		if sat <= 0.15 || v <= 0.15 || v >= 0.95 {
			continue
		}
		if score := sat * v; score > best {
			best = score
			accent = s.Color
		}
	}
	return accent, best >= 0
}
