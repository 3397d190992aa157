// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// formats are the supported output formats.
var formats = []string{"term", "json", "yaml", "toml"}

// termer is a value that can render itself for the terminal.
type termer interface {
	term(out *termenv.Output)
}

func checkFormat(format string) error {
	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (want one of %v)", format, formats)
}

// write writes the value to w in the given format.
func write(w io.Writer, format string, v termer) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(v)
	case "term":
		v.term(termenv.NewOutput(w))
		return nil
	}
	return checkFormat(format)
}

// swatch returns a small block of the given color.
func swatch(out *termenv.Output, hex string) string {
	return out.String("    ").Background(out.Color(hex)).String()
}
