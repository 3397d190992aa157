// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level tag colored for the terminal, and that only
// handles records at or above [UserLevel].
type Handler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	prefix string
	attrs  []byte
}

// NewHandler returns a new [Handler] writing to the given writer.
// The color profile is detected from the writer and environment
// unless it is given in the options.
func NewHandler(w io.Writer, opts ...termenv.OutputOption) *Handler {
	return &Handler{out: termenv.NewOutput(w, opts...), mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to
// one using a [Handler] writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelColor returns the ANSI color of the given level.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "1"
	case level >= slog.LevelWarn:
		return "3"
	case level >= slog.LevelInfo:
		return "4"
	}
	return "8"
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	tag := h.out.String(r.Level.String()).Foreground(h.out.Color(levelColor(r.Level)))
	if r.Level >= slog.LevelWarn {
		tag = tag.Bold()
	}
	buf.WriteString(tag.String())
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.Write(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var buf bytes.Buffer
	buf.Write(h.attrs)
	for _, a := range attrs {
		appendAttr(&buf, h.prefix, a)
	}
	nh := *h
	nh.attrs = buf.Bytes()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

// appendAttr writes the attribute as key=value, flattening groups.
func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, p, ga)
		}
		return
	}
	v := a.Value.String()
	if needsQuote(v) {
		v = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(buf, " %s%s=%s", prefix, a.Key, v)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r > '~' {
			return true
		}
	}
	return false
}
