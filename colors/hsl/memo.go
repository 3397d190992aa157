// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"sync"
)

// Converter converts RGB colors into [HSL]. It allows
// callers to plug in memoization for repeated conversions.
type Converter interface {
	HSL(c color.RGBA) HSL
}

// Direct is a [Converter] that computes every conversion.
type Direct struct{}

func (Direct) HSL(c color.RGBA) HSL {
	return FromRGB(c.R, c.G, c.B)
}

// Memo is a [Converter] that remembers up to Size conversions.
// When it fills up, it starts over with an empty table.
// It is safe for concurrent use.
type Memo struct {

	// Size is the maximum number of entries; 1024 if <= 0.
	Size int

	mu    sync.Mutex
	table map[color.RGBA]HSL
}

// NewMemo returns a new [Memo] holding at most size entries.
func NewMemo(size int) *Memo {
	return &Memo{Size: size}
}

func (m *Memo) HSL(c color.RGBA) HSL {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.table[c]; ok {
		return h
	}
	size := m.Size
	if size <= 0 {
		size = 1024
	}
	if m.table == nil || len(m.table) >= size {
		m.table = make(map[color.RGBA]HSL, size)
	}
	h := FromRGB(c.R, c.G, c.B)
	m.table[c] = h
	return h
}

// Len returns the number of remembered conversions.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.table)
}
