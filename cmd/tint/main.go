// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tint generates terminal palettes and color schemes
// from dominant image colors or a single seed color.
package main

import (
	"os"

	"cogentcore.org/tint/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
