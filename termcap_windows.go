// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package termhue

import (
	"os"

	"golang.org/x/sys/windows"
)

// colorCapable reports whether f is a console that can process ANSI escape
// sequences. When virtual terminal mode is off it attempts to enable it as
// a one-time opt-in; a refusal (legacy console) reports false so the
// factory can fall back to the native attribute strategy. force bypasses
// detection entirely.
func colorCapable(f *os.File, force bool) bool {
	if force {
		return true
	}

	h := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}

	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}

	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
