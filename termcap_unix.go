// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package termhue

import (
	"os"

	"golang.org/x/term"
)

// isTerminal is a package variable so tests can substitute the probe.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// colorCapable reports whether f can render ANSI color: the descriptor must
// be an interactive terminal and TERM must be present, non-empty, and not
// "dumb". force bypasses detection entirely.
func colorCapable(f *os.File, force bool) bool {
	if force {
		return true
	}

	if !isTerminal(f.Fd()) {
		return false
	}

	t := os.Getenv("TERM")

	return t != "" && t != "dumb"
}
