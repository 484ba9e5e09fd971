// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package termhue

import "os"

// newConsole returns the ANSI strategy or nothing. Escape sequences are the
// only mechanism on POSIX-like systems, so there is no fallback.
func newConsole(f *os.File, force bool) (Console, bool) {
	if !colorCapable(f, force) {
		return nil, false
	}

	return newANSIConsole(f), true
}
