// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package termhue

// Windows console text attribute bits. The console orders its foreground
// bits blue-green-red, the reverse of the ANSI hue bits, so Color values
// cannot be copied into the attribute word directly. Declared without a
// build tag so the mapping is testable on every platform.
const (
	winFgBlue      uint16 = 0x0001
	winFgGreen     uint16 = 0x0002
	winFgRed       uint16 = 0x0004
	winFgIntensity uint16 = 0x0008

	winFgMask = winFgBlue | winFgGreen | winFgRed | winFgIntensity
)

// foregroundAttr rewrites the four foreground bits of a console attribute
// word for c, leaving background and other attribute bits untouched.
func foregroundAttr(current uint16, c Color) uint16 {
	attr := current &^ winFgMask

	if c&Red != 0 {
		attr |= winFgRed
	}

	if c&Green != 0 {
		attr |= winFgGreen
	}

	if c&Blue != 0 {
		attr |= winFgBlue
	}

	if c&Bright != 0 {
		attr |= winFgIntensity
	}

	return attr
}
