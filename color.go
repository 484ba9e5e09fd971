// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package termhue

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned when a color name cannot be resolved.
var ErrUnknownColor = errors.New("unknown color name")

// Color is a bitmask composed of the Red, Green, Blue and Bright flags.
// Every combination of the four flags is a legal value; the sixteen named
// constants cover them all.
type Color uint8

// Flags composing a Color. The hue bit order matches the ANSI palette
// (black=0 through lightGray=7 at escape codes 30-37), not the Windows
// console attribute order.
const (
	Red Color = 1 << iota
	Green
	Blue
	Bright
)

// The sixteen colors of the base terminal palette.
const (
	Black         Color = 0
	Yellow        Color = Red | Green
	Magenta       Color = Red | Blue
	Cyan          Color = Green | Blue
	LightGray     Color = Red | Green | Blue
	DarkGray      Color = Black | Bright
	BrightRed     Color = Red | Bright
	BrightGreen   Color = Green | Bright
	BrightYellow  Color = Yellow | Bright
	BrightBlue    Color = Blue | Bright
	BrightMagenta Color = Magenta | Bright
	BrightCyan    Color = Cyan | Bright
	White         Color = LightGray | Bright
)

var colorNames = [...]string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"lightGray",
	"darkGray",
	"brightRed",
	"brightGreen",
	"brightYellow",
	"brightBlue",
	"brightMagenta",
	"brightCyan",
	"white",
}

// hue is the color with the intensity flag masked off, always in [0,7].
func (c Color) hue() Color {
	return c &^ Bright
}

// bright reports whether the intensity flag is set.
func (c Color) bright() bool {
	return c&Bright != 0
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}

	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a palette color by name, case-insensitively.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(name, n) {
			return Color(i), nil //nolint:gosec // i is in [0,15]
		}
	}

	return Black, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Palette returns the sixteen defined colors in ascending bitmask order.
func Palette() []Color {
	p := make([]Color, len(colorNames))
	for i := range p {
		p[i] = Color(i) //nolint:gosec // i is in [0,15]
	}

	return p
}
