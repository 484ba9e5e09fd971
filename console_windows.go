// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package termhue

import (
	"io"
	"os"

	"golang.org/x/sys/windows"
)

// newConsole prefers the ANSI strategy, which covers Windows 10+ terminals
// once virtual terminal mode is on. Legacy consoles that refuse the mode
// fall back to the native attribute strategy.
func newConsole(f *os.File, force bool) (Console, bool) {
	if colorCapable(f, force) {
		return newANSIConsole(f), true
	}

	return newNativeConsole(f)
}

// nativeConsole drives a legacy console through its text attribute word.
// The word captured at creation is the baseline that ResetColor restores,
// background bits included.
type nativeConsole struct {
	out      *os.File
	handle   windows.Handle
	baseline uint16
}

func newNativeConsole(f *os.File) (Console, bool) {
	h := windows.Handle(f.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		// Not a console, or the query failed: capability absent.
		return nil, false
	}

	return &nativeConsole{
		out:      f,
		handle:   h,
		baseline: info.Attributes,
	}, true
}

func (c *nativeConsole) SetColor(col Color) {
	c.setAttr(foregroundAttr(c.currentAttr(), col))
}

func (c *nativeConsole) SetColorBright(on bool) {
	attr := c.currentAttr()
	if on {
		attr |= winFgIntensity
	} else {
		attr &^= winFgIntensity
	}

	c.setAttr(attr)
}

func (c *nativeConsole) ResetColor() {
	c.setAttr(c.baseline)
}

func (c *nativeConsole) Stream() io.Writer {
	return c.out
}

// currentAttr reads the attribute word fresh on every call so that bright
// toggling composes with whatever hue is already active on the console.
func (c *nativeConsole) currentAttr() uint16 {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.handle, &info); err != nil {
		return c.baseline
	}

	return info.Attributes
}

func (c *nativeConsole) setAttr(attr uint16) {
	_ = windows.SetConsoleTextAttribute(c.handle, attr)
}
