// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package termhue colors terminal output on the sixteen color ANSI palette.
// It decides whether a stream is an interactive, color-capable terminal and,
// if so, returns a Console that sets the foreground color, toggles intensity,
// and resets attributes. On POSIX systems the console writes ANSI escape
// sequences; on Windows it enables virtual terminal processing where
// available and otherwise falls back to the native console attribute API.
// When a stream cannot render color the factory reports absence rather than
// an error, and callers simply skip coloring.
package termhue
