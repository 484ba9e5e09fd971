// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package termhue

import (
	"io"
	"os"
)

// Console applies foreground color to a single output stream. A console is
// bound to one stream for its whole lifetime and never closes it. Operations
// are best effort and direct: they either take effect immediately or are
// silently dropped, matching the degradation policy of the factory.
//
// A console is not safe for concurrent use. The native Windows strategy
// performs a read-modify-write on the console attribute word, so callers
// that log from multiple goroutines must serialize access themselves.
type Console interface {
	// SetColor replaces the current hue and intensity with c.
	SetColor(c Color)

	// SetColorBright sets or clears the intensity, preserving the hue.
	SetColorBright(on bool)

	// ResetColor returns the stream to the state it had when the console
	// was created.
	ResetColor()

	// Stream is the output stream the console is bound to.
	Stream() io.Writer
}

// New returns a Console bound to f, or ok==false when f cannot render
// color. force skips capability detection entirely, for callers that know
// color is safe (e.g. piping into a color-aware pager).
//
// Detection never fails with an error: a stream that is not a terminal, a
// TERM value of "dumb", or a console API refusal all yield the same absent
// result, and the caller emits plain text.
func New(f *os.File, force bool) (Console, bool) {
	return newConsole(f, force)
}
