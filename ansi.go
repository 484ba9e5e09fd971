// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package termhue

import (
	"fmt"
	"io"
)

// ansiConsole drives any VT100-compatible terminal by writing escape
// sequences into the stream. It is stateless: the reset sequence is
// universal, so no baseline snapshot is needed.
type ansiConsole struct {
	out io.Writer
}

func newANSIConsole(out io.Writer) *ansiConsole {
	return &ansiConsole{out: out}
}

// SetColor emits ESC[{0|1};{30+hue}m.
func (c *ansiConsole) SetColor(col Color) {
	intensity := 0
	if col.bright() {
		intensity = 1
	}

	fmt.Fprintf(c.out, "\x1b[%d;%dm", intensity, 30+int(col.hue()))
}

// SetColorBright emits ESC[1m or ESC[0m.
func (c *ansiConsole) SetColorBright(on bool) {
	intensity := 0
	if on {
		intensity = 1
	}

	fmt.Fprintf(c.out, "\x1b[%dm", intensity)
}

// ResetColor emits the universal attributes-off sequence ESC[m.
func (c *ansiConsole) ResetColor() {
	_, _ = io.WriteString(c.out, "\x1b[m")
}

func (c *ansiConsole) Stream() io.Writer {
	return c.out
}
