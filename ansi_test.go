// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package termhue

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestANSISetColor(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Black, "\x1b[0;30m"},
		{Red, "\x1b[0;31m"},
		{Green, "\x1b[0;32m"},
		{Yellow, "\x1b[0;33m"},
		{Blue, "\x1b[0;34m"},
		{Magenta, "\x1b[0;35m"},
		{Cyan, "\x1b[0;36m"},
		{LightGray, "\x1b[0;37m"},
		{DarkGray, "\x1b[1;30m"},
		{BrightRed, "\x1b[1;31m"},
		{BrightGreen, "\x1b[1;32m"},
		{BrightYellow, "\x1b[1;33m"},
		{BrightBlue, "\x1b[1;34m"},
		{BrightMagenta, "\x1b[1;35m"},
		{BrightCyan, "\x1b[1;36m"},
		{White, "\x1b[1;37m"},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			var buf bytes.Buffer
			con := newANSIConsole(&buf)
			con.SetColor(tt.color)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestANSISetColorBright(t *testing.T) {
	var buf bytes.Buffer
	con := newANSIConsole(&buf)

	con.SetColorBright(true)
	assert.Equal(t, "\x1b[1m", buf.String())

	buf.Reset()
	con.SetColorBright(false)
	assert.Equal(t, "\x1b[0m", buf.String())
}

func TestANSIResetColor(t *testing.T) {
	var buf bytes.Buffer
	con := newANSIConsole(&buf)
	con.ResetColor()
	assert.Equal(t, "\x1b[m", buf.String())
}

// A set followed by a reset must not leave any residual attribute bytes
// beyond the universal reset code.
func TestANSISetThenReset(t *testing.T) {
	var buf bytes.Buffer
	con := newANSIConsole(&buf)

	con.SetColor(White)
	con.ResetColor()
	assert.Equal(t, "\x1b[1;37m\x1b[m", buf.String())
}

func TestANSIStream(t *testing.T) {
	var buf bytes.Buffer
	con := newANSIConsole(&buf)
	assert.Same(t, &buf, con.Stream())
}
