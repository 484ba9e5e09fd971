// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package termhue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// devNull returns a writable *os.File whose fd is not a terminal.
func devNull(t *testing.T) *os.File {
	t.Helper()

	f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

// tempFile returns a writable *os.File backed by a real file so the test
// can read back what the console wrote.
func tempFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestNewRedirectedStream(t *testing.T) {
	con, ok := New(tempFile(t), false)
	assert.False(t, ok, "redirected stream must not be color capable")
	assert.Nil(t, con)
}

func TestNewForced(t *testing.T) {
	f := tempFile(t)

	con, ok := New(f, true)
	require.True(t, ok, "force must bypass detection")

	con.SetColor(BrightRed)
	con.ResetColor()

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;31m\x1b[m", string(data))
}

func TestNewInteractiveTerminal(t *testing.T) {
	stubs := gostub.Stub(&isTerminal, func(uintptr) bool { return true })
	defer stubs.Reset()

	t.Setenv("TERM", "xterm")

	f := tempFile(t)

	con, ok := New(f, false)
	require.True(t, ok, "xterm tty must be color capable")

	con.SetColorBright(true)
	con.SetColorBright(false)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m\x1b[0m", string(data))
}
