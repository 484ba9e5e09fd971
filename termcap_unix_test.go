// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package termhue

import (
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
)

func TestColorCapable(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		tty   bool
		force bool
		want  bool
	}{
		{
			name: "interactive xterm",
			term: "xterm",
			tty:  true,
			want: true,
		},
		{
			name: "dumb terminal",
			term: "dumb",
			tty:  true,
			want: false,
		},
		{
			name: "TERM empty",
			term: "",
			tty:  true,
			want: false,
		},
		{
			name: "not a terminal",
			term: "xterm",
			tty:  false,
			want: false,
		},
		{
			name:  "forced on redirected stream",
			term:  "",
			tty:   false,
			force: true,
			want:  true,
		},
		{
			name:  "forced on dumb terminal",
			term:  "dumb",
			tty:   true,
			force: true,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubs := gostub.Stub(&isTerminal, func(uintptr) bool { return tt.tty })
			defer stubs.Reset()

			t.Setenv("TERM", tt.term)

			got := colorCapable(devNull(t), tt.force)
			assert.Equal(t, tt.want, got)
		})
	}
}
