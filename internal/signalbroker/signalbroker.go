// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker provides a way to listen for OS signals and handle
// them gracefully. By default it listens for os.Interrupt, syscall.SIGINT,
// syscall.SIGTERM, and syscall.SIGQUIT signals.
//
// Commands that attach a console to a stream register it here, so a signal
// resets the terminal attributes before the process gives up and the user
// is never left with a stained prompt.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/matt-FFFFFF/termhue"
	"github.com/matt-FFFFFF/termhue/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

var (
	mu       sync.Mutex
	consoles []termhue.Console
)

// New creates a new signal broker that listens for OS signals that should terminate the process.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Register adds a console whose attributes are restored when a termination
// signal arrives.
func Register(con termhue.Console) {
	mu.Lock()
	defer mu.Unlock()

	consoles = append(consoles, con)
}

func resetAll() {
	mu.Lock()
	defer mu.Unlock()

	for _, con := range consoles {
		con.ResetColor()
	}
}
