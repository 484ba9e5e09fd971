// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/termhue/internal/ctxlog"
)

// Watch monitors the signal channel and handles signals. Every signal
// restores the registered consoles to their baseline attributes. The first
// signal of a given type is otherwise a no-op so in-flight work can finish;
// the second cancels the context.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		resetAll()

		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, console state restored", "signal", sig.String())

		seen[sig] = struct{}{}
	}
}
