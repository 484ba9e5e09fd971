// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the termhue command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/termhue"
	"github.com/matt-FFFFFF/termhue/cmd/termhue/chart"
	"github.com/matt-FFFFFF/termhue/cmd/termhue/demo"
	"github.com/matt-FFFFFF/termhue/internal/ctxlog"
	"github.com/matt-FFFFFF/termhue/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		chart.ChartCmd,
		demo.DemoCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "termhue",
	Description: `Termhue colors terminal output on the sixteen color ANSI palette.
It detects whether a stream is an interactive, color-capable terminal and
drives it with escape sequences, falling back to the native console API on
legacy Windows hosts. Detection failure is never an error: output simply
stays plain.`,
	Usage:     "termhue chart",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", termhue.Version, termhue.Commit)

	err := rootCmd.Run(ctx, os.Args)

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
