// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package demo

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/matt-FFFFFF/termhue"
	"github.com/matt-FFFFFF/termhue/internal/ctxlog"
	"github.com/matt-FFFFFF/termhue/internal/signalbroker"
	"github.com/matt-FFFFFF/termhue/internal/theme"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	colorFlag = "color"
	themeFlag = "theme"
)

// ErrLoadTheme is returned when the theme file cannot be loaded.
var ErrLoadTheme = errors.New("failed to load theme")

// DemoCmd is the command that emits sample log records through the themed
// pretty handler.
var DemoCmd = &cli.Command{
	Name:        "demo",
	Description: "Emit sample log records at every level through the themed pretty handler.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        colorFlag,
			Usage:       "Force color output even when stdout is not a terminal",
			Value:       false,
			DefaultText: "false",
		},
		&cli.StringFlag{
			Name:      themeFlag,
			Usage:     "Path to a YAML theme file",
			TakesFile: true,
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		th := theme.Default()

		if path := cmd.String(themeFlag); path != "" {
			loaded, err := theme.Load(afero.NewOsFs(), path)
			if err != nil {
				return errors.Join(ErrLoadTheme, err)
			}

			th = loaded
		}

		opts := []ctxlog.Option{
			ctxlog.WithDestinationWriter(os.Stdout),
			ctxlog.WithTheme(th),
		}

		if con, ok := termhue.New(os.Stdout, cmd.Bool(colorFlag)); ok {
			signalbroker.Register(con)
			opts = append(opts, ctxlog.WithConsole(con))
		}

		logger := slog.New(ctxlog.NewPretty(&slog.HandlerOptions{
			Level: slog.LevelDebug,
		}, opts...))

		logger.Debug("resolving palette", "colors", len(termhue.Palette()))
		logger.Info("console attached", "term", os.Getenv("TERM"))
		logger.Warn("intensity toggled", "bright", true)
		logger.Error("synthetic failure", "error", "this is only a demo")

		return nil
	},
}
