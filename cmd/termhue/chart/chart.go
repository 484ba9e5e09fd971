// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/termhue"
	"github.com/matt-FFFFFF/termhue/internal/ctxlog"
	"github.com/matt-FFFFFF/termhue/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

const (
	colorFlag = "color"
)

// ChartCmd is the command that prints the sixteen color palette.
var ChartCmd = &cli.Command{
	Name:        "chart",
	Description: "Print the sixteen color palette, then a bright toggle row.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        colorFlag,
			Usage:       "Force color output even when stdout is not a terminal",
			Value:       false,
			DefaultText: "false",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		con, ok := termhue.New(os.Stdout, cmd.Bool(colorFlag))
		if !ok {
			ctxlog.Debug(ctx, "chart", "detail", "stdout is not color capable, printing plain")
		} else {
			signalbroker.Register(con)
		}

		for _, c := range termhue.Palette() {
			fmt.Printf("%2d ", uint8(c))

			if ok {
				con.SetColor(c)
			}

			fmt.Print(c)

			if ok {
				con.ResetColor()
			}

			fmt.Println()
		}

		if !ok {
			return nil
		}

		// Bright toggling preserves the hue.
		con.SetColor(termhue.Red)
		fmt.Print("red")
		con.SetColorBright(true)
		fmt.Print(" bright red")
		con.SetColorBright(false)
		fmt.Print(" red again")
		con.ResetColor()
		fmt.Println()

		return nil
	},
}
