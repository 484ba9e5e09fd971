// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package theme assigns palette colors to the parts of a pretty log line.
// Themes are loaded from a small YAML file; fields left empty keep their
// default color, and every unknown color name is reported, not just the
// first one.
package theme

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/termhue"
	"github.com/spf13/afero"
)

var (
	// ErrReadTheme is returned when the theme file cannot be read.
	ErrReadTheme = errors.New("failed to read theme file")
	// ErrInvalidYaml is returned when the theme file is not valid YAML.
	ErrInvalidYaml = errors.New("invalid YAML")
)

// Theme maps the segments of a log line to palette colors.
type Theme struct {
	Timestamp termhue.Color
	Message   termhue.Color
	Attrs     termhue.Color
	Debug     termhue.Color
	Info      termhue.Color
	Warn      termhue.Color
	Error     termhue.Color
	Fatal     termhue.Color
}

// Level returns the color for a record level.
func (t *Theme) Level(l slog.Level) termhue.Color {
	switch {
	case l <= slog.LevelDebug:
		return t.Debug
	case l <= slog.LevelInfo:
		return t.Info
	case l < slog.LevelError:
		return t.Warn
	case l <= slog.LevelError+1:
		return t.Error
	default: // l > slog.LevelError+1
		return t.Fatal
	}
}

// Default returns the stock theme.
func Default() *Theme {
	return &Theme{
		Timestamp: termhue.DarkGray,
		Message:   termhue.White,
		Attrs:     termhue.LightGray,
		Debug:     termhue.LightGray,
		Info:      termhue.Cyan,
		Warn:      termhue.BrightYellow,
		Error:     termhue.BrightRed,
		Fatal:     termhue.BrightMagenta,
	}
}

// fileFormat is the YAML shape of a theme file. Values are palette color
// names as accepted by termhue.ParseColor.
type fileFormat struct {
	Timestamp string `yaml:"timestamp"`
	Message   string `yaml:"message"`
	Attrs     string `yaml:"attrs"`
	Debug     string `yaml:"debug"`
	Info      string `yaml:"info"`
	Warn      string `yaml:"warn"`
	Error     string `yaml:"error"`
	Fatal     string `yaml:"fatal"`
}

// Load reads a theme from path on fsys, starting from the defaults.
func Load(fsys afero.Fs, path string) (*Theme, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadTheme, err)
	}

	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	t := Default()

	var errs *multierror.Error

	set := func(dst *termhue.Color, name string) {
		if name == "" {
			return
		}

		c, err := termhue.ParseColor(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			return
		}

		*dst = c
	}

	set(&t.Timestamp, ff.Timestamp)
	set(&t.Message, ff.Message)
	set(&t.Attrs, ff.Attrs)
	set(&t.Debug, ff.Debug)
	set(&t.Info, ff.Info)
	set(&t.Warn, ff.Warn)
	set(&t.Error, ff.Error)
	set(&t.Fatal, ff.Fatal)

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return t, nil
}
