// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/termhue"
	"github.com/matt-FFFFFF/termhue/internal/theme"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

const (
	// TimeFormat is the format used for timestamps in log messages.
	TimeFormat = "[15:04:05.000]"
)

// PrettyHandler is a custom slog handler that formats log messages to the
// console in a pretty way. When a console is attached, each segment of the
// line is written between SetColor and ResetColor calls, so coloring works
// on any stream the termhue factory accepted.
type PrettyHandler struct {
	h                slog.Handler
	r                func([]string, slog.Attr) slog.Attr
	b                *bytes.Buffer
	m                *sync.Mutex
	writer           io.Writer
	con              termhue.Console
	theme            *theme.Theme
	json             *colorjson.Formatter
	outputEmptyAttrs bool
}

// segment is one colorable span of a log line.
type segment struct {
	text  string
	color termhue.Color
}

// Enabled checks if the handler is enabled for the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		h:                h.h.WithAttrs(attrs),
		r:                h.r,
		b:                h.b,
		m:                h.m,
		writer:           h.writer,
		con:              h.con,
		theme:            h.theme,
		json:             h.json,
		outputEmptyAttrs: h.outputEmptyAttrs,
	}
}

// WithGroup creates a new handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		h:                h.h.WithGroup(name),
		r:                h.r,
		b:                h.b,
		m:                h.m,
		writer:           h.writer,
		con:              h.con,
		theme:            h.theme,
		json:             h.json,
		outputEmptyAttrs: h.outputEmptyAttrs,
	}
}

func (h *PrettyHandler) computeAttrs(
	ctx context.Context,
	r slog.Record,
) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	err := json.Unmarshal(h.b.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	var level string

	levelAttr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	}
	if h.r != nil {
		levelAttr = h.r([]string{}, levelAttr)
	}

	if !levelAttr.Equal(slog.Attr{}) {
		level = levelAttr.Value.String() + ":"
	}

	var timestamp string

	timeAttr := slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.StringValue(r.Time.Format(TimeFormat)),
	}
	if h.r != nil {
		timeAttr = h.r([]string{}, timeAttr)
	}

	if !timeAttr.Equal(slog.Attr{}) {
		timestamp = timeAttr.Value.String()
	}

	var msg string

	msgAttr := slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	}
	if h.r != nil {
		msgAttr = h.r([]string{}, msgAttr)
	}

	if !msgAttr.Equal(slog.Attr{}) {
		msg = msgAttr.Value.String()
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte

	if h.outputEmptyAttrs || len(attrs) > 0 {
		attrsAsBytes, err = h.json.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}
	}

	return h.write(
		segment{timestamp, h.theme.Timestamp},
		segment{level, h.theme.Level(r.Level)},
		segment{msg, h.theme.Message},
		segment{string(attrsAsBytes), h.theme.Attrs},
	)
}

// write emits the segments separated by spaces, coloring each through the
// attached console. The reset after every segment keeps the stream at its
// baseline between writes, so an interrupted line never stains the terminal.
func (h *PrettyHandler) write(segments ...segment) error {
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		if h.con != nil {
			h.con.SetColor(seg.color)
		}

		_, err := io.WriteString(h.writer, seg.text)

		if h.con != nil {
			h.con.ResetColor()
		}

		if err != nil {
			return errors.Join(ErrIoWrite, err)
		}

		if _, err := io.WriteString(h.writer, " "); err != nil {
			return errors.Join(ErrIoWrite, err)
		}
	}

	if _, err := io.WriteString(h.writer, "\n"); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// NewPretty creates a new PrettyHandler with the given options.
func NewPretty(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &PrettyHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r:      handlerOptions.ReplaceAttr,
		m:      &sync.Mutex{},
		writer: os.Stdout,
		theme:  theme.Default(),
	}

	for _, opt := range options {
		opt(handler)
	}

	handler.json = colorjson.NewFormatter()
	handler.json.Indent = 2
	handler.json.DisabledColor = handler.con == nil

	return handler
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithConsole colors output through the given console. The console must be
// bound to the same unbuffered stream as the destination writer, otherwise
// escape sequences and text arrive out of order.
func WithConsole(con termhue.Console) Option {
	return func(h *PrettyHandler) {
		h.con = con
	}
}

// WithAutoColor attaches a console when the destination writer is a
// color-capable terminal. Set the destination writer first.
func WithAutoColor() Option {
	return func(h *PrettyHandler) {
		f, ok := h.writer.(*os.File)
		if !ok {
			return
		}

		if con, ok := termhue.New(f, false); ok {
			h.con = con
		}
	}
}

// WithTheme sets the segment colors for the PrettyHandler.
func WithTheme(t *theme.Theme) Option {
	return func(h *PrettyHandler) {
		h.theme = t
	}
}

// WithOutputEmptyAttrs enables output of empty attributes for the PrettyHandler.
func WithOutputEmptyAttrs() Option {
	return func(h *PrettyHandler) {
		h.outputEmptyAttrs = true
	}
}
