// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-based logger that can be used to log
// messages with different log levels. It uses the slog package for
// structured logging. The log level is set based on the environment
// variable, which allows for dynamic configuration of the log level at
// runtime. The variable name for the log level is derived from the
// executable name. For example, if the executable is named "myapp", the
// environment variable for the log level would be "MYAPP_LOG_LEVEL".
//
// The package also provides PrettyHandler, a slog handler that writes
// human-readable log lines and colors each segment through a
// termhue.Console bound to the destination stream, so the same handler
// works on ANSI terminals and legacy Windows consoles alike.
package ctxlog
