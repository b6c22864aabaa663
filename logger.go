// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/canvas/internal/logging"
)

// SetLogger configures the logger for canvas and all its sub-packages.
// By default nothing is logged. Pass nil to restore silence.
//
// The logger is also handed to gg, which rasterizes scene frames.
//
// Log levels used by canvas:
//   - [slog.LevelDebug]: skipped frames, missing surfaces, dropped primitives
//   - [slog.LevelWarn]: non-fatal backend failures
//
// Example:
//
//	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	gg.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.L()
}
