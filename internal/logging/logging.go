// Package logging holds the logger shared by every canvas package.
//
// By default nothing is logged. The root package exposes SetLogger so that
// applications can opt in; sub-packages read the logger through L so they
// never import the root package.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNop() *slog.Logger { return slog.New(nopHandler{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNop())
}

// Set replaces the shared logger. A nil logger restores silence.
func Set(l *slog.Logger) {
	if l == nil {
		l = newNop()
	}
	current.Store(l)
}

// L returns the shared logger. It is safe for concurrent use.
func L() *slog.Logger {
	return current.Load()
}
