package pixgrid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so callers such as
// raster.Circle never build the attributes of a warning nobody will read.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current is read by the rasterizers, the canvas and every session.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the diagnostics of pixgrid, raster, canvas and session to
// l. A nil l silences them again, which is also the state at start-up.
//
// What gets logged:
//   - Debug: canvas creation and device mapping
//   - Info: each session command, with its parameters and plot count
//   - Warn: a negative circle radius, an unknown or malformed command
//
// The command-line tool installs a text handler on stderr:
//
//	pixgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//
// It may be called while other goroutines are drawing.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
