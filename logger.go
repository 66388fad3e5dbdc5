package tin

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled returns
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for tin and its sub-packages.
// By default tin produces no log output. Pass nil to restore silence.
//
// Log levels used by tin:
//   - [slog.LevelDebug]: frame lifecycle, renderer setup, script reloads
//   - [slog.LevelInfo]: backend selection, files written
//   - [slog.LevelWarn]: recoverable misuse such as PopState without PushState
//
// Example:
//
//	tin.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Backend packages call it so they
// share one configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
