// Package logging builds the slog logger used by the tin command line
// tools and installs it with tin.SetLogger.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/tin"
	"github.com/gogpu/tin/internal/config"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the logger. Console output goes to Stderr in the given
// Format ("text" or "json"). When File is set, records are also written as
// JSON to that file, rotated by size.
type Options struct {
	Level     string
	Format    string
	AddSource bool
	File      string

	// Stderr replaces os.Stderr for console output.
	Stderr io.Writer
}

// FromConfig converts the logging section of a config.
func FromConfig(c config.LoggingConfig) Options {
	return Options{Level: c.Level, Format: c.Format, AddSource: c.Source, File: c.File}
}

// New builds a logger. The returned closer flushes and closes the log
// file, if any.
func New(opts Options) (*slog.Logger, io.Closer) {
	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level), AddSource: opts.AddSource}

	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}
	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(w, hopts)
	} else {
		console = slog.NewTextHandler(w, hopts)
	}

	file := strings.TrimSpace(opts.File)
	if file == "" {
		return slog.New(console), nopCloser{}
	}
	rot := &lj.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
	h := multiHandler(console, slog.NewJSONHandler(rot, hopts))
	return slog.New(h), rot
}

// Install builds a logger from opts and makes it the logger of tin and
// of slog.Default.
func Install(opts Options) (*slog.Logger, io.Closer) {
	l, closer := New(opts)
	tin.SetLogger(l)
	slog.SetDefault(l)
	return l, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler fans out records to every handler.
func multiHandler(handlers ...slog.Handler) slog.Handler { return &multi{hs: handlers} }

type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
