package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gogpu/tin"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("config: invalid")

var (
	renderers  = []string{RendererRaster, RendererPDF, RendererEbiten, RendererRecording}
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"text", "json"}
)

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case !slices.Contains(renderers, c.Render.Renderer):
		return fmt.Errorf("%w: render.renderer %q, want one of %v", ErrInvalid, c.Render.Renderer, renderers)
	case c.Window.Width < 1 || c.Window.Height < 1:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPS < 1:
		return fmt.Errorf("%w: window.fps %d", ErrInvalid, c.Window.FPS)
	case c.Render.Frames < 0:
		return fmt.Errorf("%w: render.frames %d", ErrInvalid, c.Render.Frames)
	case c.Render.LineWidth < 0:
		return fmt.Errorf("%w: render.line_width %g", ErrInvalid, c.Render.LineWidth)
	case c.Render.Renderer == RendererPDF && c.Render.Output == "":
		return fmt.Errorf("%w: render.output is required for pdf", ErrInvalid)
	case c.Script.DebounceMs < 0:
		return fmt.Errorf("%w: script.debounce_ms %d", ErrInvalid, c.Script.DebounceMs)
	case c.Script.Watch && c.Script.Path == "":
		return fmt.Errorf("%w: script.watch needs script.path", ErrInvalid)
	case !slices.Contains(logLevels, c.Logging.Level):
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	case !slices.Contains(logFormats, c.Logging.Format):
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: render.background: %v", ErrInvalid, err)
	}
	return nil
}

// BackgroundColor parses Render.Background.
func (c Config) BackgroundColor() (tin.Color, error) {
	return tin.ParseHex(c.Render.Background)
}

// Frame returns the window size as a frame.
func (c Config) Frame() tin.Frame {
	return tin.NewFrame(c.Window.Width, c.Window.Height)
}

// View returns the window settings as a view.
func (c Config) View() tin.View {
	return tin.NewView(
		tin.WithTitle(c.Window.Title),
		tin.WithFrame(c.Frame()),
		tin.WithFPS(c.Window.FPS),
	)
}

// Debounce returns the script reload delay.
func (c ScriptConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
