package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/tin"
	"github.com/gogpu/tin/internal/config"
	"github.com/gogpu/tin/recording"
)

func TestParseConfigFlags(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseConfig([]string{
		"-renderer", "PDF", "-out", "x.pdf", "-frames", "3", "-width", "200", "-log-level", "debug",
	}, &stderr)
	if err != nil {
		t.Fatalf("parseConfig() error: %v", err)
	}
	if cfg.Render.Renderer != config.RendererPDF || cfg.Render.Output != "x.pdf" || cfg.Render.Frames != 3 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Window.Width != 200 || cfg.Window.Height != 480 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tin.toml")
	data := "[render]\nrenderer = \"recording\"\nframes = 9\n\n[window]\nfps = 24\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := parseConfig([]string{"-config", path, "-frames", "2"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseConfig() error: %v", err)
	}
	if cfg.Render.Renderer != config.RendererRecording || cfg.Render.Frames != 2 || cfg.Window.FPS != 24 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"help", []string{"-h"}, flag.ErrHelp},
		{"invalid renderer", []string{"-renderer", "opengl"}, config.ErrInvalid},
		{"pdf without out", []string{"-renderer", "pdf"}, config.ErrInvalid},
		{"watch without script", []string{"-watch"}, config.ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args, &bytes.Buffer{})
			if !errors.Is(err, tt.want) {
				t.Errorf("parseConfig(%v) = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestRunRaster(t *testing.T) {
	t.Cleanup(func() { tin.SetLogger(nil) })
	dir := filepath.Join(t.TempDir(), "frames")
	var stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-renderer", "raster", "-frames", "3", "-out", dir, "-width", "64", "-height", "48", "-seed", "1",
	}, &stderr)
	if err != nil {
		t.Fatalf("run() error: %v\n%s", err, stderr.String())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[0].Name() != "frame-00001.png" {
		t.Errorf("frames = %v, want 3 PNG files", entries)
	}
	if !strings.Contains(stderr.String(), "frames written") {
		t.Errorf("log output = %q", stderr.String())
	}
}

func TestRunPDFWithScript(t *testing.T) {
	t.Cleanup(func() { tin.SetLogger(nil) })
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.lua")
	src := `
function update()
  background(1)
  fill("#3366cc")
  rect(10, 10, 40, 20)
  text("frame " .. frame_count(), 10, 40)
end
`
	if err := os.WriteFile(scene, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.pdf")
	err := run(context.Background(), []string{
		"-renderer", "pdf", "-frames", "2", "-out", out, "-script", scene, "-log-level", "error",
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output starts with %q", data[:min(len(data), 8)])
	}
}

func TestRunRecording(t *testing.T) {
	t.Cleanup(func() { tin.SetLogger(nil) })
	db := filepath.Join(t.TempDir(), "frames.db")
	err := run(context.Background(), []string{
		"-renderer", "recording", "-frames", "4", "-out", db, "-log-format", "json",
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	ctx := context.Background()
	store, err := recording.Open(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("stored frames = %d, want 4", n)
	}
	f, err := store.Load(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	if f.Count(tin.CallEllipse) != 120 {
		t.Errorf("frame 4 ellipses = %d, want 120", f.Count(tin.CallEllipse))
	}
}

func TestRunCanceled(t *testing.T) {
	t.Cleanup(func() { tin.SetLogger(nil) })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stderr bytes.Buffer
	if err := run(ctx, []string{"-frames", "5"}, &stderr); err != nil {
		t.Fatalf("run() on canceled context = %v, want nil", err)
	}
	if !strings.Contains(stderr.String(), "interrupted") {
		t.Errorf("log output = %q", stderr.String())
	}
}

func TestParticlesEvents(t *testing.T) {
	rec := recording.NewRecorder()
	dc := tin.NewContext(tin.WithRenderer(rec))
	p := newParticles(dc, tin.NewFrame(100, 100), tin.Gray(1), 10)
	c := tin.NewController(tin.NewView(tin.WithFrame(tin.NewFrame(100, 100))), p, dc)

	c.Dispatch(tin.Event{Kind: tin.EventMouseDown, Point: tin.Pt(50, 50)})
	if len(p.items) != 22 {
		t.Fatalf("particles after click = %d, want 22", len(p.items))
	}
	c.Dispatch(tin.KeyEvent(tin.EventKeyDown, tin.KeySpace))
	if !p.paused {
		t.Error("space did not pause")
	}
	before := p.items[0].pos
	c.Step()
	if p.items[0].pos != before {
		t.Error("paused particles moved")
	}
	if got := rec.Last().Count(tin.CallText); got != 2 {
		t.Errorf("text calls while paused = %d, want 2", got)
	}
	c.Dispatch(tin.KeyEvent(tin.EventKeyDown, tin.KeyR))
	if len(p.items) != 10 {
		t.Errorf("particles after restart = %d, want 10", len(p.items))
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ v, size, want float64 }{
		{5, 10, 5},
		{12, 10, 2},
		{-3, 10, 7},
		{4, 0, 4},
	}
	for _, tt := range tests {
		if got := wrap(tt.v, tt.size); got != tt.want {
			t.Errorf("wrap(%g, %g) = %g, want %g", tt.v, tt.size, got, tt.want)
		}
	}
}
