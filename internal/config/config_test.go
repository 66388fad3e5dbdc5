package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Render.Renderer != RendererRaster || cfg.Window.Width != 600 {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "tin.yaml", `
window:
  width: 320
render:
  renderer: PDF
  output: out.pdf
logging:
  level: " Debug "
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Width != 320 {
		t.Errorf("Window.Width = %d, want 320", cfg.Window.Width)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("Window.Height = %d, want default 480", cfg.Window.Height)
	}
	if cfg.Render.Renderer != RendererPDF {
		t.Errorf("Render.Renderer = %q, want %q", cfg.Render.Renderer, RendererPDF)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Render.Frames != 60 {
		t.Errorf("Render.Frames = %d, want default 60", cfg.Render.Frames)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "tin.toml", `
[render]
renderer = "recording"
frames = 5
seed = 42

[script]
path = "scene.lua"
watch = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Renderer != RendererRecording || cfg.Render.Frames != 5 || cfg.Render.Seed != 42 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Script.Path != "scene.lua" || !cfg.Script.Watch {
		t.Errorf("Script = %+v", cfg.Script)
	}
	if cfg.Script.CPULimit != 10_000_000 {
		t.Errorf("Script.CPULimit = %d, want default", cfg.Script.CPULimit)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unknown extension", "tin.json", `{}`, ErrUnsupportedFormat},
		{"unknown yaml key", "tin.yaml", "render:\n  colour: red\n", nil},
		{"unknown toml key", "tin.toml", "[render]\ncolour = \"red\"\n", nil},
		{"bad yaml", "tin.yml", "window: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestEmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("Load(empty) = %+v, want defaults", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvRenderer, "Ebiten")
	t.Setenv(EnvFrames, "12")
	t.Setenv(EnvWidth, "not a number")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvWatch, "yes")
	t.Setenv(EnvScript, "a.lua")
	t.Setenv(EnvLogFormat, "JSON")
	t.Setenv(EnvLogFile, "/tmp/tin.log")

	path := writeFile(t, "tin.yaml", "render:\n  frames: 3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Renderer != RendererEbiten {
		t.Errorf("Renderer = %q", cfg.Render.Renderer)
	}
	if cfg.Render.Frames != 12 {
		t.Errorf("Frames = %d, want env value 12 over file value 3", cfg.Render.Frames)
	}
	if cfg.Window.Width != 600 {
		t.Errorf("Width = %d, want default for unparsable env", cfg.Window.Width)
	}
	if cfg.Render.Seed != 7 || !cfg.Script.Watch || cfg.Script.Path != "a.lua" {
		t.Errorf("Render = %+v, Script = %+v", cfg.Render, cfg.Script)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.File != "/tmp/tin.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestEnvOverrideFor(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	if name, ok := EnvOverrideFor("logging.level"); !ok || name != EnvLogLevel {
		t.Errorf("EnvOverrideFor(logging.level) = %q, %v", name, ok)
	}
	if _, ok := EnvOverrideFor("render.frames"); ok {
		t.Error("EnvOverrideFor(render.frames) reported an unset variable")
	}
	if _, ok := EnvOverrideFor("bogus"); ok {
		t.Error("EnvOverrideFor(bogus) = true")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"cfg/tin.yaml", "cfg/tin.toml"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			want := Defaults()
			want.Render.Renderer = RendererPDF
			want.Render.Output = "frames.pdf"
			want.Script.Watch = true
			want.Script.Path = "s.lua"

			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, want); err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if got != want {
				t.Errorf("Load(Save(cfg)) = %+v, want %+v", got, want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown renderer", func(c *Config) { c.Render.Renderer = "opengl" }, false},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, false},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }, false},
		{"negative frames", func(c *Config) { c.Render.Frames = -1 }, false},
		{"negative line width", func(c *Config) { c.Render.LineWidth = -2 }, false},
		{"pdf without output", func(c *Config) { c.Render.Renderer = RendererPDF }, false},
		{"pdf with output", func(c *Config) {
			c.Render.Renderer = RendererPDF
			c.Render.Output = "a.pdf"
		}, true},
		{"watch without script", func(c *Config) { c.Script.Watch = true }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, false},
		{"warning level", func(c *Config) { c.Logging.Level = "warning" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, false},
		{"bad background", func(c *Config) { c.Render.Background = "#12" }, false},
		{"short background", func(c *Config) { c.Render.Background = "#abc" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestView(t *testing.T) {
	cfg := Defaults()
	cfg.Window.Title = "demo"
	cfg.Window.Width, cfg.Window.Height = 100, 50
	cfg.Window.FPS = 30
	v := cfg.View()
	if v.Title != "demo" || v.Frame.Width != 100 || v.Frame.Height != 50 || v.FPS != 30 {
		t.Errorf("View() = %+v", v)
	}
	if got := cfg.Script.Debounce().Milliseconds(); got != 250 {
		t.Errorf("Debounce() = %dms, want 250ms", got)
	}
}
