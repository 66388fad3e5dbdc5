// Package config loads the settings of the tin command line tools.
//
// Settings start from Defaults, are overlaid by a YAML or TOML file chosen
// by extension, and finally by TIN_* environment variables. Environment
// variables are read-only overrides; Save never writes them back.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/tin"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Renderer names accepted by the demo.
const (
	RendererRaster    = "raster"
	RendererPDF       = "pdf"
	RendererEbiten    = "ebiten"
	RendererRecording = "recording"
)

type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	FPS    int    `yaml:"fps" toml:"fps"`
}

type RenderConfig struct {
	// Renderer is one of raster, pdf, ebiten or recording.
	Renderer string `yaml:"renderer" toml:"renderer"`
	// Frames is the number of frames headless renderers produce.
	Frames int `yaml:"frames" toml:"frames"`
	// Output is a directory for raster, a file for pdf and a database
	// for recording. Empty disables output for raster and recording.
	Output     string  `yaml:"output" toml:"output"`
	Background string  `yaml:"background" toml:"background"`
	LineWidth  float64 `yaml:"line_width" toml:"line_width"`
	Seed       uint64  `yaml:"seed" toml:"seed"`
}

type ScriptConfig struct {
	Path        string `yaml:"path" toml:"path"`
	Watch       bool   `yaml:"watch" toml:"watch"`
	DebounceMs  int    `yaml:"debounce_ms" toml:"debounce_ms"`
	CPULimit    uint64 `yaml:"cpu_limit" toml:"cpu_limit"`
	MemoryLimit uint64 `yaml:"memory_limit" toml:"memory_limit"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	Source bool   `yaml:"source" toml:"source"`
	File   string `yaml:"file" toml:"file"`
}

// Config is the full set of settings.
type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Render  RenderConfig  `yaml:"render" toml:"render"`
	Script  ScriptConfig  `yaml:"script" toml:"script"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// Defaults returns a 600x480 raster setup rendering 60 frames.
func Defaults() Config {
	return Config{
		Window: WindowConfig{
			Title:  "tin",
			Width:  tin.DefaultFrameWidth,
			Height: tin.DefaultFrameHeight,
			FPS:    tin.DefaultFPS,
		},
		Render: RenderConfig{
			Renderer:   RendererRaster,
			Frames:     60,
			Background: "#ffffff",
			LineWidth:  tin.DefaultLineWidth,
		},
		Script: ScriptConfig{
			DebounceMs:  250,
			CPULimit:    10_000_000,
			MemoryLimit: 50 << 20,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Env var names used as overrides.
const (
	EnvRenderer  = "TIN_RENDERER"
	EnvFrames    = "TIN_FRAMES"
	EnvOutput    = "TIN_OUT"
	EnvWidth     = "TIN_WIDTH"
	EnvHeight    = "TIN_HEIGHT"
	EnvFPS       = "TIN_FPS"
	EnvSeed      = "TIN_SEED"
	EnvScript    = "TIN_SCRIPT"
	EnvWatch     = "TIN_WATCH"
	EnvLogLevel  = "TIN_LOG_LEVEL"
	EnvLogFormat = "TIN_LOG_FORMAT"
	EnvLogSource = "TIN_LOG_SOURCE"
	EnvLogFile   = "TIN_LOG_FILE"
)

// Load returns the defaults overlaid by the file at path and then by the
// environment. An empty path skips the file; a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := Decode(path, data, &cfg); err != nil {
			return cfg, err
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Decode parses data onto cfg. The format follows the extension of name:
// .yaml and .yml for YAML, .toml for TOML. Unknown keys are rejected;
// keys absent from data keep their current values.
func Decode(name string, data []byte, cfg *Config) error {
	switch format(name) {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("config: %s: %w", filepath.Base(name), err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("config: %s: %w", filepath.Base(name), err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(name))
	}
	normalize(cfg)
	return nil
}

// Save writes cfg to path in the format given by its extension.
func Save(path string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func format(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}

func normalize(cfg *Config) {
	cfg.Render.Renderer = strings.ToLower(strings.TrimSpace(cfg.Render.Renderer))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
}

func applyEnvOverrides(cfg *Config) {
	if v := getenv(EnvRenderer); v != "" {
		cfg.Render.Renderer = strings.ToLower(v)
	}
	if n, ok := envInt(EnvFrames); ok {
		cfg.Render.Frames = n
	}
	if v := getenv(EnvOutput); v != "" {
		cfg.Render.Output = v
	}
	if n, ok := envInt(EnvWidth); ok {
		cfg.Window.Width = n
	}
	if n, ok := envInt(EnvHeight); ok {
		cfg.Window.Height = n
	}
	if n, ok := envInt(EnvFPS); ok {
		cfg.Window.FPS = n
	}
	if v := getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Render.Seed = n
		}
	}
	if v := getenv(EnvScript); v != "" {
		cfg.Script.Path = v
	}
	if v := getenv(EnvWatch); v != "" {
		cfg.Script.Watch = truthy(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := getenv(EnvLogSource); v != "" {
		cfg.Logging.Source = truthy(v)
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var overriding key, such as
// "render.frames", if it is set.
func EnvOverrideFor(key string) (string, bool) {
	names := map[string]string{
		"render.renderer": EnvRenderer,
		"render.frames":   EnvFrames,
		"render.output":   EnvOutput,
		"render.seed":     EnvSeed,
		"window.width":    EnvWidth,
		"window.height":   EnvHeight,
		"window.fps":      EnvFPS,
		"script.path":     EnvScript,
		"script.watch":    EnvWatch,
		"logging.level":   EnvLogLevel,
		"logging.format":  EnvLogFormat,
		"logging.source":  EnvLogSource,
		"logging.file":    EnvLogFile,
	}
	name, ok := names[key]
	if !ok || getenv(name) == "" {
		return "", false
	}
	return name, true
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string) (int, bool) {
	v := getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
