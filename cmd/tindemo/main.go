// Command tindemo runs a tin scene with one of the built-in renderers.
//
// Without -script it animates a particle field. With -script it runs a Lua
// scene, optionally reloading it whenever the file changes:
//
//	tindemo -renderer raster -frames 30 -out frames/
//	tindemo -renderer pdf -out sketch.pdf -script sketch.lua
//	tindemo -renderer ebiten -script sketch.lua -watch
//	tindemo -renderer recording -out frames.db
//
// Settings come from -config (YAML or TOML), then TIN_* environment
// variables, then flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/tin/internal/config"
	"github.com/gogpu/tin/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "tindemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	opts := logging.FromConfig(cfg.Logging)
	opts.Stderr = stderr
	log, closer := logging.Install(opts)
	defer closer.Close()

	log.Info("tindemo: starting",
		"renderer", cfg.Render.Renderer,
		"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"script", cfg.Script.Path,
	)
	if err := render(ctx, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("tindemo: interrupted")
			return nil
		}
		return err
	}
	return nil
}

// parseConfig loads the config file named by -config and applies the
// flags that were set explicitly.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("tindemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		path     = fs.String("config", "", "YAML or TOML config file")
		renderer = fs.String("renderer", "", "raster, pdf, ebiten or recording")
		frames   = fs.Int("frames", 0, "frames to render with headless renderers")
		out      = fs.String("out", "", "PNG directory, PDF file or recording database")
		script   = fs.String("script", "", "Lua scene file")
		watch    = fs.Bool("watch", false, "reload the Lua scene when it changes")
		width    = fs.Int("width", 0, "frame width")
		height   = fs.Int("height", 0, "frame height")
		fps      = fs.Int("fps", 0, "frames per second")
		seed     = fs.Uint64("seed", 0, "random seed")
		level    = fs.String("log-level", "", "debug, info, warn or error")
		format   = fs.String("log-format", "", "text or json")
		logFile  = fs.String("log-file", "", "also log JSON to this rotated file")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			cfg.Render.Renderer = strings.ToLower(*renderer)
		case "frames":
			cfg.Render.Frames = *frames
		case "out":
			cfg.Render.Output = *out
		case "script":
			cfg.Script.Path = *script
		case "watch":
			cfg.Script.Watch = *watch
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "fps":
			cfg.Window.FPS = *fps
		case "seed":
			cfg.Render.Seed = *seed
		case "log-level":
			cfg.Logging.Level = *level
		case "log-format":
			cfg.Logging.Format = *format
		case "log-file":
			cfg.Logging.File = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
