package main

import (
	"context"
	"fmt"

	"github.com/gogpu/tin"
	"github.com/gogpu/tin/backends/ebiten"
	"github.com/gogpu/tin/backends/pdf"
	"github.com/gogpu/tin/backends/raster"
	"github.com/gogpu/tin/internal/config"
	"github.com/gogpu/tin/recording"
	"github.com/gogpu/tin/script"
)

// render builds the renderer and scene described by cfg and runs them to
// completion.
func render(ctx context.Context, cfg config.Config) error {
	if cfg.Render.Seed != 0 {
		tin.Seed(cfg.Render.Seed)
	}
	switch cfg.Render.Renderer {
	case config.RendererRaster:
		return renderRaster(ctx, cfg)
	case config.RendererPDF:
		return renderPDF(ctx, cfg)
	case config.RendererRecording:
		return renderRecording(ctx, cfg)
	case config.RendererEbiten:
		return renderWindow(ctx, cfg)
	}
	return fmt.Errorf("%w %q", tin.ErrUnknownRenderer, cfg.Render.Renderer)
}

func renderRaster(ctx context.Context, cfg config.Config) error {
	var opts []raster.Option
	if cfg.Render.Output != "" {
		opts = append(opts, raster.WithFrameHandler(raster.PNGSequence(cfg.Render.Output)))
	}
	r := raster.New(opts...)
	if err := runHeadless(ctx, cfg, r); err != nil {
		return err
	}
	if err := r.Err(); err != nil {
		return err
	}
	tin.Logger().Info("tindemo: frames written", "frames", r.Frames(), "dir", cfg.Render.Output)
	return nil
}

func renderPDF(ctx context.Context, cfg config.Config) error {
	r := pdf.New(pdf.WithTitle(cfg.Window.Title), pdf.WithAuthor("tindemo"))
	if err := runHeadless(ctx, cfg, r); err != nil {
		return err
	}
	if err := r.OutputFile(cfg.Render.Output); err != nil {
		return err
	}
	tin.Logger().Info("tindemo: pdf written", "pages", r.Pages(), "file", cfg.Render.Output)
	return nil
}

func renderRecording(ctx context.Context, cfg config.Config) error {
	var opts []recording.Option
	if cfg.Render.Output != "" {
		store, err := recording.Open(ctx, cfg.Render.Output)
		if err != nil {
			return err
		}
		defer store.Close()
		// The store holds every frame; memory keeps only the latest.
		opts = append(opts, recording.WithStore(store), recording.WithLimit(1))
	}
	rec := recording.NewRecorder(opts...)
	if err := runHeadless(ctx, cfg, rec); err != nil {
		return err
	}
	if err := rec.Err(); err != nil {
		return err
	}
	if last := rec.Last(); last != nil {
		tin.Logger().Info("tindemo: recorded",
			"frames", last.Number,
			"primitives", len(last.Primitives),
			"store", cfg.Render.Output,
		)
	}
	return nil
}

func renderWindow(ctx context.Context, cfg config.Config) error {
	c, closeScene, err := newController(ctx, cfg, ebiten.New())
	if err != nil {
		return err
	}
	defer closeScene()
	return ebiten.Run(ctx, c)
}

// runHeadless renders cfg.Render.Frames frames into r as fast as possible.
func runHeadless(ctx context.Context, cfg config.Config, r tin.Renderer) error {
	c, closeScene, err := newController(ctx, cfg, r)
	if err != nil {
		return err
	}
	defer closeScene()
	return c.RunFrames(cfg.Render.Frames, func(uint64) error {
		return ctx.Err()
	})
}

// newController wires the scene to a fresh context drawing into r. The
// returned func releases the scene and stops the file watcher.
func newController(ctx context.Context, cfg config.Config, r tin.Renderer) (*tin.Controller, func(), error) {
	dc := tin.NewContext(tin.WithRenderer(r), tin.WithLineWidth(cfg.Render.LineWidth))
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Script.Path == "" {
		scene := newParticles(dc, cfg.Frame(), bg, 120)
		return tin.NewController(cfg.View(), scene, dc), func() {}, nil
	}

	scene, err := script.Load(cfg.Script.Path, dc, script.WithConfig(script.Config{
		CPULimit:    cfg.Script.CPULimit,
		MemoryLimit: cfg.Script.MemoryLimit,
	}))
	if err != nil {
		return nil, nil, err
	}
	wctx, cancel := context.WithCancel(ctx)
	if cfg.Script.Watch {
		go func() {
			if err := scene.Watch(wctx, cfg.Script.Debounce()); err != nil && wctx.Err() == nil {
				tin.Logger().Warn("tindemo: watcher stopped", "error", err)
			}
		}()
	}
	return tin.NewController(cfg.View(), scene, dc), func() {
		cancel()
		scene.Close()
	}, nil
}
