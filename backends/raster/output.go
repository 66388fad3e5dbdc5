package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// WriteTo writes the current image as PNG to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureImage()

	cw := &countingWriter{w: w}
	err := png.Encode(cw, r.img)
	return cw.n, err
}

// SavePNG writes the current image as PNG to path.
func (r *Renderer) SavePNG(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureImage()
	return savePNG(path, r.img)
}

// PNGSequence returns a FrameHandler writing every frame to
// dir/frame-00001.png, dir/frame-00002.png and so on.
func PNGSequence(dir string) FrameHandler {
	return func(frame uint64, img *image.RGBA) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("raster: %w", err)
		}
		return savePNG(filepath.Join(dir, fmt.Sprintf("frame-%05d.png", frame)), img)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: save png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
