package pdf

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/tin"
)

func newPDFContext(t *testing.T, opts ...Option) (*tin.Context, *Renderer) {
	t.Helper()
	r := New(opts...)
	dc := tin.NewContext(tin.WithRenderer(r))
	dc.Prepare(tin.NewFrame(200, 100))
	return dc, r
}

func runFrame(dc *tin.Context, draw func()) {
	dc.PrepareForUpdate()
	dc.BackgroundGray(1)
	draw()
	dc.ProcessDrawCalls()
	dc.DidFinishUpdate()
}

func output(t *testing.T, r *Renderer) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Output(&buf); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	return buf.Bytes()
}

func TestRegistration(t *testing.T) {
	r, err := tin.NewRenderer("pdf")
	if err != nil {
		t.Fatalf("NewRenderer(pdf) error = %v", err)
	}
	if _, ok := r.(*Renderer); !ok {
		t.Fatalf("NewRenderer(pdf) = %T, want *pdf.Renderer", r)
	}
}

func TestOnePagePerFrame(t *testing.T) {
	dc, r := newPDFContext(t, WithTitle("pages"), WithAuthor("tin"))
	for range 3 {
		runFrame(dc, func() {
			dc.DrawRect(10, 10, 50, 30)
			dc.DrawLine(0, 0, 200, 100)
		})
	}
	if got := r.Pages(); got != 3 {
		t.Errorf("Pages() = %d, want 3", got)
	}

	data := output(t, r)
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output starts with %q, want %%PDF-", data[:min(8, len(data))])
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestOutputTwice(t *testing.T) {
	dc, r := newPDFContext(t)
	runFrame(dc, func() { dc.DrawEllipse(100, 50, 40, 20) })
	output(t, r)

	var buf bytes.Buffer
	if err := r.Output(&buf); !errors.Is(err, ErrClosed) {
		t.Errorf("second Output() error = %v, want ErrClosed", err)
	}

	// Frames after output are dropped without failing.
	runFrame(dc, func() { dc.DrawRect(0, 0, 10, 10) })
	if got := r.Pages(); got != 1 {
		t.Errorf("Pages() after close = %d, want 1", got)
	}
}

func TestOutputWithoutFrames(t *testing.T) {
	r := New()
	data := output(t, r)
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("empty document is not a PDF")
	}
	if got := r.Pages(); got != 1 {
		t.Errorf("Pages() = %d, want a single blank page", got)
	}
}

func TestOutputFile(t *testing.T) {
	dc, r := newPDFContext(t, WithCompression(false))
	runFrame(dc, func() {
		dc.Rotate(math.Pi / 8)
		dc.DrawRoundedRect(tin.Rect{X: 20, Y: 20, Width: 80, Height: 40}, 8, 8)
		dc.DrawArc(150, 50, 30, 0, math.Pi)
		dc.DrawTriangle(0, 0, 20, 0, 10, 20)
	})

	path := filepath.Join(t.TempDir(), "nested", "out.pdf")
	if err := r.OutputFile(path); err != nil {
		t.Fatalf("OutputFile() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestPath(t *testing.T) {
	dc, r := newPDFContext(t)
	runFrame(dc, func() {
		dc.StrokeEnable()
		dc.PathBegin()
		dc.PathVertex(10, 10)
		dc.PathVertex(60, 10)
		dc.PathAddCurve(tin.Pt(60, 60), tin.Pt(80, 20), tin.Pt(80, 50))
		dc.PathEnd()
	})
	output(t, r)
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestImageEmbeddedOnce(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	src.Set(1, 1, color.RGBA{255, 0, 0, 255})
	img := tin.NewImage(src)

	dc, r := newPDFContext(t)
	runFrame(dc, func() {
		dc.DrawImage(img, 10, 10)
		dc.DrawImageWithSize(img, 50, 10, 40, 40)
		dc.DrawImageWithSizeAndResize(img, 100, 10, 20, 20, true)
		dc.DrawImageWithSizeAndResize(img, 130, 10, 20, 20, true)
	})
	if got := len(r.images); got != 2 {
		t.Errorf("embedded %d images, want 2 (original and one resized)", got)
	}
	output(t, r)
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestText(t *testing.T) {
	dc, r := newPDFContext(t)
	runFrame(dc, func() {
		dc.DrawText("hello, tin", tin.Font{}, 10, 50)
		dc.Rotate(math.Pi / 4)
		dc.DrawText("rotated", tin.Font{Size: 24}, 100, 50)
	})
	data := output(t, r)
	if len(data) == 0 {
		t.Fatal("empty output")
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestMissingFontFallsBack(t *testing.T) {
	dc, r := newPDFContext(t)
	font := tin.Font{Name: filepath.Join(t.TempDir(), "missing.ttf")}
	runFrame(dc, func() {
		dc.DrawText("fallback", font, 10, 50)
		dc.DrawText("again", font, 10, 20)
	})
	if got := r.fonts[font.Name]; got != defaultFamily {
		t.Errorf("family for missing font = %q, want %q", got, defaultFamily)
	}
	output(t, r)
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestPrepareResetsDocument(t *testing.T) {
	dc, r := newPDFContext(t)
	runFrame(dc, func() {})
	runFrame(dc, func() {})
	dc.Prepare(tin.NewFrame(50, 50))
	if got := r.Pages(); got != 0 {
		t.Errorf("Pages() after Prepare = %d, want 0", got)
	}
	if got := r.pageSize(); got.Wd != 50 || got.Ht != 50 {
		t.Errorf("page size = %v, want 50x50", got)
	}
}
