// Package raster provides a software renderer that draws resolved tin
// primitives into an *image.RGBA.
//
// The logical space is y-up with the origin at the bottom-left corner;
// the renderer flips it onto image rows. Polygons are filled with
// golang.org/x/image/vector, images are scaled with golang.org/x/image/draw
// and text is drawn with package text.
//
// # Example
//
//	// Import to register the renderer
//	import _ "github.com/gogpu/tin/backends/raster"
//
//	dc := tin.NewContext(tin.WithRendererName("raster"))
//
//	// Or create directly
//	r := raster.New(raster.WithFrameHandler(raster.PNGSequence("out")))
//	dc := tin.NewContext(tin.WithRenderer(r))
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/gogpu/tin"
	"github.com/gogpu/tin/internal/geom"
	"github.com/gogpu/tin/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Hairline is the narrowest stroke or line drawn, in pixels.
const Hairline = 1.0

func init() {
	tin.RegisterRenderer("raster", func() tin.Renderer {
		return New()
	})
}

// FrameHandler receives the image after every finished frame. The image
// is reused for the next frame and must not be retained.
type FrameHandler func(frame uint64, img *image.RGBA) error

// Option configures a Renderer.
type Option func(*Renderer)

// WithFrameHandler calls h after every frame.
func WithFrameHandler(h FrameHandler) Option {
	return func(r *Renderer) { r.onFrame = h }
}

// Renderer draws into an image sized to the frame.
//
// Renderer is safe for concurrent use; drawing normally happens on the
// goroutine running ProcessDrawCalls.
type Renderer struct {
	mu      sync.Mutex
	img     *image.RGBA
	frame   tin.Frame
	frames  uint64
	ras     vector.Rasterizer
	path    []tin.Point
	onFrame FrameHandler
	resizes map[resizeKey]*tin.Image
	err     error
}

type resizeKey struct {
	img           *tin.Image
	width, height int
}

var _ tin.Renderer = (*Renderer)(nil)

// New creates a renderer. The image is allocated by Prepare.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prepare allocates a transparent image of the frame's size.
func (r *Renderer) Prepare(f tin.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frame = f
	r.img = image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	tin.Logger().Debug("raster: prepared", "width", f.Width, "height", f.Height)
}

// PrepareForUpdate keeps the previous frame's pixels; scenes clear with
// Background.
func (r *Renderer) PrepareForUpdate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureImage()
}

// DidFinishUpdate hands the finished frame to the frame handler. The
// first handler error is kept and reported by Err.
func (r *Renderer) DidFinishUpdate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames++
	if r.onFrame == nil {
		return
	}
	if err := r.onFrame(r.frames, r.img); err != nil {
		tin.Logger().Warn("raster: frame handler failed", "frame", r.frames, "error", err)
		if r.err == nil {
			r.err = err
		}
	}
}

// Background fills the whole image with c.
func (r *Renderer) Background(c tin.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureImage()
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// Rect paints the four corners of the resolved outline.
func (r *Renderer) Rect(pts []tin.Point, b tin.Brush, _ tin.DrawState) {
	r.paint(geom.Open(pts), true, b)
}

// Triangle paints the three vertices.
func (r *Renderer) Triangle(pts []tin.Point, b tin.Brush, _ tin.DrawState) {
	r.paint(pts, true, b)
}

// Line fills the resolved quad with the stroke color, or with the fill
// color when the brush does not stroke. Quads narrower than Hairline are
// widened.
func (r *Renderer) Line(pts []tin.Point, b tin.Brush, _ tin.DrawState) {
	c, ok := b.StrokeColor()
	if !ok {
		if c, ok = b.FillColor(); !ok {
			return
		}
	}
	if len(pts) < 4 {
		return
	}
	from, to := pts[0].Lerp(pts[1], 0.5), pts[2].Lerp(pts[3], 0.5)
	if from == to {
		return
	}
	quad := pts
	if pts[0].Distance(pts[1]) < Hairline {
		quad = tin.LineQuad(from, to, Hairline)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fill([][]tin.Point{geom.Quad(quad)}, c)
}

// Arc fills the pie wedge and strokes the curved edge.
func (r *Renderer) Arc(a tin.Arc, b tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := b.FillColor(); ok {
		r.fill([][]tin.Point{geom.Pie(a)}, c)
	}
	if c, ok := b.StrokeColor(); ok {
		r.fill(geom.Outline(geom.Arc(a), false, strokeWidth(b)), c)
	}
}

// Ellipse paints the ellipse inscribed in bounds, rotated by the state.
func (r *Renderer) Ellipse(bounds tin.Rect, b tin.Brush, s tin.DrawState) {
	pts := geom.Ellipse(bounds.Center(), bounds.Width/2, bounds.Height/2, s.Rotation)
	r.paint(pts, true, b)
}

// RoundedRect paints rr rotated by the state about its center.
func (r *Renderer) RoundedRect(rr tin.RoundedRect, b tin.Brush, s tin.DrawState) {
	r.paint(geom.RoundedRect(rr, s.Rotation), true, b)
}

// PathBegin discards any unfinished path.
func (r *Renderer) PathBegin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = r.path[:0]
}

// PathVertex appends p to the current path.
func (r *Renderer) PathVertex(p tin.Point, _ tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = append(r.path, p)
}

// PathAddCurve appends a cubic curve from the last vertex to to.
func (r *Renderer) PathAddCurve(to, c1, c2 tin.Point, _ tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.path) == 0 {
		r.path = append(r.path, to)
		return
	}
	from := r.path[len(r.path)-1]
	r.path = append(r.path, geom.Cubic(from, c1, c2, to, geom.Tolerance)...)
}

// PathEnd paints the current path as a closed polygon.
func (r *Renderer) PathEnd(b tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	pts := append([]tin.Point(nil), r.path...)
	r.path = r.path[:0]
	r.mu.Unlock()

	r.paint(pts, true, b)
}

// Image draws img into dst. Resize resamples with a linear filter before
// drawing; otherwise the image is stretched with nearest-neighbor
// sampling. The image is rotated by the state about dst's origin.
func (r *Renderer) Image(img *tin.Image, dst tin.Rect, resize bool, _ tin.Brush, s tin.DrawState) {
	if img == nil || dst.Width == 0 || dst.Height == 0 {
		return
	}

	var interp xdraw.Interpolator = xdraw.NearestNeighbor
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureImage()

	if resize {
		img = r.resized(img, int(math.Round(math.Abs(dst.Width))), int(math.Round(math.Abs(dst.Height))))
		interp = xdraw.ApproxBiLinear
	}
	src := img.Source()
	sw, sh := float64(img.Width()), float64(img.Height())
	sx, sy := dst.Width/sw, dst.Height/sh
	sin, cos := math.Sincos(s.Rotation)

	fh := float64(r.frame.Height)
	m := f64.Aff3{
		cos * sx, sin * sy, dst.X - sin*sy*sh,
		-sin * sx, cos * sy, fh - dst.Y - cos*sy*sh,
	}
	interp.Transform(r.img, m, src, src.Bounds(), xdraw.Over, nil)
}

// resized returns img resampled to width x height, reusing the copy made
// for an earlier frame. r.mu must be held.
func (r *Renderer) resized(img *tin.Image, width, height int) *tin.Image {
	key := resizeKey{img: img, width: width, height: height}
	if cached, ok := r.resizes[key]; ok {
		return cached
	}
	out := img.Resized(width, height)
	if r.resizes == nil {
		r.resizes = make(map[resizeKey]*tin.Image)
	}
	r.resizes[key] = out
	return out
}

// Text draws msg with its baseline origin at at. Text is painted with the
// fill color, or the stroke color when the brush does not fill. The font
// size follows the state's scale; rotation is ignored.
func (r *Renderer) Text(msg string, font tin.Font, at tin.Point, b tin.Brush, s tin.DrawState) {
	c, ok := b.FillColor()
	if !ok {
		if c, ok = b.StrokeColor(); !ok {
			return
		}
	}
	face := text.LookupOrDefault(font)
	size := s.ApplyLength(font.SizeOrDefault())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureImage()

	x, y := r.toPixel(at)
	if err := text.Draw(r.img, face, size, msg, float64(x), float64(y), c.NRGBA()); err != nil {
		tin.Logger().Warn("raster: draw text", "text", msg, "error", err)
	}
}

// PushState is a no-op; geometry arrives transformed.
func (r *Renderer) PushState() {}

// PopState is a no-op.
func (r *Renderer) PopState() {}

// paint fills and strokes the polygon pts according to b.
func (r *Renderer) paint(pts []tin.Point, closed bool, b tin.Brush) {
	if len(pts) < 2 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := b.FillColor(); ok && len(pts) >= 3 {
		r.fill([][]tin.Point{pts}, c)
	}
	if c, ok := b.StrokeColor(); ok {
		r.fill(geom.Outline(pts, closed, strokeWidth(b)), c)
	}
}

// fill rasterizes rings as one non-zero shape. r.mu must be held.
func (r *Renderer) fill(rings [][]tin.Point, c tin.Color) {
	if len(rings) == 0 || c.Alpha <= 0 {
		return
	}
	r.ensureImage()

	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		r.ras.MoveTo(r.toPixel(ring[0]))
		for _, p := range ring[1:] {
			r.ras.LineTo(r.toPixel(p))
		}
		r.ras.ClosePath()
	}
	r.ras.Draw(r.img, b, image.NewUniform(c.NRGBA()), image.Point{})
}

func (r *Renderer) toPixel(p tin.Point) (float32, float32) {
	return float32(p.X), float32(float64(r.frame.Height) - p.Y)
}

// ensureImage allocates a default-sized image when drawing starts before
// Prepare. r.mu must be held.
func (r *Renderer) ensureImage() {
	if r.img != nil {
		return
	}
	r.frame = tin.DefaultFrame()
	r.img = image.NewRGBA(image.Rect(0, 0, r.frame.Width, r.frame.Height))
}

func strokeWidth(b tin.Brush) float64 {
	return math.Max(b.Width, Hairline)
}

// Canvas returns the current image. It is drawn into by later frames.
func (r *Renderer) Canvas() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureImage()
	return r.img
}

// At returns the color of the pixel covering the logical point (x, y).
// Row 0 of the logical space is the bottom row of the image.
func (r *Renderer) At(x, y float64) color.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureImage()
	return r.img.RGBAAt(int(math.Floor(x)), r.frame.Height-1-int(math.Floor(y)))
}

// Frames returns the number of finished frames.
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Err returns the first frame handler error.
func (r *Renderer) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
