// Package ebiten provides a windowed renderer built on Ebitengine.
//
// The Renderer records the resolved primitives of a frame as a display
// list. When the frame finishes, the list is handed to the game loop,
// which replays it onto an offscreen canvas with ebiten/vector and
// DrawTriangles. Pixels persist between frames, so scenes clear the
// canvas with Background.
//
//	r := ebiten.New()
//	dc := tin.NewContext(tin.WithRenderer(r))
//	c := tin.NewController(tin.NewView(tin.WithTitle("demo")), scene, dc)
//	err := ebiten.Run(ctx, c)
package ebiten

import (
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/tin"
	"github.com/gogpu/tin/internal/geom"
	"github.com/gogpu/tin/text"
	"github.com/hajimehoshi/ebiten/v2"
)

// Hairline is the narrowest stroke or line drawn, in pixels.
const Hairline = 1.0

// Texture cache limits.
const (
	maxImages = 64
	maxTexts  = 256
)

func init() {
	tin.RegisterRenderer("ebiten", func() tin.Renderer {
		return New()
	})
}

type opKind uint8

const (
	opClear opKind = iota
	opFill
	opStroke
	opImage
	opText
)

// op is one entry of the display list. Points are in canvas pixels with
// y growing downwards.
type op struct {
	kind   opKind
	color  tin.Color
	rings  [][]tin.Point
	closed bool
	width  float64
	image  *tin.Image
	geoM   ebiten.GeoM
	filter ebiten.Filter
	text   textKey
}

type textKey struct {
	msg  string
	face *text.Face
	size float64
	col  color.NRGBA
}

// Renderer records frames for the game loop. It is safe for concurrent
// use.
type Renderer struct {
	mu      sync.Mutex
	frame   tin.Frame
	pending []op
	ready   []op
	path    []tin.Point
	frames  uint64
	dirty   bool

	canvas   *ebiten.Image
	images   *text.Cache[*tin.Image, *ebiten.Image]
	textures *text.Cache[textKey, *ebiten.Image]
}

var _ tin.Renderer = (*Renderer)(nil)

// New creates a renderer for the default frame.
func New() *Renderer {
	return &Renderer{
		frame: tin.DefaultFrame(),
		images: text.NewCache(maxImages, func(_ *tin.Image, img *ebiten.Image) {
			img.Deallocate()
		}),
		textures: text.NewCache(maxTexts, func(_ textKey, img *ebiten.Image) {
			img.Deallocate()
		}),
	}
}

// Prepare sizes the canvas to f.
func (r *Renderer) Prepare(f tin.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frame = f
	r.pending = r.pending[:0]
	tin.Logger().Debug("ebiten: prepared", "width", f.Width, "height", f.Height)
}

// PrepareForUpdate starts an empty display list.
func (r *Renderer) PrepareForUpdate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = r.pending[:0]
}

// DidFinishUpdate publishes the frame's display list to Draw.
func (r *Renderer) DidFinishUpdate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ready, r.pending = r.pending, r.ready[:0]
	r.frames++
	r.dirty = true
}

// Background clears the canvas to c.
func (r *Renderer) Background(c tin.Color) {
	r.record(op{kind: opClear, color: c})
}

// Rect paints the four resolved corners.
func (r *Renderer) Rect(pts []tin.Point, b tin.Brush, _ tin.DrawState) {
	r.paint(geom.Open(pts), b)
}

// Triangle paints the three vertices.
func (r *Renderer) Triangle(pts []tin.Point, b tin.Brush, _ tin.DrawState) {
	r.paint(pts, b)
}

// Line fills the resolved quad with the stroke color, or with the fill
// color when the brush does not stroke.
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
	if pts[0].Distance(pts[1]) < Hairline {
		pts = tin.LineQuad(from, to, Hairline)
	}
	r.record(op{kind: opFill, color: c, rings: [][]tin.Point{r.pixels(geom.Quad(pts))}})
}

// Arc fills the pie wedge and strokes the curved edge.
func (r *Renderer) Arc(a tin.Arc, b tin.Brush, _ tin.DrawState) {
	if c, ok := b.FillColor(); ok {
		r.record(op{kind: opFill, color: c, rings: [][]tin.Point{r.pixels(geom.Pie(a))}})
	}
	if c, ok := b.StrokeColor(); ok {
		r.record(op{kind: opStroke, color: c, rings: [][]tin.Point{r.pixels(geom.Arc(a))}, width: strokeWidth(b)})
	}
}

// Ellipse paints the ellipse inscribed in bounds, rotated by the state.
func (r *Renderer) Ellipse(bounds tin.Rect, b tin.Brush, s tin.DrawState) {
	r.paint(geom.Ellipse(bounds.Center(), bounds.Width/2, bounds.Height/2, s.Rotation), b)
}

// RoundedRect paints rr rotated by the state about its center.
func (r *Renderer) RoundedRect(rr tin.RoundedRect, b tin.Brush, s tin.DrawState) {
	r.paint(geom.RoundedRect(rr, s.Rotation), b)
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

// PathAddCurve appends a flattened cubic curve ending at to.
func (r *Renderer) PathAddCurve(to, c1, c2 tin.Point, _ tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.path) == 0 {
		r.path = append(r.path, to)
		return
	}
	r.path = append(r.path, geom.Cubic(r.path[len(r.path)-1], c1, c2, to, geom.Tolerance)...)
}

// PathEnd paints the current path closed.
func (r *Renderer) PathEnd(b tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	pts := append([]tin.Point(nil), r.path...)
	r.path = r.path[:0]
	r.mu.Unlock()

	r.paint(pts, b)
}

// Image draws img into dst, rotated by the state about dst's origin.
// Resize samples linearly; otherwise pixels are stretched.
func (r *Renderer) Image(img *tin.Image, dst tin.Rect, resize bool, _ tin.Brush, s tin.DrawState) {
	if img == nil || dst.Width == 0 || dst.Height == 0 {
		return
	}

	var m ebiten.GeoM
	m.Scale(dst.Width/float64(img.Width()), dst.Height/float64(img.Height()))
	m.Translate(0, -dst.Height)
	m.Rotate(-s.Rotation)
	origin := r.pixel(tin.Pt(dst.X, dst.Y))
	m.Translate(origin.X, origin.Y)

	filter := ebiten.FilterNearest
	if resize {
		filter = ebiten.FilterLinear
	}
	r.record(op{kind: opImage, image: img, geoM: m, filter: filter})
}

// Text draws msg with its baseline origin at at, in the fill color or
// the stroke color when the brush does not fill. Rotation is ignored.
func (r *Renderer) Text(msg string, font tin.Font, at tin.Point, b tin.Brush, s tin.DrawState) {
	c, ok := b.FillColor()
	if !ok {
		if c, ok = b.StrokeColor(); !ok {
			return
		}
	}
	if msg == "" {
		return
	}
	key := textKey{
		msg:  msg,
		face: text.LookupOrDefault(font),
		size: s.ApplyLength(font.SizeOrDefault()),
		col:  c.NRGBA(),
	}
	var m ebiten.GeoM
	p := r.pixel(at)
	m.Translate(p.X, p.Y)
	r.record(op{kind: opText, text: key, geoM: m})
}

// PushState is a no-op; geometry arrives transformed.
func (r *Renderer) PushState() {}

// PopState is a no-op.
func (r *Renderer) PopState() {}

func (r *Renderer) paint(pts []tin.Point, b tin.Brush) {
	if len(pts) < 2 {
		return
	}
	px := r.pixels(pts)
	if c, ok := b.FillColor(); ok && len(pts) >= 3 {
		r.record(op{kind: opFill, color: c, rings: [][]tin.Point{px}})
	}
	if c, ok := b.StrokeColor(); ok {
		r.record(op{kind: opStroke, color: c, rings: [][]tin.Point{px}, closed: true, width: strokeWidth(b)})
	}
}

func (r *Renderer) record(o op) {
	if (o.kind == opFill || o.kind == opStroke) && o.color.Alpha <= 0 {
		return
	}
	r.mu.Lock()
	r.pending = append(r.pending, o)
	r.mu.Unlock()
}

func (r *Renderer) pixel(p tin.Point) tin.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tin.Pt(p.X, float64(r.frame.Height)-p.Y)
}

func (r *Renderer) pixels(pts []tin.Point) []tin.Point {
	r.mu.Lock()
	h := float64(r.frame.Height)
	r.mu.Unlock()

	out := make([]tin.Point, len(pts))
	for i, p := range pts {
		out[i] = tin.Pt(p.X, h-p.Y)
	}
	return out
}

func strokeWidth(b tin.Brush) float64 {
	return math.Max(b.Width, Hairline)
}

// Frame returns the canvas size.
func (r *Renderer) Frame() tin.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

// Frames returns the number of finished frames.
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}
