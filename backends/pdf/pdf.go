// Package pdf provides a renderer that exports every frame as one page of
// a PDF document, using github.com/jung-kurt/gofpdf.
//
// Units are points, one point per logical unit. Text is set in Go
// Regular, embedded as a UTF-8 font, unless the Font names a TrueType
// file.
//
//	r := pdf.New(pdf.WithTitle("sketch"))
//	dc := tin.NewContext(tin.WithRenderer(r))
//	// ... run frames ...
//	err := r.OutputFile("sketch.pdf")
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/tin"
	"github.com/gogpu/tin/internal/geom"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFamily is the family name Go Regular is registered under.
const defaultFamily = "goregular"

// ErrClosed is returned by output methods after the document was written.
var ErrClosed = errors.New("pdf: document already written")

func init() {
	tin.RegisterRenderer("pdf", func() tin.Renderer {
		return New()
	})
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// WithAuthor sets the document author.
func WithAuthor(author string) Option {
	return func(r *Renderer) { r.author = author }
}

// WithCompression toggles stream compression. It is on by default.
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

type imageKey struct {
	img    *tin.Image
	width  int
	height int
}

type segment struct {
	curve      bool
	to, c1, c2 tin.Point
}

// Renderer draws frames into a PDF document held in memory until one of
// the output methods is called.
type Renderer struct {
	mu       sync.Mutex
	doc      *gofpdf.Fpdf
	frame    tin.Frame
	pages    int
	path     []segment
	images   map[imageKey]string
	fonts    map[string]string
	title    string
	author   string
	compress bool
	closed   bool
}

var _ tin.Renderer = (*Renderer)(nil)

// New creates a renderer. The document is created by Prepare.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		title:    "tin",
		compress: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prepare starts a new document whose pages have the frame's size.
func (r *Renderer) Prepare(f tin.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prepare(f)
}

func (r *Renderer) prepare(f tin.Frame) {
	r.frame = f
	r.doc = gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    r.pageSize(),
	})
	r.doc.SetTitle(r.title, true)
	if r.author != "" {
		r.doc.SetAuthor(r.author, true)
	}
	r.doc.SetCompression(r.compress)
	r.doc.AddUTF8FontFromBytes(defaultFamily, "", goregular.TTF)
	r.pages = 0
	r.images = make(map[imageKey]string)
	r.fonts = make(map[string]string)
	r.closed = false
}

// PrepareForUpdate starts a page for the frame.
func (r *Renderer) PrepareForUpdate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addPage()
}

// DidFinishUpdate logs the finished page.
func (r *Renderer) DidFinishUpdate() {
	tin.Logger().Debug("pdf: page finished", "page", r.Pages())
}

// Background fills the page with c.
func (r *Renderer) Background(c tin.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready() {
		return
	}
	r.setFill(c)
	r.doc.Rect(0, 0, r.pageSize().Wd, r.pageSize().Ht, "F")
}

// Rect paints the four resolved corners as a polygon.
func (r *Renderer) Rect(pts []tin.Point, b tin.Brush, _ tin.DrawState) {
	r.polygon(geom.Open(pts), b)
}

// Triangle paints the three vertices.
func (r *Renderer) Triangle(pts []tin.Point, b tin.Brush, _ tin.DrawState) {
	r.polygon(pts, b)
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
	r.polygon(geom.Quad(pts), tin.Brush{Kind: tin.BrushFill, Fill: c})
}

// Arc fills the pie wedge and strokes the curved edge.
func (r *Renderer) Arc(a tin.Arc, b tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready() {
		return
	}
	if c, ok := b.FillColor(); ok {
		r.setFill(c)
		r.doc.Polygon(r.points(geom.Pie(a)), "F")
	}
	if c, ok := b.StrokeColor(); ok {
		r.setStroke(c, b.Width)
		pts := r.points(geom.Arc(a))
		r.doc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			r.doc.LineTo(p.X, p.Y)
		}
		r.doc.DrawPath("D")
	}
}

// Ellipse paints the ellipse inscribed in bounds, rotated by the state.
func (r *Renderer) Ellipse(bounds tin.Rect, b tin.Brush, s tin.DrawState) {
	r.polygon(geom.Ellipse(bounds.Center(), bounds.Width/2, bounds.Height/2, s.Rotation), b)
}

// RoundedRect paints rr rotated by the state about its center.
func (r *Renderer) RoundedRect(rr tin.RoundedRect, b tin.Brush, s tin.DrawState) {
	r.polygon(geom.RoundedRect(rr, s.Rotation), b)
}

// PathBegin discards any unfinished path.
func (r *Renderer) PathBegin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = r.path[:0]
}

// PathVertex appends a straight segment to p.
func (r *Renderer) PathVertex(p tin.Point, _ tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = append(r.path, segment{to: p})
}

// PathAddCurve appends a cubic Bezier segment.
func (r *Renderer) PathAddCurve(to, c1, c2 tin.Point, _ tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = append(r.path, segment{curve: true, to: to, c1: c1, c2: c2})
}

// PathEnd paints the path closed, keeping curves as PDF Bezier curves.
func (r *Renderer) PathEnd(b tin.Brush, _ tin.DrawState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path
	r.path = nil
	if len(path) < 2 || !r.ready() {
		return
	}
	if c, ok := b.FillColor(); ok {
		r.setFill(c)
		r.tracePath(path)
		r.doc.DrawPath("F")
	}
	if c, ok := b.StrokeColor(); ok {
		r.setStroke(c, b.Width)
		r.tracePath(path)
		r.doc.DrawPath("D")
	}
}

func (r *Renderer) tracePath(path []segment) {
	start := r.point(path[0].to)
	r.doc.MoveTo(start.X, start.Y)
	for _, seg := range path[1:] {
		to := r.point(seg.to)
		if !seg.curve {
			r.doc.LineTo(to.X, to.Y)
			continue
		}
		c1, c2 := r.point(seg.c1), r.point(seg.c2)
		r.doc.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
	}
	r.doc.ClosePath()
}

// Image places img with its bottom-left corner at dst's origin. Resize
// resamples the pixels to dst's size before embedding; otherwise the
// viewer scales them. Each image is embedded once per document.
func (r *Renderer) Image(img *tin.Image, dst tin.Rect, resize bool, _ tin.Brush, s tin.DrawState) {
	if img == nil || dst.Width == 0 || dst.Height == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready() {
		return
	}

	name, err := r.registerImage(img, dst, resize)
	if err != nil {
		tin.Logger().Warn("pdf: embed image", "error", err)
		return
	}
	origin := r.point(tin.Pt(dst.X, dst.Y))
	r.rotated(origin, s.Rotation, func() {
		r.doc.ImageOptions(name, origin.X, origin.Y-dst.Height, dst.Width, dst.Height,
			false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	})
}

func (r *Renderer) registerImage(img *tin.Image, dst tin.Rect, resize bool) (string, error) {
	key := imageKey{img: img}
	if resize {
		key.width, key.height = int(math.Round(dst.Width)), int(math.Round(dst.Height))
	}
	if name, ok := r.images[key]; ok {
		return name, nil
	}

	src := img
	if resize {
		src = img.Resized(key.width, key.height)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src.Source()); err != nil {
		return "", err
	}
	name := fmt.Sprintf("image-%d", len(r.images)+1)
	r.doc.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if err := r.doc.Error(); err != nil {
		return "", err
	}
	r.images[key] = name
	return name, nil
}

// Text sets msg with its baseline at at, in the fill color, or the stroke
// color when the brush does not fill.
func (r *Renderer) Text(msg string, font tin.Font, at tin.Point, b tin.Brush, s tin.DrawState) {
	c, ok := b.FillColor()
	if !ok {
		if c, ok = b.StrokeColor(); !ok {
			return
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready() {
		return
	}

	r.doc.SetFont(r.family(font), "", s.ApplyLength(font.SizeOrDefault()))
	r.doc.SetTextColor(channels(c))
	r.doc.SetAlpha(c.Alpha, "Normal")
	p := r.point(at)
	r.rotated(p, s.Rotation, func() {
		r.doc.Text(p.X, p.Y, msg)
	})
}

// family returns the registered family for font, loading its file on
// first use. Unloadable fonts fall back to Go Regular.
func (r *Renderer) family(font tin.Font) string {
	if font.Name == "" {
		return defaultFamily
	}
	if fam, ok := r.fonts[font.Name]; ok {
		return fam
	}

	fam := defaultFamily
	data, err := os.ReadFile(font.Name)
	if err == nil {
		name := fmt.Sprintf("font-%d", len(r.fonts)+1)
		r.doc.AddUTF8FontFromBytes(name, "", data)
		err = r.doc.Error()
		if err == nil {
			fam = name
		}
	}
	if err != nil {
		tin.Logger().Warn("pdf: using default font", "font", font.Name, "error", err)
		r.doc.ClearError()
	}
	r.fonts[font.Name] = fam
	return fam
}

// PushState is a no-op; geometry arrives transformed.
func (r *Renderer) PushState() {}

// PopState is a no-op.
func (r *Renderer) PopState() {}

func (r *Renderer) polygon(pts []tin.Point, b tin.Brush) {
	if len(pts) < 3 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready() {
		return
	}

	page := r.points(pts)
	if c, ok := b.FillColor(); ok {
		r.setFill(c)
		r.doc.Polygon(page, "F")
	}
	if c, ok := b.StrokeColor(); ok {
		r.setStroke(c, b.Width)
		r.doc.Polygon(page, "D")
	}
}

// rotated runs draw with the page rotated by angle radians about p.
func (r *Renderer) rotated(p gofpdf.PointType, angle float64, draw func()) {
	if angle == 0 {
		draw()
		return
	}
	r.doc.TransformBegin()
	r.doc.TransformRotate(angle*180/math.Pi, p.X, p.Y)
	draw()
	r.doc.TransformEnd()
}

func (r *Renderer) setFill(c tin.Color) {
	r.doc.SetFillColor(channels(c))
	r.doc.SetAlpha(c.Alpha, "Normal")
}

func (r *Renderer) setStroke(c tin.Color, width float64) {
	r.doc.SetDrawColor(channels(c))
	r.doc.SetAlpha(c.Alpha, "Normal")
	r.doc.SetLineWidth(width)
}

func channels(c tin.Color) (int, int, int) {
	n := c.NRGBA()
	return int(n.R), int(n.G), int(n.B)
}

func (r *Renderer) point(p tin.Point) gofpdf.PointType {
	return gofpdf.PointType{X: p.X, Y: float64(r.frame.Height) - p.Y}
}

func (r *Renderer) points(pts []tin.Point) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		out[i] = r.point(p)
	}
	return out
}

func (r *Renderer) pageSize() gofpdf.SizeType {
	return gofpdf.SizeType{Wd: float64(r.frame.Width), Ht: float64(r.frame.Height)}
}

func (r *Renderer) addPage() {
	if r.doc == nil {
		r.prepare(tin.DefaultFrame())
	}
	if r.closed {
		return
	}
	r.doc.AddPageFormat("", r.pageSize())
	r.pages++
}

// ready reports whether a page is open for drawing, opening one for
// primitives drawn outside a frame. r.mu must be held.
func (r *Renderer) ready() bool {
	if r.doc == nil || r.pages == 0 {
		r.addPage()
	}
	return !r.closed
}

// Pages returns the number of pages added so far.
func (r *Renderer) Pages() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pages
}

// Output writes the document to w and closes it. Later frames are
// discarded.
func (r *Renderer) Output(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.doc == nil || r.pages == 0 {
		r.addPage()
	}
	r.closed = true
	if err := r.doc.Output(w); err != nil {
		return fmt.Errorf("pdf: write: %w", err)
	}
	return nil
}

// OutputFile writes the document to path, creating parent directories.
func (r *Renderer) OutputFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("pdf: ensure out dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	if err := r.Output(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Err returns the document's first error.
func (r *Renderer) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		return nil
	}
	return r.doc.Error()
}
