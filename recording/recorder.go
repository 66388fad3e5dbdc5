package recording

import (
	"context"
	"slices"
	"sync"

	"github.com/gogpu/tin"
)

// Recorder is a tin.Renderer that draws nothing and keeps every dispatch
// as a Primitive, grouped by frame. It backs golden tests and the sqlite
// frame store, and a recorded Frame can be replayed into any other
// renderer with Playback.
//
// Example:
//
//	rec := recording.NewRecorder()
//	dc := tin.NewContext(tin.WithRenderer(rec))
//	dc.Prepare(tin.NewFrame(800, 600))
//
//	dc.PrepareForUpdate()
//	dc.DrawRect(10, 10, 50, 50)
//	dc.ProcessDrawCalls()
//	dc.DidFinishUpdate()
//
//	last := rec.Last()
//
// Recorder is safe for concurrent use; the returned frames must not be
// modified.
type Recorder struct {
	mu      sync.Mutex
	size    tin.Frame
	current *Frame
	frames  []*Frame
	limit   int
	pool    *ResourcePool
	store   *Store
	err     error
}

var _ tin.Renderer = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*Recorder)

// WithLimit keeps only the most recent n frames in memory. Zero keeps all.
func WithLimit(n int) Option {
	return func(r *Recorder) {
		r.limit = max(n, 0)
	}
}

// WithStore saves each finished frame to s.
func WithStore(s *Store) Option {
	return func(r *Recorder) {
		r.store = s
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{pool: NewResourcePool()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Frames returns the finished frames, oldest first.
func (r *Recorder) Frames() []*Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.frames)
}

// Last returns the most recently finished frame, or nil.
func (r *Recorder) Last() *Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// Pool returns the pool resolving image references.
func (r *Recorder) Pool() *ResourcePool { return r.pool }

// Err returns the first error reported by the store, if any.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Reset drops all frames and pooled images.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = nil
	r.current = nil
	r.err = nil
	r.pool.Clear()
}

// --------------------------------------------------------------------------
// Lifecycle hooks
// --------------------------------------------------------------------------

func (r *Recorder) Prepare(f tin.Frame) {
	r.mu.Lock()
	r.size = f
	r.mu.Unlock()
}

func (r *Recorder) PrepareForUpdate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var number uint64 = 1
	if n := len(r.frames); n > 0 {
		number = r.frames[n-1].Number + 1
	}
	r.current = &Frame{Number: number, Size: r.size, pool: r.pool}
}

func (r *Recorder) DidFinishUpdate() {
	r.mu.Lock()
	f := r.current
	r.current = nil
	if f == nil {
		r.mu.Unlock()
		return
	}
	r.frames = append(r.frames, f)
	if r.limit > 0 && len(r.frames) > r.limit {
		r.frames = slices.Delete(r.frames, 0, len(r.frames)-r.limit)
	}
	store := r.store
	r.mu.Unlock()

	if store == nil {
		return
	}
	if err := store.Save(context.Background(), f); err != nil {
		tin.Logger().Warn("recording: save frame failed", "frame", f.Number, "err", err)
		r.mu.Lock()
		if r.err == nil {
			r.err = err
		}
		r.mu.Unlock()
	}
}

// add appends p to the current frame. Primitives dispatched outside a
// PrepareForUpdate/DidFinishUpdate pair open an implicit frame.
func (r *Recorder) add(p Primitive) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		r.current = &Frame{Size: r.size, pool: r.pool}
	}
	r.current.Primitives = append(r.current.Primitives, p)
}

// --------------------------------------------------------------------------
// Primitives
// --------------------------------------------------------------------------

func (r *Recorder) Background(c tin.Color) {
	r.add(Primitive{Kind: tin.CallBackground, Color: c})
}

func (r *Recorder) Rect(pts []tin.Point, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallRect, Points: slices.Clone(pts), Brush: b, State: s})
}

func (r *Recorder) Triangle(pts []tin.Point, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallTriangle, Points: slices.Clone(pts), Brush: b, State: s})
}

func (r *Recorder) Line(pts []tin.Point, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallLine, Points: slices.Clone(pts), Brush: b, State: s})
}

func (r *Recorder) Arc(a tin.Arc, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallArc, Arc: a, Brush: b, State: s})
}

func (r *Recorder) Ellipse(bounds tin.Rect, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallEllipse, Bounds: bounds, Brush: b, State: s})
}

func (r *Recorder) RoundedRect(rr tin.RoundedRect, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{
		Kind:    tin.CallRoundedRect,
		Bounds:  rr.Rect,
		RadiusX: rr.RadiusX,
		RadiusY: rr.RadiusY,
		Brush:   b,
		State:   s,
	})
}

func (r *Recorder) Image(img *tin.Image, dst tin.Rect, resize bool, b tin.Brush, s tin.DrawState) {
	ref := r.pool.AddImage(img)
	r.add(Primitive{Kind: tin.CallImage, Image: ref, Bounds: dst, Resize: resize, Brush: b, State: s})
}

func (r *Recorder) Text(msg string, font tin.Font, at tin.Point, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallText, Text: msg, Font: font, Points: []tin.Point{at}, Brush: b, State: s})
}

func (r *Recorder) PathBegin() {
	r.add(Primitive{Kind: tin.CallPathBegin})
}

func (r *Recorder) PathVertex(p tin.Point, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallPathVertex, Points: []tin.Point{p}, Brush: b, State: s})
}

func (r *Recorder) PathAddCurve(to, c1, c2 tin.Point, b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallPathAddCurve, Points: []tin.Point{to, c1, c2}, Brush: b, State: s})
}

func (r *Recorder) PathEnd(b tin.Brush, s tin.DrawState) {
	r.add(Primitive{Kind: tin.CallPathEnd, Brush: b, State: s})
}

func (r *Recorder) PushState() { r.add(Primitive{Kind: tin.CallPushState}) }
func (r *Recorder) PopState()  { r.add(Primitive{Kind: tin.CallPopState}) }

// --------------------------------------------------------------------------
// Playback
// --------------------------------------------------------------------------

// Playback replays f into dst as one complete update cycle:
// PrepareForUpdate, every primitive in order, DidFinishUpdate. dst must
// already be prepared for a frame.
func Playback(f *Frame, dst tin.Renderer) {
	dst.PrepareForUpdate()
	for i := range f.Primitives {
		p := &f.Primitives[i]
		switch p.Kind {
		case tin.CallBackground:
			dst.Background(p.Color)
		case tin.CallRect:
			dst.Rect(slices.Clone(p.Points), p.Brush, p.State)
		case tin.CallTriangle:
			dst.Triangle(slices.Clone(p.Points), p.Brush, p.State)
		case tin.CallLine:
			dst.Line(slices.Clone(p.Points), p.Brush, p.State)
		case tin.CallArc:
			dst.Arc(p.Arc, p.Brush, p.State)
		case tin.CallEllipse:
			dst.Ellipse(p.Bounds, p.Brush, p.State)
		case tin.CallRoundedRect:
			dst.RoundedRect(tin.RoundedRect{Rect: p.Bounds, RadiusX: p.RadiusX, RadiusY: p.RadiusY}, p.Brush, p.State)
		case tin.CallImage:
			dst.Image(f.Image(p.Image), p.Bounds, p.Resize, p.Brush, p.State)
		case tin.CallText:
			dst.Text(p.Text, p.Font, firstPoint(p.Points), p.Brush, p.State)
		case tin.CallPathBegin:
			dst.PathBegin()
		case tin.CallPathVertex:
			dst.PathVertex(firstPoint(p.Points), p.Brush, p.State)
		case tin.CallPathAddCurve:
			if len(p.Points) == 3 {
				dst.PathAddCurve(p.Points[0], p.Points[1], p.Points[2], p.Brush, p.State)
			}
		case tin.CallPathEnd:
			dst.PathEnd(p.Brush, p.State)
		case tin.CallPushState:
			dst.PushState()
		case tin.CallPopState:
			dst.PopState()
		}
	}
	dst.DidFinishUpdate()
}

func firstPoint(pts []tin.Point) tin.Point {
	if len(pts) == 0 {
		return tin.Point{}
	}
	return pts[0]
}
