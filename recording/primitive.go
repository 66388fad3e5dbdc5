package recording

import "github.com/gogpu/tin"

// Primitive is one renderer dispatch captured by a Recorder. Only the
// fields relevant to Kind are set:
//
//   - Rect, Triangle, Line: Points holds the resolved outline
//   - PathVertex: Points[0]; PathAddCurve: Points = [to, control1, control2]
//   - Ellipse, RoundedRect, Image: Bounds (RoundedRect also RadiusX/RadiusY)
//   - Arc: Arc
//   - Text: Text, Font and Points[0] as the baseline origin
//   - Background: Color
//
// Geometry is stored after the draw state was applied; State records the
// snapshot that produced it.
type Primitive struct {
	Kind    tin.DrawCallType `json:"kind"`
	Points  []tin.Point      `json:"points,omitempty"`
	Bounds  tin.Rect         `json:"bounds"`
	RadiusX float64          `json:"rx,omitempty"`
	RadiusY float64          `json:"ry,omitempty"`
	Arc     tin.Arc          `json:"arc"`
	Image   ImageRef         `json:"image,omitempty"`
	Resize  bool             `json:"resize,omitempty"`
	Text    string           `json:"text,omitempty"`
	Font    tin.Font         `json:"font"`
	Color   tin.Color        `json:"color"`
	Brush   tin.Brush        `json:"brush"`
	State   tin.DrawState    `json:"state"`
}

// Frame is every primitive dispatched between PrepareForUpdate and
// DidFinishUpdate, in dispatch order.
type Frame struct {
	Number     uint64
	Size       tin.Frame
	Primitives []Primitive

	pool *ResourcePool
}

// Count returns how many primitives of the given kind the frame holds.
func (f *Frame) Count(kind tin.DrawCallType) int {
	n := 0
	for i := range f.Primitives {
		if f.Primitives[i].Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the primitive kinds in dispatch order.
func (f *Frame) Kinds() []tin.DrawCallType {
	kinds := make([]tin.DrawCallType, len(f.Primitives))
	for i := range f.Primitives {
		kinds[i] = f.Primitives[i].Kind
	}
	return kinds
}

// Image resolves an image reference of this frame. It returns nil for
// references the frame cannot resolve.
func (f *Frame) Image(ref ImageRef) *tin.Image {
	if f.pool == nil {
		return nil
	}
	return f.pool.Image(ref)
}
