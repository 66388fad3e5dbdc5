package tin

// Rect is an axis-aligned rectangle. X and Y name the bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromCenter returns the rectangle of the given size centered on (cx, cy).
func RectFromCenter(cx, cy, width, height float64) Rect {
	return Rect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Corners returns the closed outline of r: bottom-left, top-left,
// top-right, bottom-right and bottom-left again.
func (r Rect) Corners() []Point {
	bl := Point{X: r.X, Y: r.Y}
	return []Point{
		bl,
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y},
		bl,
	}
}

// RoundedRect is a rectangle whose corners are elliptical arcs.
type RoundedRect struct {
	Rect
	RadiusX, RadiusY float64
}

// Triangle is three points. It is never closed with a repeated point.
type Triangle struct {
	P1, P2, P3 Point
}

// Points returns the three vertices in order.
func (t Triangle) Points() []Point {
	return []Point{t.P1, t.P2, t.P3}
}

// Arc is a circular arc. Angles are in radians, counter-clockwise from +X.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// LineQuad expands the segment p1-p2 into a closed quadrilateral of the
// given width: [p1+ccw, p1+cw, p2+ccw, p2+cw, p1+ccw], where cw and ccw
// are the perpendiculars of p2-p1 scaled to width/2.
//
// A zero-length segment yields five copies of p1.
func LineQuad(p1, p2 Point, width float64) []Point {
	half := width / 2
	d := p2.Sub(p1)

	cw := d.PerpendicularClockwise()
	ccw := d.PerpendicularCounterClockwise()
	cw.SetMagnitude(half)
	ccw.SetMagnitude(half)

	first := p1.Add(ccw)
	return []Point{
		first,
		p1.Add(cw),
		p2.Add(ccw),
		p2.Add(cw),
		first,
	}
}
