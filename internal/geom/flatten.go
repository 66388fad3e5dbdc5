// Package geom turns resolved tin primitives into polygons that backends
// without curve support can fill.
package geom

import (
	"math"

	"github.com/gogpu/tin"
)

// Tolerance is the maximum distance from the curve for flattening.
const Tolerance = 0.1

const (
	minSegments = 8
	maxSegments = 1024
)

// Cubic flattens the cubic Bezier p0-c1-c2-p3 into line segments. The
// result excludes p0 and ends with p3.
func Cubic(p0, c1, c2, p3 tin.Point, tolerance float64) []tin.Point {
	var points []tin.Point
	cubicRec(p0, c1, c2, p3, tolerance, &points, 0)
	return points
}

// cubicRec subdivides with de Casteljau's algorithm until the control
// points are within tolerance of the chord.
func cubicRec(p0, p1, p2, p3 tin.Point, tolerance float64, points *[]tin.Point, depth int) {
	dist := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if dist < tolerance || depth >= 16 {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	cubicRec(p0, q0, r0, s, tolerance, points, depth+1)
	cubicRec(s, r1, q2, p3, tolerance, points, depth+1)
}

func distanceToSegment(p, a, b tin.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// Segments returns how many chords approximate a full circle of the given
// radius to within Tolerance.
func Segments(radius float64) int {
	radius = math.Abs(radius)
	if radius <= Tolerance {
		return minSegments
	}
	step := 2 * math.Acos(1-Tolerance/radius)
	n := int(math.Ceil(2 * math.Pi / step))
	return max(minSegments, min(n, maxSegments))
}

// Ellipse returns the outline of the ellipse centered on c with radii rx
// and ry, rotated by rotation radians. The ring is not closed.
func Ellipse(c tin.Point, rx, ry, rotation float64) []tin.Point {
	n := Segments(math.Max(math.Abs(rx), math.Abs(ry)))
	pts := make([]tin.Point, n)
	sin, cos := math.Sincos(rotation)
	for i := range n {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x, y := rx*math.Cos(theta), ry*math.Sin(theta)
		pts[i] = tin.Pt(c.X+x*cos-y*sin, c.Y+x*sin+y*cos)
	}
	return pts
}

// Arc returns points along a from StartAngle to EndAngle, both included.
func Arc(a tin.Arc) []tin.Point {
	sweep := a.EndAngle - a.StartAngle
	n := int(math.Ceil(float64(Segments(a.Radius)) * math.Abs(sweep) / (2 * math.Pi)))
	n = max(n, 1)
	pts := make([]tin.Point, n+1)
	for i := range n + 1 {
		theta := a.StartAngle + sweep*float64(i)/float64(n)
		pts[i] = a.Center.Add(tin.FromAngle(theta).Mul(a.Radius))
	}
	return pts
}

// Pie returns the wedge enclosed by a and its center.
func Pie(a tin.Arc) []tin.Point {
	return append([]tin.Point{a.Center}, Arc(a)...)
}

// RoundedRect returns the outline of rr rotated by rotation radians about
// its center. Radii are clamped to half the side lengths.
func RoundedRect(rr tin.RoundedRect, rotation float64) []tin.Point {
	w, h := math.Abs(rr.Width), math.Abs(rr.Height)
	rx := math.Min(math.Abs(rr.RadiusX), w/2)
	ry := math.Min(math.Abs(rr.RadiusY), h/2)
	if rx == 0 || ry == 0 {
		return Rotate(rr.Corners()[:4], rr.Center(), rotation)
	}

	minX, minY := math.Min(rr.MinX(), rr.MaxX()), math.Min(rr.MinY(), rr.MaxY())
	maxX, maxY := minX+w, minY+h
	corners := []struct {
		c     tin.Point
		start float64
	}{
		{tin.Pt(maxX-rx, minY+ry), -math.Pi / 2},
		{tin.Pt(maxX-rx, maxY-ry), 0},
		{tin.Pt(minX+rx, maxY-ry), math.Pi / 2},
		{tin.Pt(minX+rx, minY+ry), math.Pi},
	}

	quarter := max(Segments(math.Max(rx, ry))/4, 2)
	pts := make([]tin.Point, 0, 4*(quarter+1))
	for _, k := range corners {
		for i := range quarter + 1 {
			theta := k.start + math.Pi/2*float64(i)/float64(quarter)
			pts = append(pts, tin.Pt(k.c.X+rx*math.Cos(theta), k.c.Y+ry*math.Sin(theta)))
		}
	}
	return Rotate(pts, rr.Center(), rotation)
}

// Rotate rotates pts about c in place and returns pts.
func Rotate(pts []tin.Point, c tin.Point, angle float64) []tin.Point {
	if angle == 0 {
		return pts
	}
	for i, p := range pts {
		pts[i] = c.Add(p.Sub(c).Rotated(angle))
	}
	return pts
}
