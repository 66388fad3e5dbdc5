package geom

import "github.com/gogpu/tin"

// Outline returns the stroke of the polyline pts as one quad per segment.
// Closed outlines also get the segment back to the first point. Every quad
// is wound counter-clockwise so overlapping quads never cancel under a
// non-zero fill.
func Outline(pts []tin.Point, closed bool, width float64) [][]tin.Point {
	if len(pts) < 2 || width <= 0 {
		return nil
	}
	n := len(pts) - 1
	if closed && pts[0] != pts[n] {
		n++
	}
	quads := make([][]tin.Point, 0, n)
	for i := range n {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if a == b {
			continue
		}
		quads = append(quads, Quad(tin.LineQuad(a, b, width)))
	}
	return quads
}

// Quad reorders the closed five-point quad produced by tin.LineQuad into
// a four-point polygon wound counter-clockwise.
func Quad(strip []tin.Point) []tin.Point {
	if len(strip) < 4 {
		return strip
	}
	return CCW([]tin.Point{strip[0], strip[1], strip[3], strip[2]})
}

// SignedArea returns the shoelace area of the ring pts. It is positive
// for counter-clockwise rings in a y-up space.
func SignedArea(pts []tin.Point) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// CCW reverses pts in place if it is wound clockwise and returns it.
func CCW(pts []tin.Point) []tin.Point {
	if SignedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

// Open drops the closing point of a ring that repeats its first point.
func Open(pts []tin.Point) []tin.Point {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		return pts[:n-1]
	}
	return pts
}
