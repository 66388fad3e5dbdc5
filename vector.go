package tin

import "math"

// Vector2 is a 2D displacement with magnitude and direction.
//
// Methods with value receivers return new vectors. SetMagnitude,
// Normalize, Rotate and Limit mutate the receiver in place.
type Vector2 struct {
	X, Y float64
}

// Vec is a convenience function to create a Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at theta radians.
func FromAngle(theta float64) Vector2 {
	return Vector2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Add returns v+w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Magnitude returns the length of v.
func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// SetMagnitude rescales v to length m. A zero vector stays zero.
func (v *Vector2) SetMagnitude(m float64) {
	v.Normalize()
	v.X *= m
	v.Y *= m
}

// Normalize scales v to unit length in place.
// It is a no-op when the magnitude is 0 or already 1.
func (v *Vector2) Normalize() {
	m := v.Magnitude()
	if m == 0 || m == 1 {
		return
	}
	v.X /= m
	v.Y /= m
}

// Normalized returns a unit-length copy of v.
func (v Vector2) Normalized() Vector2 {
	v.Normalize()
	return v
}

// Rotate turns v counter-clockwise about the origin by theta radians.
func (v *Vector2) Rotate(theta float64) {
	*v = v.Rotated(theta)
}

// Rotated returns v turned counter-clockwise by theta radians.
func (v Vector2) Rotated(theta float64) Vector2 {
	if theta == 0 {
		return v
	}
	sin, cos := math.Sincos(theta)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Limit caps the magnitude of v at m.
func (v *Vector2) Limit(m float64) {
	if v.Magnitude() > m {
		v.SetMagnitude(m)
	}
}

// PerpendicularClockwise returns (y, -x).
func (v Vector2) PerpendicularClockwise() Vector2 {
	return Vector2{X: v.Y, Y: -v.X}
}

// PerpendicularCounterClockwise returns (-y, x).
func (v Vector2) PerpendicularCounterClockwise() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Heading returns the angle of v in radians.
func (v Vector2) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp linearly interpolates from v towards w.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}

// AngleBetween returns the unsigned angle between v and w in radians.
// It returns 0 if either vector is zero.
func (v Vector2) AngleBetween(w Vector2) float64 {
	m := v.Magnitude() * w.Magnitude()
	if m == 0 {
		return 0
	}
	c := v.Dot(w) / m
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Point returns the location v points to from the origin.
func (v Vector2) Point() Point {
	return Point(v)
}
