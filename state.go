package tin

// DrawState is the transform snapshot applied to primitives at resolution
// time. Translate, Rotate and Scale draw calls accumulate into it
// additively, Scale included.
type DrawState struct {
	Rotation    float64 // radians, counter-clockwise
	Scale       float64
	Translation Vector2
}

// IdentityState returns the state that leaves geometry untouched.
func IdentityState() DrawState {
	return DrawState{Scale: 1}
}

// IsIdentity reports whether s leaves geometry untouched.
func (s DrawState) IsIdentity() bool {
	return s == IdentityState()
}

// Apply maps p through s: rotation about the origin, then scale, then
// translation.
func (s DrawState) Apply(p Point) Point {
	v := p.Vector().Rotated(s.Rotation)
	if s.Scale != 1 {
		v = v.Mul(s.Scale)
	}
	return v.Add(s.Translation).Point()
}

// ApplyAll maps every point in pts through s, in place, and returns pts.
func (s DrawState) ApplyAll(pts []Point) []Point {
	if s.IsIdentity() {
		return pts
	}
	for i, p := range pts {
		pts[i] = s.Apply(p)
	}
	return pts
}

// ApplyLength scales a length by s.
func (s DrawState) ApplyLength(l float64) float64 {
	return l * s.Scale
}
