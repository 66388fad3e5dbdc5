package tin

import "math"

// Constrain clamps v to [lo, hi].
func Constrain(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates linearly from start to stop. t is not clamped.
func Lerp(start, stop, t float64) float64 {
	return start + (stop-start)*t
}

// Smoothstep eases in and out between start and stop with t²(3-2t).
// t at or beyond 0 and 1 returns the end points.
func Smoothstep(start, stop, t float64) float64 {
	if t <= 0 {
		return start
	}
	if t >= 1 {
		return stop
	}
	y := t * t * (3 - 2*t)
	return start + (stop-start)*y
}

// Smootherstep is Perlin's variant of Smoothstep, using (6t²-15t+10)t³.
func Smootherstep(start, stop, t float64) float64 {
	if t <= 0 {
		return start
	}
	if t >= 1 {
		return stop
	}
	y := (6*t*t - 15*t + 10) * t * t * t
	return start + (stop-start)*y
}

// Mag returns the length of the vector (x, y).
func Mag(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Remap maps v from [inLo, inHi] to [outLo, outHi] without clamping.
// A zero-width input or output range panics with a *RangeError instead of
// producing NaN or Inf.
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	inRange := inHi - inLo
	outRange := outHi - outLo
	if inRange == 0 {
		panic(&RangeError{Func: "Remap input", Lo: inLo, Hi: inHi})
	}
	if outRange == 0 {
		panic(&RangeError{Func: "Remap output", Lo: outLo, Hi: outHi})
	}
	return outLo + outRange*((v-inLo)/inRange)
}

// Norm maps v from [lo, hi] to [0, 1]. It panics like Remap.
func Norm(v, lo, hi float64) float64 {
	return Remap(v, lo, hi, 0, 1)
}

// Sq returns v*v.
func Sq(v float64) float64 {
	return v * v
}

// Dist returns the distance between (x1, y1) and (x2, y2).
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
