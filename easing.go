package tin

import "math"

// EaseFunc maps a progress value in [0, 1] onto [start, stop].
// All easing functions panic with a *RangeError when start == stop.
type EaseFunc func(value, start, stop float64) float64

func eased(t, start, stop float64) float64 {
	return Remap(t, 0, 1, start, stop)
}

func EaseLinear(v, start, stop float64) float64 { return eased(v, start, stop) }

func EaseInQuad(v, start, stop float64) float64 { return eased(v*v, start, stop) }

func EaseOutQuad(v, start, stop float64) float64 { return eased(-(v * (v - 2)), start, stop) }

func EaseInOutQuad(v, start, stop float64) float64 {
	var t float64
	if v < 0.5 {
		t = 2 * v * v
	} else {
		t = -2*v*v + 4*v - 1
	}
	return eased(t, start, stop)
}

func EaseInCubic(v, start, stop float64) float64 { return eased(v*v*v, start, stop) }

func EaseOutCubic(v, start, stop float64) float64 {
	f := v - 1
	return eased(f*f*f+1, start, stop)
}

func EaseInOutCubic(v, start, stop float64) float64 {
	var t float64
	if v < 0.5 {
		t = 4 * v * v * v
	} else {
		f := 2*v - 2
		t = 0.5*f*f*f + 1
	}
	return eased(t, start, stop)
}

func EaseInQuart(v, start, stop float64) float64 { return eased(v*v*v*v, start, stop) }

func EaseOutQuart(v, start, stop float64) float64 {
	f := v - 1
	return eased(f*f*f*(1-v)+1, start, stop)
}

func EaseInOutQuart(v, start, stop float64) float64 {
	var t float64
	if v < 0.5 {
		t = 8 * v * v * v * v
	} else {
		f := v - 1
		t = -8*f*f*f*f + 1
	}
	return eased(t, start, stop)
}

func EaseInQuint(v, start, stop float64) float64 { return eased(v*v*v*v*v, start, stop) }

func EaseOutQuint(v, start, stop float64) float64 {
	f := v - 1
	return eased(f*f*f*f*f+1, start, stop)
}

func EaseInOutQuint(v, start, stop float64) float64 {
	var t float64
	if v < 0.5 {
		t = 16 * v * v * v * v * v
	} else {
		f := 2*v - 2
		t = 0.5*f*f*f*f*f + 1
	}
	return eased(t, start, stop)
}

func EaseInSine(v, start, stop float64) float64 {
	return eased(math.Sin((v-1)*math.Pi/2)+1, start, stop)
}

func EaseOutSine(v, start, stop float64) float64 {
	return eased(math.Sin(v*math.Pi/2), start, stop)
}

func EaseInOutSine(v, start, stop float64) float64 {
	return eased(0.5*(1-math.Cos(v*math.Pi)), start, stop)
}

func EaseInExpo(v, start, stop float64) float64 {
	if v == 0 {
		return eased(0, start, stop)
	}
	return eased(math.Pow(2, 10*(v-1)), start, stop)
}

func EaseOutExpo(v, start, stop float64) float64 {
	if v == 1 {
		return eased(1, start, stop)
	}
	return eased(1-math.Pow(2, -10*v), start, stop)
}

func EaseInCirc(v, start, stop float64) float64 {
	return eased(1-math.Sqrt(1-v*v), start, stop)
}

func EaseOutCirc(v, start, stop float64) float64 {
	return eased(math.Sqrt((2-v)*v), start, stop)
}

func EaseInBack(v, start, stop float64) float64 {
	return eased(v*v*v-v*math.Sin(v*math.Pi), start, stop)
}

func EaseOutBack(v, start, stop float64) float64 {
	f := 1 - v
	return eased(1-(f*f*f-f*math.Sin(f*math.Pi)), start, stop)
}

func EaseInOutBack(v, start, stop float64) float64 {
	var t float64
	if v < 0.5 {
		f := 2 * v
		t = 0.5 * (f*f*f - f*math.Sin(f*math.Pi))
	} else {
		f := 1 - (2*v - 1)
		t = 0.5*(1-(f*f*f-f*math.Sin(f*math.Pi))) + 0.5
	}
	return eased(t, start, stop)
}

func bounceOut(v float64) float64 {
	switch {
	case v < 4.0/11.0:
		return 121 * v * v / 16
	case v < 8.0/11.0:
		return 363.0/40.0*v*v - 99.0/10.0*v + 17.0/5.0
	case v < 9.0/10.0:
		return 4356.0/361.0*v*v - 35442.0/1805.0*v + 16061.0/1805.0
	default:
		return 54.0/5.0*v*v - 513.0/25.0*v + 268.0/25.0
	}
}

func EaseInBounce(v, start, stop float64) float64 { return eased(1-bounceOut(1-v), start, stop) }

func EaseOutBounce(v, start, stop float64) float64 { return eased(bounceOut(v), start, stop) }

func EaseInOutBounce(v, start, stop float64) float64 {
	var t float64
	if v < 0.5 {
		t = 0.5 * (1 - bounceOut(1-v*2))
	} else {
		t = 0.5*bounceOut(v*2-1) + 0.5
	}
	return eased(t, start, stop)
}

// Damped sine waves.

func EaseInElastic(v, start, stop float64) float64 {
	return eased(math.Sin(13*math.Pi/2*v)*math.Pow(2, 10*(v-1)), start, stop)
}

func EaseOutElastic(v, start, stop float64) float64 {
	return eased(math.Sin(-13*math.Pi/2*(v+1))*math.Pow(2, -10*v)+1, start, stop)
}

func EaseInOutElastic(v, start, stop float64) float64 {
	var t float64
	if v < 0.5 {
		t = 0.5 * math.Sin(13*math.Pi/2*(2*v)) * math.Pow(2, 10*(2*v-1))
	} else {
		t = 0.5 * (math.Sin(-13*math.Pi/2*((2*v-1)+1))*math.Pow(2, -10*(2*v-1)) + 2)
	}
	return eased(t, start, stop)
}
