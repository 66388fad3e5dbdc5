package tin

import (
	"errors"
	"math"
	"testing"
)

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name string
		fn   func(start, stop, t float64) float64
		t    float64
		want float64
	}{
		{"Smoothstep mid", Smoothstep, 0.7, 78.4},
		{"Smoothstep half", Smoothstep, 0.5, 50},
		{"Smoothstep below", Smoothstep, -1, 0},
		{"Smoothstep above", Smoothstep, 2, 100},
		{"Smootherstep mid", Smootherstep, 0.7, 83.692},
		{"Smootherstep half", Smootherstep, 0.5, 50},
		{"Smootherstep below", Smootherstep, -0.1, 0},
		{"Smootherstep above", Smootherstep, 1.1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(0, 100, tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemap(t *testing.T) {
	tests := []struct {
		v, inLo, inHi, outLo, outHi float64
		want                        float64
	}{
		{0.03, 0, 1, 100, 200, 103},
		{5, 0, 10, 0, 1, 0.5},
		{15, 0, 10, 0, 1, 1.5}, // not clamped
		{2, 0, 4, 10, 0, 5},    // inverted output
	}
	for _, tt := range tests {
		got := Remap(tt.v, tt.inLo, tt.inHi, tt.outLo, tt.outHi)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Remap(%v, %v, %v, %v, %v) = %v, want %v",
				tt.v, tt.inLo, tt.inHi, tt.outLo, tt.outHi, got, tt.want)
		}
	}
}

func TestRemapDegenerateRangePanics(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"input", func() { Remap(1, 3, 3, 0, 1) }},
		{"output", func() { Remap(1, 0, 1, 5, 5) }},
		{"Norm", func() { Norm(1, 2, 2) }},
		{"easing", func() { EaseInQuad(0.5, 1, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				var re *RangeError
				if !errors.As(err, &re) {
					t.Fatalf("panic value = %v, want *RangeError", err)
				}
			}()
			tt.call()
		})
	}
}

func TestCalcHelpers(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
	}{
		{"Constrain low", Constrain(-5, 0, 10), 0},
		{"Constrain high", Constrain(50, 0, 10), 10},
		{"Constrain inside", Constrain(3, 0, 10), 3},
		{"Lerp", Lerp(10, 20, 0.25), 12.5},
		{"Lerp extrapolates", Lerp(0, 10, 2), 20},
		{"Mag", Mag(3, 4), 5},
		{"Dist", Dist(1, 1, 4, 5), 5},
		{"Sq", Sq(-3), 9},
		{"Norm", Norm(25, 0, 100), 0.25},
		{"ToRadians", ToRadians(180), math.Pi},
		{"ToDegrees", ToDegrees(math.Pi / 2), 90},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-12 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
