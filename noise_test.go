package tin

import (
	"math"
	"testing"
)

func TestNoiseZeroOnLattice(t *testing.T) {
	for _, p := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-4, 7, 100}, {255, 0, 1}} {
		if got := Noise(p[0], p[1], p[2]); got != 0 {
			t.Errorf("Noise%v = %v, want 0", p, got)
		}
		if got := Noise2(p[0], p[1]); got != 0 {
			t.Errorf("Noise2(%v, %v) = %v, want 0", p[0], p[1], got)
		}
	}
}

func TestNoiseBoundedAndDeterministic(t *testing.T) {
	for i := range 500 {
		x := float64(i)*0.137 - 20
		y := float64(i)*0.291 + 3
		z := float64(i) * 0.053
		n := Noise(x, y, z)
		if n < -1 || n > 1 || math.IsNaN(n) {
			t.Fatalf("Noise(%v, %v, %v) = %v outside [-1, 1]", x, y, z, n)
		}
		if again := Noise(x, y, z); again != n {
			t.Fatalf("Noise(%v, %v, %v) not deterministic: %v then %v", x, y, z, n, again)
		}
		if n2 := Noise2(x, y); n2 < -1 || n2 > 1 {
			t.Fatalf("Noise2(%v, %v) = %v outside [-1, 1]", x, y, n2)
		}
	}
}

func TestNoiseIsContinuous(t *testing.T) {
	const step = 1e-4
	for i := range 100 {
		x := float64(i) * 0.173
		if d := math.Abs(Noise(x, 0.5, 0.5) - Noise(x+step, 0.5, 0.5)); d > 0.01 {
			t.Fatalf("Noise jumps by %v between %v and %v", d, x, x+step)
		}
	}
}

func TestNoiseRepeatsEvery256(t *testing.T) {
	for _, x := range []float64{0.25, 3.5, 17.75} {
		a := Noise(x, 0.5, 0.5)
		b := Noise(x+256, 0.5, 0.5)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("Noise(%v) = %v, Noise(%v) = %v", x, a, x+256, b)
		}
	}
}
