package text

import (
	"math"
	"testing"
)

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Direction
	}{
		{"empty", "", LeftToRight},
		{"spaces", "   ", LeftToRight},
		{"latin", "hello", LeftToRight},
		{"hebrew", "שלום", RightToLeft},
		{"arabic", "مرحبا", RightToLeft},
		{"leading digits", "123 שלום", RightToLeft},
		{"latin first", "tin שלום", LeftToRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.in); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShape(t *testing.T) {
	f := loadTestFace(t)

	glyphs := Shape(f, 16, "Hello")
	if len(glyphs) != 5 {
		t.Fatalf("Shape() returned %d glyphs, want 5", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v, not right of glyph %d at x=%v", i, glyphs[i].X, i-1, glyphs[i-1].X)
		}
		if glyphs[i].Cluster != i {
			t.Errorf("glyph %d cluster = %d", i, glyphs[i].Cluster)
		}
	}
	if Shape(f, 16, "") != nil || Shape(nil, 16, "x") != nil {
		t.Error("Shape() of empty input should be nil")
	}
}

func TestMeasure(t *testing.T) {
	f := loadTestFace(t)

	w, h := Measure(f, 16, "Hello")
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure() = %v, %v, want positive", w, h)
	}

	var sum float64
	for _, g := range Shape(f, 16, "Hello") {
		sum += g.Advance
	}
	if math.Abs(sum-w) > 1e-9 {
		t.Errorf("Measure() width = %v, glyph advances sum to %v", w, sum)
	}

	w2, _ := Measure(f, 32, "Hello")
	if math.Abs(w2-2*w) > 0.5 {
		t.Errorf("width at 32 = %v, want about %v", w2, 2*w)
	}

	if w, h := Measure(f, 16, ""); w != 0 || h != f.Metrics(16).Height {
		t.Errorf("Measure(\"\") = %v, %v, want 0, line height", w, h)
	}
	if w, h := Measure(nil, 16, "x"); w != 0 || h != 0 {
		t.Errorf("Measure(nil face) = %v, %v", w, h)
	}
}

func TestShapeRightToLeft(t *testing.T) {
	f := loadTestFace(t)
	if w, _ := Measure(f, 16, "שלום"); w < 0 {
		t.Errorf("Measure(rtl) = %v", w)
	}
}
