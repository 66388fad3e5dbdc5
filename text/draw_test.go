package text

import (
	"image"
	"image/color"
	"testing"
)

func TestDraw(t *testing.T) {
	f := loadTestFace(t)
	dst := image.NewRGBA(image.Rect(0, 0, 40, 32))

	if err := Draw(dst, f, 20, "H", 4, 24, color.Black); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	inked := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 40; x++ {
			if dst.RGBAAt(x, y).A > 0 {
				inked++
				if y > 24 {
					t.Fatalf("ink at (%d, %d), below the baseline", x, y)
				}
			}
		}
	}
	if inked == 0 {
		t.Error("Draw() left the image blank")
	}
}

func TestDrawEmpty(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := Draw(dst, DefaultFace(), 12, "", 0, 0, color.Black); err != nil {
		t.Errorf("Draw(\"\") error = %v", err)
	}
	if err := Draw(dst, nil, 12, "x", 0, 0, color.Black); err != nil {
		t.Errorf("Draw(nil face) error = %v", err)
	}
}

func TestBounds(t *testing.T) {
	f := loadTestFace(t)
	b, err := Bounds(f, 20, "H")
	if err != nil {
		t.Fatalf("Bounds() error = %v", err)
	}
	if b.Empty() {
		t.Fatal("Bounds(\"H\") is empty")
	}
	if b.Min.Y >= 0 {
		t.Errorf("Bounds().Min.Y = %d, want above the baseline", b.Min.Y)
	}
}
