package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders s onto dst at size. Position (x, y) is the baseline origin
// in dst's pixel space, with y growing downwards.
func Draw(dst draw.Image, f *Face, size float64, s string, x, y float64, col color.Color) error {
	if s == "" || f == nil {
		return nil
	}
	return f.withSized(size, func(face font.Face) {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
		}
		d.DrawString(s)
	})
}

// Bounds returns the ink bounds of s drawn at the origin, in pixels with
// y growing downwards.
func Bounds(f *Face, size float64, s string) (bounds image.Rectangle, err error) {
	if s == "" || f == nil {
		return image.Rectangle{}, nil
	}
	err = f.withSized(size, func(face font.Face) {
		b, _ := font.BoundString(face, s)
		bounds = image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	})
	return bounds, err
}
