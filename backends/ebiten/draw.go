package ebiten

import (
	"image"

	"github.com/gogpu/tin"
	"github.com/gogpu/tin/text"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImage is the 1x1 source for untextured triangles.
var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(tin.White.NRGBA())
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Draw replays the latest finished frame onto the canvas, if it has not
// been replayed yet, and draws the canvas onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.canvas == nil || r.canvas.Bounds().Dx() != r.frame.Width || r.canvas.Bounds().Dy() != r.frame.Height {
		if r.canvas != nil {
			r.canvas.Deallocate()
		}
		r.canvas = ebiten.NewImage(r.frame.Width, r.frame.Height)
		r.dirty = true
	}
	if r.dirty {
		for i := range r.ready {
			r.replay(&r.ready[i])
		}
		r.dirty = false
	}
	screen.DrawImage(r.canvas, nil)
}

func (r *Renderer) replay(o *op) {
	switch o.kind {
	case opClear:
		r.canvas.Fill(o.color.NRGBA())
	case opFill:
		vs, is := appendPath(o.rings, true).AppendVerticesAndIndicesForFilling(nil, nil)
		r.triangles(vs, is, o.color, ebiten.FillRuleNonZero)
	case opStroke:
		opts := &vector.StrokeOptions{
			Width:    float32(o.width),
			LineJoin: vector.LineJoinMiter,
			LineCap:  vector.LineCapButt,
		}
		vs, is := appendPath(o.rings, o.closed).AppendVerticesAndIndicesForStroke(nil, nil, opts)
		r.triangles(vs, is, o.color, ebiten.FillRuleFillAll)
	case opImage:
		img, err := r.images.GetOrCreate(o.image, func() (*ebiten.Image, error) {
			return ebiten.NewImageFromImage(o.image.Source()), nil
		})
		if err != nil {
			return
		}
		r.canvas.DrawImage(img, &ebiten.DrawImageOptions{GeoM: o.geoM, Filter: o.filter})
	case opText:
		img, err := r.textures.GetOrCreate(o.text, func() (*ebiten.Image, error) {
			return rasterizeText(o.text)
		})
		if err != nil {
			tin.Logger().Warn("ebiten: draw text", "text", o.text.msg, "error", err)
			return
		}
		if img == nil {
			return
		}
		opts := &ebiten.DrawImageOptions{}
		b, _ := text.Bounds(o.text.face, o.text.size, o.text.msg)
		opts.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
		opts.GeoM.Concat(o.geoM)
		r.canvas.DrawImage(img, opts)
	}
}

func (r *Renderer) triangles(vs []ebiten.Vertex, is []uint16, c tin.Color, rule ebiten.FillRule) {
	n := c.NRGBA()
	cr, cg, cb, ca := float32(n.R)/0xff, float32(n.G)/0xff, float32(n.B)/0xff, float32(n.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, ca
	}
	r.canvas.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

func appendPath(rings [][]tin.Point, closed bool) *vector.Path {
	var p vector.Path
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		p.MoveTo(float32(ring[0].X), float32(ring[0].Y))
		for _, pt := range ring[1:] {
			p.LineTo(float32(pt.X), float32(pt.Y))
		}
		if closed {
			p.Close()
		}
	}
	return &p
}

// rasterizeText draws the text into an image sized to its ink bounds.
// Blank text yields a nil image.
func rasterizeText(k textKey) (*ebiten.Image, error) {
	b, err := text.Bounds(k.face, k.size, k.msg)
	if err != nil {
		return nil, err
	}
	if b.Empty() {
		return nil, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if err := text.Draw(dst, k.face, k.size, k.msg, float64(-b.Min.X), float64(-b.Min.Y), k.col); err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(dst), nil
}
