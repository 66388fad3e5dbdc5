package main

import (
	"math"

	"github.com/gogpu/tin"
)

type particle struct {
	pos, vel tin.Vector2
	size     float64
	hue      float64
}

// particles drifts dots through a noise field and links close neighbors.
// Clicking spawns a burst at the cursor; space pauses; R restarts.
type particles struct {
	dc     *tin.Context
	frame  tin.Frame
	bg     tin.Color
	count  int
	items  []particle
	paused bool
	t      float64
}

var _ tin.Scene = (*particles)(nil)

// newParticles scatters count particles over frame. Setup runs before the
// context is prepared, so the frame is passed in.
func newParticles(dc *tin.Context, frame tin.Frame, bg tin.Color, count int) *particles {
	return &particles{dc: dc, frame: frame, bg: bg, count: count}
}

func (p *particles) Setup() {
	p.items = p.items[:0]
	for range p.count {
		p.items = append(p.items, p.spawn(tin.Vec(
			tin.Random(0, float64(p.frame.Width)),
			tin.Random(0, float64(p.frame.Height)),
		)))
	}
}

func (p *particles) spawn(at tin.Vector2) particle {
	return particle{
		pos:  at,
		vel:  tin.FromAngle(tin.Random(0, 2*math.Pi)).Mul(tin.Random(0.5, 2)),
		size: math.Max(2, 6+2*tin.RandomGaussian()),
		hue:  tin.Random(0, 1),
	}
}

func (p *particles) Update() {
	dc := p.dc
	w, h := dc.Size()

	dc.BackgroundWithColor(p.bg)
	if !p.paused {
		p.t += 0.01
		p.step(w, h)
	}

	dc.StrokeColorFromRGBA(0.3, 0.3, 0.4, 0.35)
	dc.LineWidth(0.5)
	const link = 60.0
	for i := range p.items {
		for j := i + 1; j < len(p.items); j++ {
			a, b := p.items[i].pos, p.items[j].pos
			if d := b.Sub(a).Magnitude(); d < link {
				dc.SetAlpha(tin.EaseOutQuad(d/link, 0.6, 0))
				dc.DrawLine(a.X, a.Y, b.X, b.Y)
			}
		}
	}

	dc.StrokeDisable()
	for _, it := range p.items {
		hue := math.Mod(it.hue+p.t*0.1, 1)
		dc.FillColorFromRGBA(
			0.5+0.5*math.Cos(2*math.Pi*hue),
			0.5+0.5*math.Cos(2*math.Pi*(hue+1.0/3)),
			0.5+0.5*math.Cos(2*math.Pi*(hue+2.0/3)),
			0.85,
		)
		dc.DrawEllipse(it.pos.X, it.pos.Y, it.size, it.size)
	}

	dc.FillColorFromGray(0.2)
	dc.DrawText("tin", tin.Font{Size: 18}, 12, h-28)
	if p.paused {
		dc.DrawText("paused", tin.Font{Size: 14}, 12, h-48)
	}
}

// step moves every particle along the noise field and wraps it at the
// frame edges.
func (p *particles) step(w, h float64) {
	for i := range p.items {
		it := &p.items[i]
		angle := tin.Noise(it.pos.X*0.005, it.pos.Y*0.005, p.t) * 4 * math.Pi
		it.vel = it.vel.Add(tin.FromAngle(angle).Mul(0.1))
		it.vel.Limit(2.5)
		it.pos = it.pos.Add(it.vel)
		it.pos.X = wrap(it.pos.X, w)
		it.pos.Y = wrap(it.pos.Y, h)
	}
}

func (p *particles) OnEvent(e tin.Event) {
	switch e.Kind {
	case tin.EventMouseDown:
		at := tin.Vec(e.Point.X, e.Point.Y)
		for range 12 {
			p.items = append(p.items, p.spawn(at))
		}
	case tin.EventKeyDown:
		switch e.Key {
		case tin.KeySpace:
			p.paused = !p.paused
		case tin.KeyR:
			p.Setup()
		}
	}
}

func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
