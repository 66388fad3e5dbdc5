package ebiten

import (
	"context"
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/tin"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeInput struct {
	x, y     int
	pressed  []ebiten.Key
	released []ebiten.Key
	down     map[ebiten.MouseButton]bool
	up       map[ebiten.MouseButton]bool
}

func (f *fakeInput) CursorPosition() (int, int) { return f.x, f.y }

func (f *fakeInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.pressed...)
}

func (f *fakeInput) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.released...)
}

func (f *fakeInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool  { return f.down[b] }
func (f *fakeInput) IsMouseButtonJustReleased(b ebiten.MouseButton) bool { return f.up[b] }

func newEbitenContext(t *testing.T) (*tin.Context, *Renderer) {
	t.Helper()
	r := New()
	dc := tin.NewContext(tin.WithRenderer(r))
	dc.Prepare(tin.NewFrame(100, 80))
	return dc, r
}

func runFrame(dc *tin.Context, draw func()) {
	dc.PrepareForUpdate()
	draw()
	dc.ProcessDrawCalls()
	dc.DidFinishUpdate()
}

func kinds(ops []op) []opKind {
	out := make([]opKind, len(ops))
	for i, o := range ops {
		out[i] = o.kind
	}
	return out
}

func TestRegistration(t *testing.T) {
	r, err := tin.NewRenderer("ebiten")
	if err != nil {
		t.Fatalf("NewRenderer(ebiten) error = %v", err)
	}
	if _, ok := r.(*Renderer); !ok {
		t.Fatalf("NewRenderer(ebiten) = %T, want *ebiten.Renderer", r)
	}
}

func TestDisplayList(t *testing.T) {
	dc, r := newEbitenContext(t)
	runFrame(dc, func() {
		dc.BackgroundGray(1)
		dc.DrawRect(10, 10, 20, 20)
		dc.StrokeDisable()
		dc.DrawEllipse(50, 40, 10, 10)
		dc.DrawLine(0, 0, 100, 80)
	})

	want := []opKind{opClear, opFill, opStroke, opFill, opFill}
	if got := kinds(r.ready); !slices.Equal(got, want) {
		t.Errorf("display list = %v, want %v", got, want)
	}
	if r.Frames() != 1 || !r.dirty {
		t.Errorf("Frames() = %d, dirty = %v after one frame", r.Frames(), r.dirty)
	}
	if len(r.pending) != 0 {
		t.Errorf("pending has %d ops after the frame finished", len(r.pending))
	}
}

func TestPixelsAreYDown(t *testing.T) {
	dc, r := newEbitenContext(t)
	runFrame(dc, func() {
		dc.StrokeDisable()
		dc.DrawRect(10, 10, 20, 20)
	})
	if len(r.ready) != 1 {
		t.Fatalf("display list has %d ops, want 1", len(r.ready))
	}
	ring := r.ready[0].rings[0]
	// The bottom-left corner (10, 10) lands 10 pixels above the last row.
	if ring[0] != tin.Pt(10, 70) {
		t.Errorf("first corner = %v, want (10, 70)", ring[0])
	}
	for _, p := range ring {
		if p.Y < 50-1e-9 || p.Y > 70+1e-9 {
			t.Errorf("corner %v outside rows 50..70", p)
		}
	}
}

func TestStrokeWidth(t *testing.T) {
	dc, r := newEbitenContext(t)
	runFrame(dc, func() {
		dc.FillDisable()
		dc.LineWidth(4)
		dc.DrawRect(10, 10, 20, 20)
		dc.LineWidth(0)
		dc.DrawTriangle(0, 0, 10, 0, 5, 10)
	})
	if len(r.ready) != 2 {
		t.Fatalf("display list has %d ops, want 2", len(r.ready))
	}
	if got := r.ready[0].width; got != 4 {
		t.Errorf("stroke width = %v, want 4", got)
	}
	if got := r.ready[1].width; got != Hairline {
		t.Errorf("zero stroke width = %v, want %v", got, Hairline)
	}
	if !r.ready[0].closed {
		t.Error("polygon stroke should be closed")
	}
}

func TestHairlineLine(t *testing.T) {
	dc, r := newEbitenContext(t)
	runFrame(dc, func() {
		dc.LineWidth(0)
		dc.DrawLine(10, 10, 90, 10)
	})
	if len(r.ready) != 1 {
		t.Fatalf("display list has %d ops, want 1", len(r.ready))
	}
	ring := r.ready[0].rings[0]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range ring {
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if got := maxY - minY; math.Abs(got-Hairline) > 1e-9 {
		t.Errorf("line thickness = %v, want %v", got, Hairline)
	}
}

func TestTransparentShapesSkipped(t *testing.T) {
	dc, r := newEbitenContext(t)
	runFrame(dc, func() {
		dc.FillColorFromGrayAndAlpha(0, 0)
		dc.StrokeDisable()
		dc.DrawRect(0, 0, 10, 10)
	})
	if len(r.ready) != 0 {
		t.Errorf("display list = %v, want empty", kinds(r.ready))
	}
}

func TestArcAndPath(t *testing.T) {
	dc, r := newEbitenContext(t)
	runFrame(dc, func() {
		dc.DrawArc(50, 40, 20, 0, math.Pi)
		dc.PathBegin()
		dc.PathVertex(0, 0)
		dc.PathVertex(20, 0)
		dc.PathAddCurve(tin.Pt(20, 20), tin.Pt(30, 5), tin.Pt(30, 15))
		dc.PathEnd()
	})
	want := []opKind{opFill, opStroke, opFill, opStroke}
	if got := kinds(r.ready); !slices.Equal(got, want) {
		t.Fatalf("display list = %v, want %v", got, want)
	}
	if r.ready[1].closed {
		t.Error("arc edge should stay open")
	}
	if n := len(r.ready[2].rings[0]); n <= 3 {
		t.Errorf("path has %d points, want the curve flattened", n)
	}
}

func TestImageAndText(t *testing.T) {
	img := tin.NewImage(image.NewRGBA(image.Rect(0, 0, 10, 5)))
	dc, r := newEbitenContext(t)
	runFrame(dc, func() {
		dc.DrawImageWithSize(img, 10, 20, 20, 10)
		dc.DrawImageWithSizeAndResize(img, 10, 20, 20, 10, true)
		dc.DrawText("hi", tin.Font{Size: 12}, 5, 5)
	})
	want := []opKind{opImage, opImage, opText}
	if got := kinds(r.ready); !slices.Equal(got, want) {
		t.Fatalf("display list = %v, want %v", got, want)
	}

	// The source's top-left pixel lands on the destination's top-left
	// corner: x = 10, row = 80 - (20 + 10).
	x, y := r.ready[0].geoM.Apply(0, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("image origin = (%v, %v), want (10, 50)", x, y)
	}
	if r.ready[0].filter != ebiten.FilterNearest || r.ready[1].filter != ebiten.FilterLinear {
		t.Error("resize should select linear filtering")
	}

	k := r.ready[2].text
	if k.msg != "hi" || k.size != 12 || k.face == nil {
		t.Errorf("text key = %+v", k)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		in   ebiten.Key
		want tin.Key
	}{
		{ebiten.KeyA, tin.KeyA},
		{ebiten.KeyZ, tin.KeyZ},
		{ebiten.KeyDigit7, tin.Key7},
		{ebiten.KeyArrowLeft, tin.KeyLeft},
		{ebiten.KeyEscape, tin.KeyEscape},
		{ebiten.KeyF1, tin.KeyUnknown},
	}
	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func newTestGame(t *testing.T, ctx context.Context, scene tin.Scene) (*Game, *fakeInput) {
	t.Helper()
	dc := tin.NewContext(tin.WithRenderer(New()))
	c := tin.NewController(tin.NewView(tin.WithFrame(tin.NewFrame(100, 80))), scene, dc)
	g, err := NewGame(ctx, c)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	in := &fakeInput{down: map[ebiten.MouseButton]bool{}, up: map[ebiten.MouseButton]bool{}}
	g.input = in
	return g, in
}

func TestGameUpdate(t *testing.T) {
	var (
		events  []tin.Event
		updates int
	)
	scene := tin.SceneFuncs{
		UpdateFunc:  func() { updates++ },
		OnEventFunc: func(e tin.Event) { events = append(events, e) },
	}
	g, in := newTestGame(t, context.Background(), scene)

	in.x, in.y = 30, 20
	in.down[ebiten.MouseButtonLeft] = true
	in.pressed = []ebiten.Key{ebiten.KeySpace}
	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	want := []tin.Event{
		tin.MouseEvent(tin.EventMouseMoved, tin.Pt(30, 60)),
		tin.MouseEvent(tin.EventMouseDown, tin.Pt(30, 60)),
		tin.KeyEvent(tin.EventKeyDown, tin.KeySpace),
	}
	if !slices.Equal(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
	if updates != 1 || g.controller.Context().FrameCount() != 1 {
		t.Errorf("updates = %d, frames = %d, want 1", updates, g.controller.Context().FrameCount())
	}
	if !g.controller.Context().MousePressed() {
		t.Error("mouse should be pressed")
	}

	// An unchanged cursor produces no move event.
	events = nil
	in.down = map[ebiten.MouseButton]bool{}
	in.up[ebiten.MouseButtonRight] = true
	in.pressed = nil
	in.released = []ebiten.Key{ebiten.KeySpace}
	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	want = []tin.Event{
		tin.MouseEvent(tin.EventRightMouseUp, tin.Pt(30, 60)),
		tin.KeyEvent(tin.EventKeyUp, tin.KeySpace),
	}
	if !slices.Equal(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestGameTerminates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g, _ := newTestGame(t, ctx, tin.SceneFuncs{})
	cancel()
	if err := g.Update(); !errors.Is(err, ErrTerminated) {
		t.Errorf("Update() after cancel = %v, want ErrTerminated", err)
	}
}

func TestLayout(t *testing.T) {
	g, _ := newTestGame(t, context.Background(), tin.SceneFuncs{})
	if w, h := g.Layout(640, 480); w != 100 || h != 80 {
		t.Errorf("Layout() = %d, %d, want 100, 80", w, h)
	}
}

func TestNewGameRequiresRenderer(t *testing.T) {
	c := tin.NewController(tin.NewView(), tin.SceneFuncs{}, tin.NewContext())
	if _, err := NewGame(context.Background(), c); err == nil {
		t.Error("NewGame() with a foreign renderer should fail")
	}
}
