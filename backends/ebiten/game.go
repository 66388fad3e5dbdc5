package ebiten

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/tin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrTerminated is returned by Game.Update once the run context is done.
var ErrTerminated = errors.New("ebiten: game terminated")

// input is the slice of Ebitengine input state the game polls.
type input interface {
	CursorPosition() (x, y int)
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenInput) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (ebitenInput) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

var buttonEvents = []struct {
	button   ebiten.MouseButton
	down, up tin.EventKind
}{
	{ebiten.MouseButtonLeft, tin.EventMouseDown, tin.EventMouseUp},
	{ebiten.MouseButtonRight, tin.EventRightMouseDown, tin.EventRightMouseUp},
	{ebiten.MouseButtonMiddle, tin.EventOtherMouseDown, tin.EventOtherMouseUp},
}

// Game implements ebiten.Game on top of a tin.Controller. Every tick
// dispatches the input gathered since the last tick and then steps one
// frame.
type Game struct {
	ctx        context.Context
	controller *tin.Controller
	renderer   *Renderer
	input      input

	cursor    tin.Point
	hasCursor bool
	keys      []ebiten.Key
}

var _ ebiten.Game = (*Game)(nil)

// NewGame returns a game for c. The controller's context must render
// with a *Renderer.
func NewGame(ctx context.Context, c *tin.Controller) (*Game, error) {
	r, ok := c.Context().Renderer().(*Renderer)
	if !ok {
		return nil, fmt.Errorf("ebiten: context renders with %T, want *ebiten.Renderer", c.Context().Renderer())
	}
	return &Game{ctx: ctx, controller: c, renderer: r, input: ebitenInput{}}, nil
}

// Update dispatches input and steps one frame.
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ErrTerminated
	default:
	}

	for _, e := range g.poll() {
		g.controller.Dispatch(e)
	}
	g.controller.Step()
	return nil
}

// Draw presents the latest finished frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

// Layout keeps the logical screen at the frame size.
func (g *Game) Layout(int, int) (int, int) {
	f := g.renderer.Frame()
	return f.Width, f.Height
}

// poll translates this tick's input into events. Mouse positions are
// converted to the y-up logical space.
func (g *Game) poll() []tin.Event {
	var events []tin.Event

	x, y := g.input.CursorPosition()
	p := tin.Pt(float64(x), float64(g.renderer.Frame().Height-y))
	if !g.hasCursor || p != g.cursor {
		g.cursor, g.hasCursor = p, true
		events = append(events, tin.MouseEvent(tin.EventMouseMoved, p))
	}
	for _, be := range buttonEvents {
		if g.input.IsMouseButtonJustPressed(be.button) {
			events = append(events, tin.MouseEvent(be.down, p))
		}
		if g.input.IsMouseButtonJustReleased(be.button) {
			events = append(events, tin.MouseEvent(be.up, p))
		}
	}

	g.keys = g.input.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		events = append(events, tin.KeyEvent(tin.EventKeyDown, Key(k)))
	}
	g.keys = g.input.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		events = append(events, tin.KeyEvent(tin.EventKeyUp, Key(k)))
	}
	return events
}

// Run opens a window for c's view and blocks until the window is closed
// or ctx is done.
func Run(ctx context.Context, c *tin.Controller) error {
	g, err := NewGame(ctx, c)
	if err != nil {
		return err
	}

	view := c.View()
	ebiten.SetWindowSize(view.Frame.Width, view.Frame.Height)
	ebiten.SetWindowTitle(view.Title)
	if view.FPS > 0 {
		ebiten.SetTPS(view.FPS)
	}

	log := tin.Logger().With("title", view.Title)
	log.Debug("ebiten: window opened", "fps", view.FPS)
	err = ebiten.RunGame(g)
	log.Debug("ebiten: window closed", "frames", c.Context().FrameCount())
	if errors.Is(err, ErrTerminated) {
		return nil
	}
	return err
}
