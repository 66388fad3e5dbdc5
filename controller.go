package tin

import (
	"context"
	"time"
)

// PresentFunc shows a finished frame. The frame number is 1 for the first
// frame.
type PresentFunc func(frame uint64) error

// Controller drives a Scene against a Context:
//
//	PrepareForUpdate -> Scene.Update -> ProcessDrawCalls -> DidFinishUpdate
//	-> present -> input events -> repeat
//
// Frame pacing lives here, outside the draw-call queue.
type Controller struct {
	view  View
	scene Scene
	dc    *Context
}

// NewController runs scene.Setup and then prepares dc for the view's
// frame. A nil dc means the process-wide context.
func NewController(view View, scene Scene, dc *Context) *Controller {
	if dc == nil {
		dc = Default()
	}
	scene.Setup()
	dc.Prepare(view.Frame)
	return &Controller{view: view, scene: scene, dc: dc}
}

// View returns the view the controller presents into.
func (c *Controller) View() View { return c.view }

// Scene returns the driven scene.
func (c *Controller) Scene() Scene { return c.scene }

// Context returns the drawing context.
func (c *Controller) Context() *Context { return c.dc }

// Step runs one update cycle and returns the new frame number.
func (c *Controller) Step() uint64 {
	c.dc.PrepareForUpdate()
	c.scene.Update()
	c.dc.ProcessDrawCalls()
	c.dc.DidFinishUpdate()
	return c.dc.FrameCount()
}

// Dispatch records mouse input on the context and forwards e to the scene.
func (c *Controller) Dispatch(e Event) {
	switch e.Kind {
	case EventMouseMoved:
		c.dc.MouseMoved(e.Point)
	case EventMouseDown:
		c.dc.MouseMoved(e.Point)
		c.dc.SetMousePressed(true)
	case EventMouseUp:
		c.dc.MouseMoved(e.Point)
		c.dc.SetMousePressed(false)
	}
	c.scene.OnEvent(e)
}

// RunFrames steps n frames as fast as possible, presenting each one.
// It is meant for headless renderers.
func (c *Controller) RunFrames(n int, present PresentFunc) error {
	for range n {
		frame := c.Step()
		if present != nil {
			if err := present(frame); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run steps frames at the view's frame rate until ctx is done or present
// fails. Events received on the channel are dispatched after each frame is
// presented. Run returns ctx.Err() on cancellation.
func (c *Controller) Run(ctx context.Context, present PresentFunc, events <-chan Event) error {
	fps := c.view.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	log := Logger().With("title", c.view.Title)
	log.Debug("tin: run loop started", "fps", fps)
	defer log.Debug("tin: run loop stopped", "frames", c.dc.FrameCount())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		frame := c.Step()
		if present != nil {
			if err := present(frame); err != nil {
				return err
			}
		}
		c.drain(events)
	}
}

func (c *Controller) drain(events <-chan Event) {
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return
			}
			c.Dispatch(e)
		default:
			return
		}
	}
}
