package tin

import (
	"sync"
	"sync/atomic"
)

// DefaultLineWidth is the line width restored at the start of every frame.
const DefaultLineWidth = 0.05

// Context is the shared drawing state and draw-call queue.
//
// Drawing methods only append to the queue. ProcessDrawCalls drains it in
// order and updates the resolved state that the getters report. Queries
// take a read lock; enqueueing, resolving and input updates take the
// write lock.
//
// The renderer is called with the write lock held, so renderer methods
// must not call back into the Context.
type Context struct {
	mu       sync.RWMutex
	renderer Renderer

	frame         Frame
	width, height float64
	midX, midY    float64

	mouse         Point
	previousMouse Point
	mousePressed  bool

	frameCount uint64

	// Resolved state. Updated only by ProcessDrawCalls and reset by
	// Prepare and PrepareForUpdate.
	fillColor        Color
	strokeColor      Color
	backgroundColor  Color
	shouldFill       bool
	shouldStroke     bool
	lineWidth        float64
	defaultLineWidth float64
	state            DrawState
	pushedState      *DrawState

	queue []DrawCall
}

// NewContext creates a context in the library default state: fill and
// stroke enabled, default colors, identity transform and an empty queue.
// Without a renderer option, resolved primitives are discarded.
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := o.renderer
	if r == nil && o.rendererName != "" {
		r = MustRenderer(o.rendererName)
	}
	if r == nil {
		r = nullRenderer{}
	}

	c := &Context{
		renderer:         r,
		defaultLineWidth: o.lineWidth,
	}
	c.resetLocked()
	return c
}

// --------------------------------------------------------------------------
// Process-wide context
// --------------------------------------------------------------------------

var defaultContext atomic.Pointer[Context]

func init() {
	defaultContext.Store(NewContext())
}

// Default returns the process-wide context used by the package-level
// drawing functions.
func Default() *Context {
	return defaultContext.Load()
}

// SetDefault installs c as the process-wide context. Passing nil installs
// a fresh context with no renderer.
func SetDefault(c *Context) {
	if c == nil {
		c = NewContext()
	}
	defaultContext.Store(c)
}

// Init creates a context from opts, installs it as the process-wide
// context and returns it.
func Init(opts ...ContextOption) *Context {
	c := NewContext(opts...)
	SetDefault(c)
	return c
}

// --------------------------------------------------------------------------
// Lifecycle
// --------------------------------------------------------------------------

// Enqueue appends call to the draw-call queue.
func (c *Context) Enqueue(call DrawCall) {
	c.mu.Lock()
	c.queue = append(c.queue, call)
	c.mu.Unlock()
}

// Prepare sizes the context to frame, resets the drawing state and runs
// the renderer's one-time setup. Call it once before the first frame.
func (c *Context) Prepare(frame Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resizeLocked(frame)
	c.resetLocked()
	c.renderer.Prepare(frame)
	Logger().Debug("tin: context prepared", "width", frame.Width, "height", frame.Height)
}

// PrepareForUpdate starts a new frame: colors, enable flags, line width and
// transform return to their defaults and the frame counter advances by one.
func (c *Context) PrepareForUpdate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	c.frameCount++
	c.renderer.PrepareForUpdate()
}

// DidFinishUpdate ends the current frame.
func (c *Context) DidFinishUpdate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderer.DidFinishUpdate()
}

// Resize changes the frame size without touching the drawing state.
func (c *Context) Resize(frame Frame) {
	c.mu.Lock()
	c.resizeLocked(frame)
	c.mu.Unlock()
}

// MouseMoved records a new mouse position. The current position becomes
// the previous one.
func (c *Context) MouseMoved(p Point) {
	c.mu.Lock()
	c.previousMouse = c.mouse
	c.mouse = p
	c.mu.Unlock()
}

// SetMousePressed records the primary button state.
func (c *Context) SetMousePressed(pressed bool) {
	c.mu.Lock()
	c.mousePressed = pressed
	c.mu.Unlock()
}

func (c *Context) resizeLocked(frame Frame) {
	c.frame = frame
	c.width = float64(frame.Width)
	c.height = float64(frame.Height)
	c.midX = c.width / 2
	c.midY = c.height / 2
}

func (c *Context) resetLocked() {
	c.shouldFill = true
	c.shouldStroke = true
	c.lineWidth = c.defaultLineWidth
	c.fillColor = DefaultFillColor
	c.strokeColor = DefaultStrokeColor
	c.backgroundColor = DefaultBackgroundColor
	c.state = IdentityState()
	c.pushedState = nil
}

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

// Renderer returns the renderer primitives are dispatched to.
func (c *Context) Renderer() Renderer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renderer
}

// FillColor returns the last resolved fill color.
func (c *Context) FillColor() Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fillColor
}

// StrokeColor returns the last resolved stroke color.
func (c *Context) StrokeColor() Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.strokeColor
}

// BackgroundColor returns the last resolved background color.
func (c *Context) BackgroundColor() Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.backgroundColor
}

// FillEnabled reports the last resolved fill flag.
func (c *Context) FillEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shouldFill
}

// StrokeEnabled reports the last resolved stroke flag.
func (c *Context) StrokeEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shouldStroke
}

// CurrentLineWidth returns the last resolved line width.
func (c *Context) CurrentLineWidth() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lineWidth
}

// State returns the last resolved transform.
func (c *Context) State() DrawState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// PushedState returns the saved transform, if any.
func (c *Context) PushedState() (DrawState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.pushedState == nil {
		return DrawState{}, false
	}
	return *c.pushedState, true
}

// FrameCount returns how many frames have started.
func (c *Context) FrameCount() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frameCount
}

// Pending returns the number of queued, unresolved draw calls.
func (c *Context) Pending() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.queue)
}

// Frame returns the current frame.
func (c *Context) Frame() Frame {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frame
}

// Size returns the frame width and height.
func (c *Context) Size() (width, height float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width, c.height
}

// Width returns the frame width.
func (c *Context) Width() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width
}

// Height returns the frame height.
func (c *Context) Height() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// MidX returns half the frame width.
func (c *Context) MidX() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.midX
}

// MidY returns half the frame height.
func (c *Context) MidY() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.midY
}

// Mouse returns the current mouse position.
func (c *Context) Mouse() Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mouse
}

// PreviousMouse returns the mouse position before the last move.
func (c *Context) PreviousMouse() Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.previousMouse
}

// MousePressed reports whether the primary button is down.
func (c *Context) MousePressed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mousePressed
}
