package tin

// Default frame dimensions.
const (
	DefaultFrameWidth  = 600
	DefaultFrameHeight = 480
)

// Frame is the size of the drawing surface in logical units.
type Frame struct {
	Width, Height int
}

// NewFrame returns a frame of the given size. Each dimension is at least 1.
func NewFrame(width, height int) Frame {
	return Frame{Width: max(width, 1), Height: max(height, 1)}
}

// DefaultFrame returns a 600x480 frame.
func DefaultFrame() Frame {
	return Frame{Width: DefaultFrameWidth, Height: DefaultFrameHeight}
}

// Rect returns the frame as a rectangle anchored at the origin.
func (f Frame) Rect() Rect {
	return Rect{Width: float64(f.Width), Height: float64(f.Height)}
}
