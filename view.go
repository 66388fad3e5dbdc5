package tin

// DefaultFPS is the frame rate a View targets unless configured.
const DefaultFPS = 60

// View describes the window a scene is presented in.
type View struct {
	Title string
	Frame Frame
	FPS   int
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithTitle sets the window title.
func WithTitle(title string) ViewOption {
	return func(v *View) { v.Title = title }
}

// WithFrame sets the frame size.
func WithFrame(f Frame) ViewOption {
	return func(v *View) { v.Frame = NewFrame(f.Width, f.Height) }
}

// WithFPS sets the target frame rate. Values below 1 are ignored.
func WithFPS(fps int) ViewOption {
	return func(v *View) {
		if fps > 0 {
			v.FPS = fps
		}
	}
}

// NewView returns a 600x480 view at 60 fps, adjusted by opts.
func NewView(opts ...ViewOption) View {
	v := View{Title: "tin", Frame: DefaultFrame(), FPS: DefaultFPS}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}
