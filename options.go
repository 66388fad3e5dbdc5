package tin

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Resolve into a registered backend
//	ctx := tin.NewContext(tin.WithRendererName("raster"))
//
//	// Inject a renderer directly
//	ctx := tin.NewContext(tin.WithRenderer(rec))
type ContextOption func(*contextOptions)

type contextOptions struct {
	renderer     Renderer
	rendererName string
	lineWidth    float64
}

func defaultOptions() contextOptions {
	return contextOptions{
		lineWidth: DefaultLineWidth,
	}
}

// WithRenderer sets the renderer that resolved primitives are sent to.
// It takes precedence over WithRendererName.
func WithRenderer(r Renderer) ContextOption {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithRendererName selects a renderer from the registry. An unknown name
// makes NewContext panic; use NewRenderer first to handle the error.
func WithRendererName(name string) ContextOption {
	return func(o *contextOptions) {
		o.rendererName = name
	}
}

// WithLineWidth overrides the default line width restored at the start of
// every frame.
func WithLineWidth(w float64) ContextOption {
	return func(o *contextOptions) {
		o.lineWidth = w
	}
}
