package tin

// Renderer receives resolved primitives from ProcessDrawCalls.
//
// Geometry has already been mapped through the DrawState that is passed
// alongside it; the state is informational. Each primitive is paired with
// the Brush computed at the moment it was resolved.
//
// A renderer that cannot draw a primitive must call Unsupported, which
// panics. Dropping geometry silently is not allowed.
type Renderer interface {
	// Prepare is called once, before the first frame.
	Prepare(frame Frame)

	// PrepareForUpdate and DidFinishUpdate bracket every frame.
	PrepareForUpdate()
	DidFinishUpdate()

	// Background clears the frame.
	Background(c Color)

	// Rect receives the closed five-point outline of a rectangle.
	Rect(corners []Point, b Brush, s DrawState)
	// Triangle receives exactly three points.
	Triangle(points []Point, b Brush, s DrawState)
	// Line receives the closed five-point quad a segment expands to.
	Line(quad []Point, b Brush, s DrawState)

	Arc(a Arc, b Brush, s DrawState)
	Ellipse(bounds Rect, b Brush, s DrawState)
	RoundedRect(r RoundedRect, b Brush, s DrawState)
	Image(img *Image, dst Rect, resize bool, b Brush, s DrawState)
	Text(message string, font Font, at Point, b Brush, s DrawState)

	PathBegin()
	PathVertex(p Point, b Brush, s DrawState)
	PathAddCurve(to, control1, control2 Point, b Brush, s DrawState)
	PathEnd(b Brush, s DrawState)

	// PushState and PopState are notifications only.
	PushState()
	PopState()
}

// BaseRenderer implements Renderer with no-op lifecycle hooks and
// Unsupported panics for every primitive. Embed it and override the
// primitives a backend can draw.
type BaseRenderer struct {
	// Name identifies the backend in UnsupportedError messages.
	Name string
}

var _ Renderer = BaseRenderer{}

func (r BaseRenderer) backend() string {
	if r.Name == "" {
		return "renderer"
	}
	return r.Name
}

func (BaseRenderer) Prepare(Frame)     {}
func (BaseRenderer) PrepareForUpdate() {}
func (BaseRenderer) DidFinishUpdate()  {}
func (BaseRenderer) Background(Color)  {}
func (BaseRenderer) PathBegin()        {}
func (BaseRenderer) PushState()        {}
func (BaseRenderer) PopState()         {}

func (r BaseRenderer) Rect([]Point, Brush, DrawState) {
	Unsupported(r.backend(), CallRect)
}

func (r BaseRenderer) Triangle([]Point, Brush, DrawState) {
	Unsupported(r.backend(), CallTriangle)
}

func (r BaseRenderer) Line([]Point, Brush, DrawState) {
	Unsupported(r.backend(), CallLine)
}

func (r BaseRenderer) Arc(Arc, Brush, DrawState) {
	Unsupported(r.backend(), CallArc)
}

func (r BaseRenderer) Ellipse(Rect, Brush, DrawState) {
	Unsupported(r.backend(), CallEllipse)
}

func (r BaseRenderer) RoundedRect(RoundedRect, Brush, DrawState) {
	Unsupported(r.backend(), CallRoundedRect)
}

func (r BaseRenderer) Image(*Image, Rect, bool, Brush, DrawState) {
	Unsupported(r.backend(), CallImage)
}

func (r BaseRenderer) Text(string, Font, Point, Brush, DrawState) {
	Unsupported(r.backend(), CallText)
}

func (r BaseRenderer) PathVertex(Point, Brush, DrawState) {
	Unsupported(r.backend(), CallPathVertex)
}

func (r BaseRenderer) PathAddCurve(Point, Point, Point, Brush, DrawState) {
	Unsupported(r.backend(), CallPathAddCurve)
}

func (r BaseRenderer) PathEnd(Brush, DrawState) {
	Unsupported(r.backend(), CallPathEnd)
}

// nullRenderer discards everything. It backs contexts created without a
// renderer so that resolution can run before a backend is attached.
type nullRenderer struct{}

func (nullRenderer) Prepare(Frame)                                      {}
func (nullRenderer) PrepareForUpdate()                                  {}
func (nullRenderer) DidFinishUpdate()                                   {}
func (nullRenderer) Background(Color)                                   {}
func (nullRenderer) Rect([]Point, Brush, DrawState)                     {}
func (nullRenderer) Triangle([]Point, Brush, DrawState)                 {}
func (nullRenderer) Line([]Point, Brush, DrawState)                     {}
func (nullRenderer) Arc(Arc, Brush, DrawState)                          {}
func (nullRenderer) Ellipse(Rect, Brush, DrawState)                     {}
func (nullRenderer) RoundedRect(RoundedRect, Brush, DrawState)          {}
func (nullRenderer) Image(*Image, Rect, bool, Brush, DrawState)         {}
func (nullRenderer) Text(string, Font, Point, Brush, DrawState)         {}
func (nullRenderer) PathBegin()                                         {}
func (nullRenderer) PathVertex(Point, Brush, DrawState)                 {}
func (nullRenderer) PathAddCurve(Point, Point, Point, Brush, DrawState) {}
func (nullRenderer) PathEnd(Brush, DrawState)                           {}
func (nullRenderer) PushState()                                         {}
func (nullRenderer) PopState()                                          {}
