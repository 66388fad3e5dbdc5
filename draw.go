package tin

// Drawing API. Every method enqueues a single draw call and returns
// immediately; nothing is drawn until ProcessDrawCalls. The package-level
// functions further down forward to the process-wide context.

// --------------------------------------------------------------------------
// Context methods
// --------------------------------------------------------------------------

// Background clears the frame to an opaque color.
func (c *Context) Background(r, g, b float64) {
	c.Enqueue(BackgroundCall{Color: RGBA(r, g, b, 1)})
}

// BackgroundGray clears the frame to an opaque gray.
func (c *Context) BackgroundGray(gray float64) {
	c.Background(gray, gray, gray)
}

// BackgroundWithColor clears the frame to col.
func (c *Context) BackgroundWithColor(col TColor) {
	c.Enqueue(BackgroundCall{Color: ColorOf(col)})
}

// FillColorFromRGBA sets the fill color and enables filling.
func (c *Context) FillColorFromRGBA(r, g, b, a float64) {
	c.Enqueue(FillCall{Color: RGBA(r, g, b, a)})
}

func (c *Context) FillColorFromGray(gray float64) {
	c.FillColorFromRGBA(gray, gray, gray, 1)
}

func (c *Context) FillColorFromGrayAndAlpha(gray, alpha float64) {
	c.FillColorFromRGBA(gray, gray, gray, alpha)
}

func (c *Context) FillColorFromColor(col TColor) {
	c.Enqueue(FillCall{Color: ColorOf(col)})
}

// StrokeColorFromRGBA sets the stroke color and enables stroking.
func (c *Context) StrokeColorFromRGBA(r, g, b, a float64) {
	c.Enqueue(StrokeCall{Color: RGBA(r, g, b, a)})
}

func (c *Context) StrokeColorFromGray(gray float64) {
	c.StrokeColorFromRGBA(gray, gray, gray, 1)
}

func (c *Context) StrokeColorFromGrayAndAlpha(gray, alpha float64) {
	c.StrokeColorFromRGBA(gray, gray, gray, alpha)
}

func (c *Context) StrokeColorFromColor(col TColor) {
	c.Enqueue(StrokeCall{Color: ColorOf(col)})
}

// SetAlpha replaces the alpha of both the fill and the stroke color.
func (c *Context) SetAlpha(alpha float64) {
	c.Enqueue(SetAlphaCall{Alpha: alpha})
}

func (c *Context) FillEnable()    { c.Enqueue(FillEnableCall{}) }
func (c *Context) FillDisable()   { c.Enqueue(FillDisableCall{}) }
func (c *Context) StrokeEnable()  { c.Enqueue(StrokeEnableCall{}) }
func (c *Context) StrokeDisable() { c.Enqueue(StrokeDisableCall{}) }

// LineWidth sets the width of subsequent lines.
func (c *Context) LineWidth(width float64) {
	c.Enqueue(LineWidthCall{Width: width})
}

// DrawRect draws a rectangle with its bottom-left corner at (x, y).
func (c *Context) DrawRect(x, y, width, height float64) {
	c.Enqueue(RectCall{Rect: Rect{X: x, Y: y, Width: width, Height: height}})
}

// DrawRoundedRect draws r with elliptical corners.
func (c *Context) DrawRoundedRect(r Rect, radiusX, radiusY float64) {
	c.Enqueue(RoundedRectCall{Rect: RoundedRect{Rect: r, RadiusX: radiusX, RadiusY: radiusY}})
}

// DrawTriangle draws the triangle (x1,y1) (x2,y2) (x3,y3).
func (c *Context) DrawTriangle(x1, y1, x2, y2, x3, y3 float64) {
	c.Enqueue(TriangleCall{Triangle: Triangle{P1: Pt(x1, y1), P2: Pt(x2, y2), P3: Pt(x3, y3)}})
}

// DrawLine draws a segment using the line width in effect when it is
// resolved.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.Enqueue(LineCall{From: Pt(x1, y1), To: Pt(x2, y2)})
}

// DrawArc draws an arc around (x, y). Angles are in radians.
func (c *Context) DrawArc(x, y, radius, startAngle, endAngle float64) {
	c.Enqueue(ArcCall{Arc: Arc{Center: Pt(x, y), Radius: radius, StartAngle: startAngle, EndAngle: endAngle}})
}

// DrawEllipse draws an ellipse centered on (cx, cy).
func (c *Context) DrawEllipse(cx, cy, width, height float64) {
	c.Enqueue(EllipseCall{Bounds: RectFromCenter(cx, cy, width, height)})
}

// PathBegin starts a free-form path.
func (c *Context) PathBegin() { c.Enqueue(PathBeginCall{}) }

// PathVertex appends a straight segment to (x, y).
func (c *Context) PathVertex(x, y float64) {
	c.Enqueue(PathVertexCall{Point: Pt(x, y)})
}

// PathAddCurve appends a cubic Bezier segment ending at to.
func (c *Context) PathAddCurve(to, control1, control2 Point) {
	c.Enqueue(PathAddCurveCall{To: to, Control1: control1, Control2: control2})
}

// PathEnd closes the path and paints it with the current brush.
func (c *Context) PathEnd() { c.Enqueue(PathEndCall{}) }

// PushState saves the transform. Only one level is kept; a second push
// overwrites the first.
func (c *Context) PushState() { c.Enqueue(PushStateCall{}) }

// PopState restores the transform saved by PushState.
func (c *Context) PopState() { c.Enqueue(PopStateCall{}) }

// Translate moves the origin by (dx, dy).
func (c *Context) Translate(dx, dy float64) {
	c.Enqueue(TranslateCall{DX: dx, DY: dy})
}

// Rotate adds angle radians to the rotation.
func (c *Context) Rotate(angle float64) {
	c.Enqueue(RotateCall{Angle: angle})
}

// Scale adds amount to the scale factor. Scale(1) from the identity
// doubles sizes; Scale(-0.5) halves them.
func (c *Context) Scale(amount float64) {
	c.Enqueue(ScaleCall{Amount: amount})
}

// DrawImage draws img at its natural size with its bottom-left corner at
// (x, y).
func (c *Context) DrawImage(img *Image, x, y float64) {
	c.Enqueue(ImageCall{Image: img, X: x, Y: y})
}

// DrawImageWithSize draws img stretched to width x height.
func (c *Context) DrawImageWithSize(img *Image, x, y, width, height float64) {
	c.Enqueue(ImageCall{Image: img, X: x, Y: y, Width: width, Height: height})
}

// DrawImageWithSizeAndResize draws img at width x height, resampling it
// first when resize is set.
func (c *Context) DrawImageWithSizeAndResize(img *Image, x, y, width, height float64, resize bool) {
	c.Enqueue(ImageCall{Image: img, X: x, Y: y, Width: width, Height: height, Resize: resize})
}

// DrawText draws message with its baseline starting at (x, y).
func (c *Context) DrawText(message string, font Font, x, y float64) {
	c.Enqueue(TextCall{Message: message, Font: font, X: x, Y: y})
}

// --------------------------------------------------------------------------
// Package-level functions
// --------------------------------------------------------------------------

func Background(r, g, b float64) {
	Default().Background(r, g, b)
}

func BackgroundGray(gray float64) {
	Default().BackgroundGray(gray)
}

func BackgroundWithColor(col TColor) {
	Default().BackgroundWithColor(col)
}

func FillColorFromRGBA(r, g, b, a float64) {
	Default().FillColorFromRGBA(r, g, b, a)
}

func FillColorFromGray(gray float64) {
	Default().FillColorFromGray(gray)
}

func FillColorFromGrayAndAlpha(gray, a float64) {
	Default().FillColorFromGrayAndAlpha(gray, a)
}

func FillColorFromColor(col TColor) {
	Default().FillColorFromColor(col)
}

func StrokeColorFromRGBA(r, g, b, a float64) {
	Default().StrokeColorFromRGBA(r, g, b, a)
}

func StrokeColorFromGray(gray float64) {
	Default().StrokeColorFromGray(gray)
}

func StrokeColorFromGrayAndAlpha(gray, a float64) {
	Default().StrokeColorFromGrayAndAlpha(gray, a)
}

func StrokeColorFromColor(col TColor) {
	Default().StrokeColorFromColor(col)
}

func SetAlpha(alpha float64) {
	Default().SetAlpha(alpha)
}

func FillEnable() {
	Default().FillEnable()
}

func FillDisable() {
	Default().FillDisable()
}

func StrokeEnable() {
	Default().StrokeEnable()
}

func StrokeDisable() {
	Default().StrokeDisable()
}

func LineWidth(width float64) {
	Default().LineWidth(width)
}

func DrawRect(x, y, width, height float64) {
	Default().DrawRect(x, y, width, height)
}

func DrawRoundedRect(r Rect, radiusX, radiusY float64) {
	Default().DrawRoundedRect(r, radiusX, radiusY)
}

func DrawTriangle(x1, y1, x2, y2, x3, y3 float64) {
	Default().DrawTriangle(x1, y1, x2, y2, x3, y3)
}

func DrawLine(x1, y1, x2, y2 float64) {
	Default().DrawLine(x1, y1, x2, y2)
}

func DrawArc(x, y, radius, startAngle, endAngle float64) {
	Default().DrawArc(x, y, radius, startAngle, endAngle)
}

func DrawEllipse(cx, cy, width, height float64) {
	Default().DrawEllipse(cx, cy, width, height)
}

func PathBegin() {
	Default().PathBegin()
}

func PathVertex(x, y float64) {
	Default().PathVertex(x, y)
}

func PathAddCurve(to, control1, control2 Point) {
	Default().PathAddCurve(to, control1, control2)
}

func PathEnd() {
	Default().PathEnd()
}

func PushState() {
	Default().PushState()
}

func PopState() {
	Default().PopState()
}

func Translate(dx, dy float64) {
	Default().Translate(dx, dy)
}

func Rotate(angle float64) {
	Default().Rotate(angle)
}

func Scale(amount float64) {
	Default().Scale(amount)
}

func DrawImage(img *Image, x, y float64) {
	Default().DrawImage(img, x, y)
}

func DrawText(message string, font Font, x, y float64) {
	Default().DrawText(message, font, x, y)
}

func DrawImageWithSize(img *Image, x, y, width, height float64) {
	Default().DrawImageWithSize(img, x, y, width, height)
}

func DrawImageWithSizeAndResize(img *Image, x, y, width, height float64, resize bool) {
	Default().DrawImageWithSizeAndResize(img, x, y, width, height, resize)
}

// Prepare prepares the process-wide context for frame.
func Prepare(frame Frame) {
	Default().Prepare(frame)
}

func PrepareForUpdate() {
	Default().PrepareForUpdate()
}

func ProcessDrawCalls() {
	Default().ProcessDrawCalls()
}

func DidFinishUpdate() {
	Default().DidFinishUpdate()
}

func MouseMoved(p Point) {
	Default().MouseMoved(p)
}

// GetFillColor returns the fill color left by the last resolution of the
// process-wide context, not that of calls still in the queue.
func GetFillColor() Color {
	return Default().FillColor()
}

func GetStrokeColor() Color {
	return Default().StrokeColor()
}

func GetBackgroundColor() Color {
	return Default().BackgroundColor()
}

func GetFrameCount() uint64 {
	return Default().FrameCount()
}

func GetMouse() Point {
	return Default().Mouse()
}

func GetPreviousMouse() Point {
	return Default().PreviousMouse()
}

func GetWidth() float64 {
	return Default().Width()
}

func GetHeight() float64 {
	return Default().Height()
}
