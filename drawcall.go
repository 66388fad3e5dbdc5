package tin

// DrawCallType identifies the variant of a DrawCall.
type DrawCallType uint8

const (
	// Color and style calls
	CallBackground DrawCallType = iota // Set the background color
	CallFill                           // Set the fill color and enable fill
	CallStroke                         // Set the stroke color and enable stroke
	CallSetAlpha                       // Overwrite fill and stroke alpha
	CallLineWidth                      // Set the line width
	CallFillEnable                     // Enable fill
	CallFillDisable                    // Disable fill
	CallStrokeEnable                   // Enable stroke
	CallStrokeDisable                  // Disable stroke

	// Geometry calls
	CallArc          // Circular arc
	CallEllipse      // Ellipse in a bounding rectangle
	CallLine         // Line segment
	CallRect         // Axis-aligned rectangle
	CallRoundedRect  // Rectangle with rounded corners
	CallTriangle     // Triangle
	CallPathBegin    // Start a path
	CallPathVertex   // Add a vertex to the path
	CallPathAddCurve // Add a cubic Bezier segment to the path
	CallPathEnd      // Finish the path
	CallImage        // Image blit
	CallText         // Text run

	// Transform calls
	CallPushState // Save the transform
	CallPopState  // Restore the saved transform
	CallTranslate // Accumulate translation
	CallRotate    // Accumulate rotation
	CallScale     // Accumulate scale
)

var drawCallTypeNames = [...]string{
	CallBackground:    "Background",
	CallFill:          "Fill",
	CallStroke:        "Stroke",
	CallSetAlpha:      "SetAlpha",
	CallLineWidth:     "LineWidth",
	CallFillEnable:    "FillEnable",
	CallFillDisable:   "FillDisable",
	CallStrokeEnable:  "StrokeEnable",
	CallStrokeDisable: "StrokeDisable",
	CallArc:           "Arc",
	CallEllipse:       "Ellipse",
	CallLine:          "Line",
	CallRect:          "Rect",
	CallRoundedRect:   "RoundedRect",
	CallTriangle:      "Triangle",
	CallPathBegin:     "PathBegin",
	CallPathVertex:    "PathVertex",
	CallPathAddCurve:  "PathAddCurve",
	CallPathEnd:       "PathEnd",
	CallImage:         "Image",
	CallText:          "Text",
	CallPushState:     "PushState",
	CallPopState:      "PopState",
	CallTranslate:     "Translate",
	CallRotate:        "Rotate",
	CallScale:         "Scale",
}

// String returns the name of the draw call type.
func (t DrawCallType) String() string {
	if int(t) < len(drawCallTypeNames) {
		return drawCallTypeNames[t]
	}
	return "Unknown"
}

// IsGeometry reports whether calls of this type are dispatched to the
// renderer with a resolved brush.
func (t DrawCallType) IsGeometry() bool {
	return t >= CallArc && t <= CallText
}

// DrawCall is a recorded drawing operation, resolved later by
// ProcessDrawCalls. Every variant carries all of its own data.
type DrawCall interface {
	// Type returns the variant of this call.
	Type() DrawCallType
}

// --------------------------------------------------------------------------
// Color and style calls
// --------------------------------------------------------------------------

// BackgroundCall clears the frame to Color.
type BackgroundCall struct{ Color Color }

// Type implements DrawCall.
func (BackgroundCall) Type() DrawCallType { return CallBackground }

// FillCall sets the fill color and enables filling.
type FillCall struct{ Color Color }

// Type implements DrawCall.
func (FillCall) Type() DrawCallType { return CallFill }

// StrokeCall sets the stroke color and enables stroking.
type StrokeCall struct{ Color Color }

// Type implements DrawCall.
func (StrokeCall) Type() DrawCallType { return CallStroke }

// SetAlphaCall overwrites the alpha of the fill and stroke colors.
type SetAlphaCall struct{ Alpha float64 }

// Type implements DrawCall.
func (SetAlphaCall) Type() DrawCallType { return CallSetAlpha }

// LineWidthCall sets the width used by subsequent lines.
type LineWidthCall struct{ Width float64 }

// Type implements DrawCall.
func (LineWidthCall) Type() DrawCallType { return CallLineWidth }

// FillEnableCall enables filling.
type FillEnableCall struct{}

// Type implements DrawCall.
func (FillEnableCall) Type() DrawCallType { return CallFillEnable }

// FillDisableCall disables filling.
type FillDisableCall struct{}

// Type implements DrawCall.
func (FillDisableCall) Type() DrawCallType { return CallFillDisable }

// StrokeEnableCall enables stroking.
type StrokeEnableCall struct{}

// Type implements DrawCall.
func (StrokeEnableCall) Type() DrawCallType { return CallStrokeEnable }

// StrokeDisableCall disables stroking.
type StrokeDisableCall struct{}

// Type implements DrawCall.
func (StrokeDisableCall) Type() DrawCallType { return CallStrokeDisable }

// --------------------------------------------------------------------------
// Geometry calls
// --------------------------------------------------------------------------

// ArcCall draws a circular arc.
type ArcCall struct{ Arc Arc }

// Type implements DrawCall.
func (ArcCall) Type() DrawCallType { return CallArc }

// EllipseCall draws the ellipse inscribed in Bounds.
type EllipseCall struct{ Bounds Rect }

// Type implements DrawCall.
func (EllipseCall) Type() DrawCallType { return CallEllipse }

// LineCall draws a segment between two absolute endpoints.
type LineCall struct{ From, To Point }

// Type implements DrawCall.
func (LineCall) Type() DrawCallType { return CallLine }

// RectCall draws a rectangle.
type RectCall struct{ Rect Rect }

// Type implements DrawCall.
func (RectCall) Type() DrawCallType { return CallRect }

// RoundedRectCall draws a rectangle with rounded corners.
type RoundedRectCall struct{ Rect RoundedRect }

// Type implements DrawCall.
func (RoundedRectCall) Type() DrawCallType { return CallRoundedRect }

// TriangleCall draws a triangle.
type TriangleCall struct{ Triangle Triangle }

// Type implements DrawCall.
func (TriangleCall) Type() DrawCallType { return CallTriangle }

// PathBeginCall starts a new path.
type PathBeginCall struct{}

// Type implements DrawCall.
func (PathBeginCall) Type() DrawCallType { return CallPathBegin }

// PathVertexCall appends a straight segment to the current path.
type PathVertexCall struct{ Point Point }

// Type implements DrawCall.
func (PathVertexCall) Type() DrawCallType { return CallPathVertex }

// PathAddCurveCall appends a cubic Bezier segment to the current path.
type PathAddCurveCall struct {
	To       Point
	Control1 Point
	Control2 Point
}

// Type implements DrawCall.
func (PathAddCurveCall) Type() DrawCallType { return CallPathAddCurve }

// PathEndCall finishes and paints the current path.
type PathEndCall struct{}

// Type implements DrawCall.
func (PathEndCall) Type() DrawCallType { return CallPathEnd }

// ImageCall draws an image. A zero Width or Height means the image's own
// size. Resize asks the renderer to resample rather than stretch.
type ImageCall struct {
	Image  *Image
	X, Y   float64
	Width  float64
	Height float64
	Resize bool
}

// Type implements DrawCall.
func (ImageCall) Type() DrawCallType { return CallImage }

// TextCall draws Message with its baseline starting at (X, Y).
type TextCall struct {
	Message string
	Font    Font
	X, Y    float64
}

// Type implements DrawCall.
func (TextCall) Type() DrawCallType { return CallText }

// --------------------------------------------------------------------------
// Transform calls
// --------------------------------------------------------------------------

// PushStateCall saves the current transform, overwriting any earlier save.
type PushStateCall struct{}

// Type implements DrawCall.
func (PushStateCall) Type() DrawCallType { return CallPushState }

// PopStateCall restores the saved transform.
type PopStateCall struct{}

// Type implements DrawCall.
func (PopStateCall) Type() DrawCallType { return CallPopState }

// TranslateCall adds (DX, DY) to the translation.
type TranslateCall struct{ DX, DY float64 }

// Type implements DrawCall.
func (TranslateCall) Type() DrawCallType { return CallTranslate }

// RotateCall adds Angle radians to the rotation.
type RotateCall struct{ Angle float64 }

// Type implements DrawCall.
func (RotateCall) Type() DrawCallType { return CallRotate }

// ScaleCall adds Amount to the scale factor.
type ScaleCall struct{ Amount float64 }

// Type implements DrawCall.
func (ScaleCall) Type() DrawCallType { return CallScale }
