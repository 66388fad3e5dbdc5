package tin

import "fmt"

// BrushKind identifies how a primitive is painted.
type BrushKind uint8

const (
	BrushDisabled      BrushKind = iota // Neither filled nor stroked
	BrushFill                           // Filled only
	BrushStroke                         // Stroked only
	BrushFillAndStroke                  // Filled, then stroked
)

var brushKindNames = [...]string{
	BrushDisabled:      "Disabled",
	BrushFill:          "Fill",
	BrushStroke:        "Stroke",
	BrushFillAndStroke: "FillAndStroke",
}

// String returns the name of the kind.
func (k BrushKind) String() string {
	if int(k) < len(brushKindNames) {
		return brushKindNames[k]
	}
	return "Unknown"
}

// Brush is the resolved fill/stroke combination for one primitive.
// Only the colors relevant to Kind are meaningful.
//
// A Brush is derived at resolution time and never stored in the context.
type Brush struct {
	Kind   BrushKind
	Fill   Color
	Stroke Color
	Width  float64 // stroke width after scaling; zero unless the brush strokes
}

// ResolveBrush maps the fill/stroke enable flags and current colors to a
// Brush. Transparent colors still produce Fill or Stroke; culling them is
// up to the renderer.
func ResolveBrush(fillEnabled, strokeEnabled bool, fill, stroke Color) Brush {
	switch {
	case fillEnabled && strokeEnabled:
		return Brush{Kind: BrushFillAndStroke, Fill: fill, Stroke: stroke}
	case fillEnabled:
		return Brush{Kind: BrushFill, Fill: fill}
	case strokeEnabled:
		return Brush{Kind: BrushStroke, Stroke: stroke}
	default:
		return Brush{Kind: BrushDisabled}
	}
}

// FillColor returns the fill color and whether the brush fills.
func (b Brush) FillColor() (Color, bool) {
	if b.Kind == BrushFill || b.Kind == BrushFillAndStroke {
		return b.Fill, true
	}
	return Color{}, false
}

// StrokeColor returns the stroke color and whether the brush strokes.
func (b Brush) StrokeColor() (Color, bool) {
	if b.Kind == BrushStroke || b.Kind == BrushFillAndStroke {
		return b.Stroke, true
	}
	return Color{}, false
}

// String implements fmt.Stringer.
func (b Brush) String() string {
	switch b.Kind {
	case BrushFill:
		return fmt.Sprintf("Fill(%s)", b.Fill.Hex())
	case BrushStroke:
		return fmt.Sprintf("Stroke(%s)", b.Stroke.Hex())
	case BrushFillAndStroke:
		return fmt.Sprintf("FillAndStroke(%s, %s)", b.Fill.Hex(), b.Stroke.Hex())
	default:
		return b.Kind.String()
	}
}
