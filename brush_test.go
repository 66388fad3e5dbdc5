package tin

import "testing"

func TestResolveBrushTotality(t *testing.T) {
	fill, stroke := Red, Blue
	tests := []struct {
		fill, stroke bool
		want         BrushKind
	}{
		{false, false, BrushDisabled},
		{true, false, BrushFill},
		{false, true, BrushStroke},
		{true, true, BrushFillAndStroke},
	}
	for _, tt := range tests {
		b := ResolveBrush(tt.fill, tt.stroke, fill, stroke)
		if b.Kind != tt.want {
			t.Errorf("ResolveBrush(%v, %v).Kind = %v, want %v", tt.fill, tt.stroke, b.Kind, tt.want)
		}
		if c, ok := b.FillColor(); ok != tt.fill || (ok && c != fill) {
			t.Errorf("ResolveBrush(%v, %v).FillColor() = %v, %v", tt.fill, tt.stroke, c, ok)
		}
		if c, ok := b.StrokeColor(); ok != tt.stroke || (ok && c != stroke) {
			t.Errorf("ResolveBrush(%v, %v).StrokeColor() = %v, %v", tt.fill, tt.stroke, c, ok)
		}
	}
}

func TestResolveBrushKeepsTransparentColors(t *testing.T) {
	b := ResolveBrush(true, false, Clear, Black)
	if b.Kind != BrushFill || b.Fill != Clear {
		t.Errorf("transparent fill resolved to %v", b)
	}
}

func TestBrushString(t *testing.T) {
	tests := []struct {
		b    Brush
		want string
	}{
		{Brush{Kind: BrushDisabled}, "Disabled"},
		{Brush{Kind: BrushFill, Fill: Red}, "Fill(#FF0000FF)"},
		{Brush{Kind: BrushStroke, Stroke: Blue}, "Stroke(#0000FFFF)"},
		{Brush{Kind: BrushFillAndStroke, Fill: White, Stroke: Black}, "FillAndStroke(#FFFFFFFF, #000000FF)"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := BrushKind(9).String(); got != "Unknown" {
		t.Errorf("BrushKind(9).String() = %q", got)
	}
}
