package tin

// DefaultFontSize is used when a Font has no size.
const DefaultFontSize = 16

// Font selects a typeface for Text draw calls. Name is a TrueType or
// OpenType file path; empty means the renderer's built-in face.
// Loading and shaping happen in the renderer, see package text.
type Font struct {
	Name string
	Size float64
}

// SizeOrDefault returns f.Size, or DefaultFontSize when unset.
func (f Font) SizeOrDefault() float64 {
	if f.Size <= 0 {
		return DefaultFontSize
	}
	return f.Size
}
