package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")

// Face is a parsed font usable at any size.
//
// Face is safe for concurrent use.
type Face struct {
	name   string
	sfnt   *opentype.Font
	shaped *gotext.Font

	mu    sync.Mutex
	sized map[fixed.Int26_6]font.Face
}

// Metrics are vertical font metrics at one size, in pixels.
type Metrics struct {
	Ascent  float64
	Descent float64 // positive, below the baseline
	Height  float64 // recommended line height
}

var defaultFace = sync.OnceValue(func() *Face {
	f, err := ParseFace(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("text: parse Go Regular: %v", err))
	}
	return f
})

// DefaultFace returns the built-in Go Regular face.
func DefaultFace() *Face {
	return defaultFace()
}

// ParseFace parses TrueType or OpenType data. The data must not be
// modified afterwards.
func ParseFace(data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	ttf, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	name, _ := otf.Name(nil, sfnt.NameIDFamily)
	return &Face{
		name:   name,
		sfnt:   otf,
		shaped: ttf.Font,
		sized:  make(map[fixed.Int26_6]font.Face),
	}, nil
}

// LoadFace reads and parses the font file at path.
func LoadFace(path string) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: load font: %w", err)
	}
	f, err := ParseFace(data)
	if err != nil {
		return nil, fmt.Errorf("text: load font %s: %w", path, err)
	}
	return f, nil
}

// Name returns the font family name, or "" if the font has none.
func (f *Face) Name() string { return f.name }

// NumGlyphs returns the number of glyphs in the font.
func (f *Face) NumGlyphs() int { return f.sfnt.NumGlyphs() }

// HasGlyph reports whether the font maps r to a glyph.
func (f *Face) HasGlyph(r rune) bool {
	idx, err := f.sfnt.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

// Metrics returns the vertical metrics at size.
func (f *Face) Metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, toFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		Height:  fromFixed(m.Height),
	}
}

// withSized runs fn with an x/image face at size. Faces are cached per
// size and are not safe for concurrent use, so fn runs under f.mu.
func (f *Face) withSized(size float64, fn func(font.Face)) error {
	key := toFixed(size)

	f.mu.Lock()
	defer f.mu.Unlock()

	face, ok := f.sized[key]
	if !ok {
		var err error
		face, err = opentype.NewFace(f.sfnt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return err
		}
		f.sized[key] = face
	}
	fn(face)
	return nil
}

// Close releases the cached sized faces.
func (f *Face) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for k, face := range f.sized {
		errs = append(errs, face.Close())
		delete(f.sized, k)
	}
	return errors.Join(errs...)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
