package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the base direction of a run of text.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// DetectDirection returns the direction of the first strong character
// in s. Text without one is left to right.
func DetectDirection(s string) Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
	}
	return LeftToRight
}

// Glyph is one shaped glyph, positioned relative to the run origin.
type Glyph struct {
	ID      uint16
	Cluster int // index of the first rune the glyph belongs to
	X, Y    float64
	Advance float64
}

// HarfbuzzShaper has internal buffers and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

func shape(f *Face, size float64, s string) shaping.Output {
	runes := []rune(s)
	dir := di.DirectionLTR
	if DetectDirection(s) == RightToLeft {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gotext.NewFace(f.shaped),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)
	return out
}

// Shape converts s into positioned glyphs at size.
func Shape(f *Face, size float64, s string) []Glyph {
	if s == "" || f == nil {
		return nil
	}
	out := shape(f, size, s)

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fromFixed(g.XOffset),
			Y:       fromFixed(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return glyphs
}

// Measure returns the shaped advance of s and the line height at size.
func Measure(f *Face, size float64, s string) (width, height float64) {
	if f == nil {
		return 0, 0
	}
	height = f.Metrics(size).Height
	if s == "" {
		return 0, height
	}
	return fromFixed(shape(f, size, s).Advance), height
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
