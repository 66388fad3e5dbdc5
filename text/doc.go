// Package text loads fonts and draws text for tin renderers.
//
// A Face is a parsed TrueType or OpenType font. It is size independent:
// Measure and Draw take the size in pixels per em. Shaping goes through
// HarfBuzz (go-text/typesetting) and glyphs are drawn with
// golang.org/x/image/font.
//
//	face := text.DefaultFace()
//	w, h := text.Measure(face, 24, "Hello")
//	text.Draw(dst, face, 24, "Hello", 10, 40, color.Black)
//
// Lookup resolves a tin.Font to a Face, loading font files on first use.
package text
