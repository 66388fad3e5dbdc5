package tin

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// TColor is implemented by every color representation in tin.
// Channels are reported in the range [0, 1].
type TColor interface {
	GetRed() float64
	GetGreen() float64
	GetBlue() float64
	GetAlpha() float64
}

// Color is a 4-channel color with floating-point channels.
//
// Construction stores channels as given. The setters clamp to [0, 1],
// as do conversions to fixed-point representations.
type Color struct {
	Red, Green, Blue, Alpha float64
}

// Verify at compile time that both representations satisfy TColor.
var (
	_ TColor = Color{}
	_ TColor = PackedColor(0)
)

// RGBA creates a color from red, green, blue and alpha channels.
func RGBA(r, g, b, a float64) Color {
	return Color{Red: r, Green: g, Blue: b, Alpha: a}
}

// Gray creates an opaque gray.
func Gray(g float64) Color {
	return Color{Red: g, Green: g, Blue: g, Alpha: 1}
}

// GrayAlpha creates a gray with the given alpha.
func GrayAlpha(g, a float64) Color {
	return Color{Red: g, Green: g, Blue: g, Alpha: a}
}

// ColorOf copies any TColor into a Color.
func ColorOf(c TColor) Color {
	return Color{Red: c.GetRed(), Green: c.GetGreen(), Blue: c.GetBlue(), Alpha: c.GetAlpha()}
}

// Library default colors.
var (
	DefaultFillColor       = Color{Red: 0.7, Green: 0.7, Blue: 0.7, Alpha: 1}
	DefaultStrokeColor     = Color{Red: 0.1, Green: 0.1, Blue: 0.1, Alpha: 1}
	DefaultBackgroundColor = Color{Red: 1, Green: 1, Blue: 1, Alpha: 1}
)

// Common colors.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
	Clear = Color{0, 0, 0, 0}
)

func (c Color) GetRed() float64   { return c.Red }
func (c Color) GetGreen() float64 { return c.Green }
func (c Color) GetBlue() float64  { return c.Blue }
func (c Color) GetAlpha() float64 { return c.Alpha }

// SetRed sets the red channel, clamped to [0, 1].
func (c *Color) SetRed(v float64) { c.Red = clamp01(v) }

// SetGreen sets the green channel, clamped to [0, 1].
func (c *Color) SetGreen(v float64) { c.Green = clamp01(v) }

// SetBlue sets the blue channel, clamped to [0, 1].
func (c *Color) SetBlue(v float64) { c.Blue = clamp01(v) }

// SetAlpha sets the alpha channel, clamped to [0, 1].
func (c *Color) SetAlpha(v float64) { c.Alpha = clamp01(v) }

// WithAlpha returns a copy of c with the alpha channel replaced.
// Red, green and blue are left untouched.
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = a
	return c
}

// ---------------------------------------------------------------------------
// Derived values
// ---------------------------------------------------------------------------

func (c Color) maxMin() (float64, float64) {
	maxC := math.Max(c.Red, math.Max(c.Green, c.Blue))
	minC := math.Min(c.Red, math.Min(c.Green, c.Blue))
	return maxC, minC
}

// Hue returns the hue in degrees in [0, 360).
// Achromatic colors (max-min below 1e-5) have hue 0.
func (c Color) Hue() float64 {
	maxC, minC := c.maxMin()
	delta := maxC - minC
	if delta < 1e-5 {
		return 0
	}

	var h float64
	switch maxC {
	case c.Red:
		h = (c.Green - c.Blue) / delta
	case c.Green:
		h = 2 + (c.Blue-c.Red)/delta
	default:
		h = 4 + (c.Red-c.Green)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

// Saturation returns delta/max in the HSV sense, or 0 for black.
func (c Color) Saturation() float64 {
	maxC, minC := c.maxMin()
	if maxC < 1e-5 {
		return 0
	}
	return (maxC - minC) / maxC
}

// Value returns the largest of the red, green and blue channels.
func (c Color) Value() float64 {
	maxC, _ := c.maxMin()
	return maxC
}

// Luminance returns the Rec. 709 relative luminance.
func (c Color) Luminance() float64 {
	return 0.2126*c.Red + 0.7152*c.Green + 0.0722*c.Blue
}

// Lightness returns (max+min)/2 in the HSL sense.
func (c Color) Lightness() float64 {
	maxC, minC := c.maxMin()
	return (maxC + minC) / 2
}

// Brightness returns the mean of the red, green and blue channels.
func (c Color) Brightness() float64 {
	return (c.Red + c.Green + c.Blue) / 3
}

// ---------------------------------------------------------------------------
// Conversions
// ---------------------------------------------------------------------------

// PackedColor stores a color in 32 bits, 8 bits per channel.
// Red occupies the most significant byte, alpha the least significant.
type PackedColor uint32

// Packed converts c to its 8-bit-per-channel form.
// Channels are clamped to [0, 1] and rounded to the nearest step.
func (c Color) Packed() PackedColor {
	return PackRGBA(to8(c.Red), to8(c.Green), to8(c.Blue), to8(c.Alpha))
}

// PackRGBA assembles a PackedColor from 8-bit channels.
func PackRGBA(r, g, b, a uint8) PackedColor {
	return PackedColor(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red byte.
func (p PackedColor) R() uint8 { return uint8(p >> 24) }

// G returns the green byte.
func (p PackedColor) G() uint8 { return uint8(p >> 16) }

// B returns the blue byte.
func (p PackedColor) B() uint8 { return uint8(p >> 8) }

// A returns the alpha byte.
func (p PackedColor) A() uint8 { return uint8(p) }

func (p PackedColor) GetRed() float64   { return float64(p.R()) / 255 }
func (p PackedColor) GetGreen() float64 { return float64(p.G()) / 255 }
func (p PackedColor) GetBlue() float64  { return float64(p.B()) / 255 }
func (p PackedColor) GetAlpha() float64 { return float64(p.A()) / 255 }

// Color expands p into floating-point channels.
func (p PackedColor) Color() Color {
	return ColorOf(p)
}

// String returns the color as #RRGGBBAA.
func (p PackedColor) String() string {
	return fmt.Sprintf("#%08X", uint32(p))
}

// NRGBA converts c to a standard library color, non-premultiplied.
func (c Color) NRGBA() color.NRGBA {
	p := c.Packed()
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// RGBA implements color.Color so a Color can be handed directly to
// image/draw and friends.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex returns c as #RRGGBBAA.
func (c Color) Hex() string {
	return c.Packed().String()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("Color(%.3g, %.3g, %.3g, %.3g)", c.Red, c.Green, c.Blue, c.Alpha)
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional). Missing alpha means opaque.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("tin: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("tin: invalid hex color %q: %w", s, err)
	}
	return PackedColor(v).Color(), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
