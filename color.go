package ggcolor

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/gogpu/ggcolor/internal/colorspace"
)

// Color is an RGBA colour with float64 components nominally in [0, 1].
// R, G and B are gamma-encoded sRGB unless a function documents them as
// linear. Alpha is always linear. Components are never clamped on
// construction.
//
// The zero value is transparent black; opaque black is Black.
type Color struct {
	R, G, B, A float64
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// Default returns the default color, opaque black.
func Default() Color {
	return Black
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRgbBytes creates an opaque color from 8-bit channels scaled by 1/255.
func FromRgbBytes(r, g, b uint8) Color {
	return FromRgbaBytes(r, g, b, 255)
}

// FromRgbaBytes creates a color from 8-bit channels scaled by 1/255.
// The channels are straight (not premultiplied).
func FromRgbaBytes(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromColor converts a standard color.Color to Color, undoing the alpha
// premultiplication of the color.Color interface.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGBA implements color.Color. Components are clamped to [0,1] and
// premultiplied by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*65535 + 0.5)
	g = uint32(clamp01(c.G)*alpha*65535 + 0.5)
	b = uint32(clamp01(c.B)*alpha*65535 + 0.5)
	a = uint32(alpha*65535 + 0.5)
	return r, g, b, a
}

// Bytes returns the straight 8-bit channels, clamped and rounded.
func (c Color) Bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

// NRGBA converts the color to a non-premultiplied 8-bit color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Hex formats the color as "#RRGGBB", or "#RRGGBBAA" when not opaque.
func (c Color) Hex() string {
	r, g, b, a := c.Bytes()
	if a == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return "RGBA(" + fmtComponent(c.R) + ", " + fmtComponent(c.G) + ", " +
		fmtComponent(c.B) + ", " + fmtComponent(c.A) + ")"
}

// Inverse returns 1 - component for R, G and B. Alpha is preserved.
func (c Color) Inverse() Color {
	return Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B, A: c.A}
}

// ToLinear gamma-expands the color to linear RGB. Alpha is unchanged.
func (c Color) ToLinear() Color {
	return DefaultConverter().ToLinear(c)
}

// ToGammaEncoded gamma-compresses a linear color to sRGB. Alpha is unchanged.
func (c Color) ToGammaEncoded() Color {
	return DefaultConverter().ToGammaEncoded(c)
}

// ToXYZ converts the color to normalised CIE XYZ.
func (c Color) ToXYZ() CieXYZColor {
	return DefaultConverter().ToXYZ(c)
}

// ToLab converts the color to CIE L*a*b*.
func (c Color) ToLab() CieLabColor {
	return DefaultConverter().ToLab(c)
}

// ToGrayScale reduces the color to gray using mode. Alpha is preserved.
func (c Color) ToGrayScale(mode GrayScaleMode) Color {
	return DefaultConverter().ToGrayScale(c, mode)
}

// GammaCorrect applies the sRGB transfer function to a single component:
// sRGB to linear when expand is set, linear to sRGB otherwise.
// It is never applied to alpha.
func GammaCorrect(v float64, expand bool) float64 {
	return colorspace.GammaCorrect(v, expand)
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

// toByte clamps v to [0,1] and converts to uint8 with rounding.
func toByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func fmtComponent(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
