package ggcolor

import (
	"github.com/gogpu/ggcolor/internal/colorspace"
	"github.com/gogpu/ggcolor/internal/wide"
)

// Converter performs colour conversions with a fixed execution strategy.
//
// A Converter is immutable after NewConverter returns and is safe for
// concurrent use. Most callers use the Color methods, which delegate to
// DefaultConverter; construct a Converter to pin a strategy or to control
// the parallelism of the image methods.
type Converter struct {
	strategy Strategy
	kernel   colorspace.Kernel
	workers  int
}

// NewConverter creates a Converter. StrategyAuto is resolved immediately.
func NewConverter(opts ...ConverterOption) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := o.strategy.resolve()
	cv := &Converter{
		strategy: s,
		kernel:   s.kernel(),
		workers:  o.workers,
	}

	Logger().Debug("ggcolor: converter created",
		"requested", o.strategy.String(),
		"strategy", s.String(),
		"accelerated", wide.Accelerated(),
		"features", wide.Features())
	return cv
}

// Strategy returns the concrete strategy in use (never StrategyAuto).
func (cv *Converter) Strategy() Strategy {
	return cv.strategy
}

// ToLinear gamma-expands R, G, B. Alpha is unchanged.
func (cv *Converter) ToLinear(c Color) Color {
	r, g, b := cv.kernel.Expand(c.R, c.G, c.B)
	return Color{R: r, G: g, B: b, A: c.A}
}

// ToGammaEncoded gamma-compresses linear R, G, B. Alpha is unchanged.
func (cv *Converter) ToGammaEncoded(c Color) Color {
	r, g, b := cv.kernel.Compress(c.R, c.G, c.B)
	return Color{R: r, G: g, B: b, A: c.A}
}

// ToXYZ converts an sRGB colour to normalised CIE XYZ. Alpha is dropped.
func (cv *Converter) ToXYZ(c Color) CieXYZColor {
	x, y, z := cv.kernel.LinearToXYZ(cv.kernel.Expand(c.R, c.G, c.B))
	return CieXYZColor{X: x, Y: y, Z: z}
}

// FromXYZ converts normalised CIE XYZ to an opaque sRGB colour.
// Out-of-gamut values are clamped to [0,1] in linear RGB.
func (cv *Converter) FromXYZ(xyz CieXYZColor) Color {
	r, g, b := cv.kernel.Compress(cv.kernel.XYZToLinear(xyz.X, xyz.Y, xyz.Z))
	return Color{R: r, G: g, B: b, A: 1}
}

// XYZToLab converts normalised CIE XYZ to CIE L*a*b*.
func (cv *Converter) XYZToLab(xyz CieXYZColor) CieLabColor {
	l, a, b := cv.kernel.XYZToLab(xyz.X, xyz.Y, xyz.Z)
	return CieLabColor{L: l, A: a, B: b}
}

// LabToXYZ converts CIE L*a*b* to normalised CIE XYZ.
func (cv *Converter) LabToXYZ(lab CieLabColor) CieXYZColor {
	x, y, z := cv.kernel.LabToXYZ(lab.L, lab.A, lab.B)
	return CieXYZColor{X: x, Y: y, Z: z}
}

// ToLab converts an sRGB colour to CIE L*a*b*. Alpha is dropped.
func (cv *Converter) ToLab(c Color) CieLabColor {
	return cv.XYZToLab(cv.ToXYZ(c))
}

// FromLab converts CIE L*a*b* to an opaque sRGB colour, clamping
// out-of-gamut results.
func (cv *Converter) FromLab(lab CieLabColor) Color {
	return cv.FromXYZ(cv.LabToXYZ(lab))
}
