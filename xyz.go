package ggcolor

import "github.com/gogpu/ggcolor/internal/colorspace"

// CieXYZColor is a CIE 1931 XYZ colour referenced to D65 and normalised so
// that the reference white is approximately (1, 1, 1). No validation is
// performed.
type CieXYZColor struct {
	X, Y, Z float64
}

// ReferenceWhite is the D65 white point used for normalisation.
var ReferenceWhite = CieXYZColor{X: colorspace.RefX, Y: colorspace.RefY, Z: colorspace.RefZ}

// FromXYZ converts normalised XYZ to an opaque sRGB color.
// Out-of-gamut results are clamped to [0,1].
func FromXYZ(xyz CieXYZColor) Color {
	return DefaultConverter().FromXYZ(xyz)
}

// ToLab converts the XYZ colour to CIE L*a*b*.
func (xyz CieXYZColor) ToLab() CieLabColor {
	return DefaultConverter().XYZToLab(xyz)
}
