package ggcolor

import "errors"

// Valid ranges checked by CieLabColor.Validate.
const (
	LabMinL  = 0.0
	LabMaxL  = 100.0
	LabMinAB = -110.0
	LabMaxAB = 110.0
)

// CieLabColor is a CIE L*a*b* colour relative to ReferenceWhite.
//
// The conversion from XYZ has an algorithmic error around 1e-5; after
// rounding to 8-bit channels this can show as a difference of one unit.
type CieLabColor struct {
	L, A, B float64
}

// Validate reports every component outside L ∈ [0,100], a, b ∈ [-110,110].
// Construction never validates; call Validate explicitly.
func (lab CieLabColor) Validate() error {
	return errors.Join(
		checkRange("Lab", "L", lab.L, LabMinL, LabMaxL),
		checkRange("Lab", "a", lab.A, LabMinAB, LabMaxAB),
		checkRange("Lab", "b", lab.B, LabMinAB, LabMaxAB),
	)
}

// ToXYZ converts the Lab colour to normalised CIE XYZ.
func (lab CieLabColor) ToXYZ() CieXYZColor {
	return DefaultConverter().LabToXYZ(lab)
}

// FromLab converts CIE L*a*b* to an opaque sRGB color.
// Out-of-gamut results are clamped to [0,1] rather than reported.
func FromLab(lab CieLabColor) Color {
	return DefaultConverter().FromLab(lab)
}
