package colorspace

import "math"

const (
	// gammaThreshold is the sRGB value where the transfer curve switches
	// from linear to power law.
	gammaThreshold = 0.04045

	// linearThreshold is gammaThreshold mapped through the linear segment.
	linearThreshold = gammaThreshold / 12.92

	gammaSlope  = 12.92
	gammaOffset = 0.055
	gammaScale  = 1.055
	gammaPower  = 2.4
)

// GammaCorrect applies the sRGB transfer function to one component.
//
// With expand set it converts sRGB to linear (EOTF):
//
//	v > 0.04045: ((v + 0.055) / 1.055) ^ 2.4
//	otherwise:   v / 12.92
//
// Otherwise it converts linear to sRGB (OETF):
//
//	v > 0.04045/12.92: 1.055 * v^(1/2.4) - 0.055
//	otherwise:         v * 12.92
//
// The function is total; negative inputs follow math.Pow semantics.
func GammaCorrect(v float64, expand bool) float64 {
	if expand {
		if v > gammaThreshold {
			return math.Pow((v+gammaOffset)/gammaScale, gammaPower)
		}
		return v / gammaSlope
	}
	if v > linearThreshold {
		return gammaScale*math.Pow(v, 1/gammaPower) - gammaOffset
	}
	return v * gammaSlope
}
