package colorspace

import "math"

const (
	// labEpsilon is the break point between the cube-root and linear
	// segments of the L*a*b* companding function, (6/29)^3 rounded.
	labEpsilon = 0.008856

	labKappa  = 7.787
	labOffset = 16.0 / 116.0
)

// labF is the forward L*a*b* companding function.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

// labFInv inverts labF. The break is tested on v^3, so a value just
// below the break can take either branch; the resulting error is around
// 1e-5 and accepted.
func labFInv(v float64) float64 {
	cube := v * v * v
	if cube > labEpsilon {
		return cube
	}
	return (v - labOffset) / labKappa
}

// XYZToLab converts normalised XYZ to CIE L*a*b*.
func XYZToLab(x, y, z float64) (l, a, b float64) {
	fx, fy, fz := labF(x), labF(y), labF(z)
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

// LabToXYZ converts CIE L*a*b* to normalised XYZ.
func LabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	return labFInv(fx), labFInv(fy), labFInv(fz)
}
