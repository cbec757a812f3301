// Package colorspace implements the colorimetric transforms behind ggcolor:
// the sRGB transfer function, linear RGB to CIE XYZ (D65), CIE XYZ to
// CIE L*a*b*, and RGB to HSV.
//
// The transforms that benefit from 4-lane arithmetic are exposed through
// the Kernel interface, which has a scalar and a vector implementation.
// Both evaluate the same formulas in the same order, so they agree to the
// last bit on hardware that does not fuse multiply-add, and within a few
// ULP where it does.
//
// All functions are pure and safe for concurrent use.
package colorspace

// D65 reference white used to normalise XYZ so that white maps to (1, 1, 1).
const (
	RefX = 0.950456
	RefY = 1.0
	RefZ = 1.088754
)

// Kernel computes the vectorisable colour transforms.
// Implementations must be stateless.
type Kernel interface {
	// Name identifies the implementation in logs.
	Name() string

	// Expand gamma-expands sRGB components to linear RGB.
	Expand(r, g, b float64) (float64, float64, float64)

	// Compress gamma-compresses linear RGB components to sRGB.
	Compress(r, g, b float64) (float64, float64, float64)

	// LinearToXYZ maps linear RGB to reference-white normalised XYZ.
	LinearToXYZ(r, g, b float64) (x, y, z float64)

	// XYZToLinear maps normalised XYZ to linear RGB clamped to [0,1].
	XYZToLinear(x, y, z float64) (r, g, b float64)

	// XYZToLab maps normalised XYZ to CIE L*a*b*.
	XYZToLab(x, y, z float64) (l, a, b float64)

	// LabToXYZ maps CIE L*a*b* to normalised XYZ.
	LabToXYZ(l, a, b float64) (x, y, z float64)

	// Luminosity returns the Rec. 709 weighted sum of r, g, b.
	Luminosity(r, g, b float64) float64
}
