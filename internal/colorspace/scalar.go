package colorspace

// Luma weights of Rec. 709, shared with sRGB.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Scalar computes every transform with independent float64 operations.
type Scalar struct{}

var _ Kernel = Scalar{}

// Name implements Kernel.
func (Scalar) Name() string { return "scalar" }

// Expand implements Kernel.
func (Scalar) Expand(r, g, b float64) (float64, float64, float64) {
	return GammaCorrect(r, true), GammaCorrect(g, true), GammaCorrect(b, true)
}

// Compress implements Kernel.
func (Scalar) Compress(r, g, b float64) (float64, float64, float64) {
	return GammaCorrect(r, false), GammaCorrect(g, false), GammaCorrect(b, false)
}

// LinearToXYZ implements Kernel.
func (Scalar) LinearToXYZ(r, g, b float64) (x, y, z float64) {
	return LinearToXYZ(r, g, b)
}

// XYZToLinear implements Kernel.
func (Scalar) XYZToLinear(x, y, z float64) (r, g, b float64) {
	return XYZToLinear(x, y, z)
}

// XYZToLab implements Kernel.
func (Scalar) XYZToLab(x, y, z float64) (l, a, b float64) {
	return XYZToLab(x, y, z)
}

// LabToXYZ implements Kernel.
func (Scalar) LabToXYZ(l, a, b float64) (x, y, z float64) {
	return LabToXYZ(l, a, b)
}

// Luminosity implements Kernel.
func (Scalar) Luminosity(r, g, b float64) float64 {
	return LumaR*r + LumaG*g + LumaB*b
}
