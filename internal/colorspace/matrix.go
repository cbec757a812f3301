package colorspace

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// LinearToXYZMatrix converts linear sRGB to D65 XYZ before normalisation.
var LinearToXYZMatrix = Mat3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// XYZToLinearMatrix is the exact numeric inverse of LinearToXYZMatrix.
// It is derived rather than tabulated so that a round trip is limited by
// float64 rounding only.
var XYZToLinearMatrix = LinearToXYZMatrix.Inverse()

// Apply returns m * (a, b, c).
func (m *Mat3) Apply(a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m via the adjugate.
// The result is undefined (contains Inf or NaN) for a singular matrix.
func (m Mat3) Inverse() Mat3 {
	inv := 1 / m.Det()
	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

// LinearToXYZ converts linear RGB to XYZ normalised by the D65 white.
// Y needs no scaling because RefY is 1.
func LinearToXYZ(r, g, b float64) (x, y, z float64) {
	x, y, z = LinearToXYZMatrix.Apply(r, g, b)
	return x / RefX, y, z / RefZ
}

// XYZToLinear converts normalised XYZ back to linear RGB.
// Out-of-gamut results are clamped to [0,1] without error.
func XYZToLinear(x, y, z float64) (r, g, b float64) {
	r, g, b = XYZToLinearMatrix.Apply(x*RefX, y, z*RefZ)
	return clamp01(r), clamp01(g), clamp01(b)
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
