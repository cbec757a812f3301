package colorspace

import "github.com/gogpu/ggcolor/internal/wide"

// Vector computes the transforms on wide.F64x4 values: lanes 0-2 carry the
// three channels and lane 3 is zero padding. Every lane operation mirrors
// the corresponding scalar expression, operand order included.
type Vector struct{}

var _ Kernel = Vector{}

var (
	whiteLanes   = wide.F64x4{RefX, RefY, RefZ, 1}
	lumaLanes    = wide.Load3(LumaR, LumaG, LumaB)
	labScale     = wide.Load3(116, 500, 200)
	labBias      = wide.Load3(16, 0, 0)
	labABDivisor = wide.F64x4{500, 1, 200, 1}

	fwdCols = columns(&LinearToXYZMatrix)
	invCols = columns(&XYZToLinearMatrix)
)

// columns splits m into its three columns, padded to four lanes.
func columns(m *Mat3) [3]wide.F64x4 {
	return [3]wide.F64x4{
		wide.Load3(m[0][0], m[1][0], m[2][0]),
		wide.Load3(m[0][1], m[1][1], m[2][1]),
		wide.Load3(m[0][2], m[1][2], m[2][2]),
	}
}

// mulCols evaluates cols * (a, b, c) as (c0*a + c1*b) + c2*c per lane,
// the same association as Mat3.Apply.
func mulCols(cols *[3]wide.F64x4, a, b, c float64) wide.F64x4 {
	return cols[0].Scale(a).MulAdd(cols[1], b).MulAdd(cols[2], c)
}

// Name implements Kernel.
func (Vector) Name() string { return "vector" }

// Expand implements Kernel.
func (Vector) Expand(r, g, b float64) (float64, float64, float64) {
	v := wide.Load3(r, g, b)
	curve := v.Add(wide.SplatF64(gammaOffset)).Div(wide.SplatF64(gammaScale)).Pow(gammaPower)
	linear := v.Div(wide.SplatF64(gammaSlope))
	return wide.Select(v.Greater(gammaThreshold), curve, linear).Lanes3()
}

// Compress implements Kernel.
func (Vector) Compress(r, g, b float64) (float64, float64, float64) {
	v := wide.Load3(r, g, b)
	curve := v.Pow(1 / gammaPower).Scale(gammaScale).Sub(wide.SplatF64(gammaOffset))
	linear := v.Scale(gammaSlope)
	return wide.Select(v.Greater(linearThreshold), curve, linear).Lanes3()
}

// LinearToXYZ implements Kernel.
func (Vector) LinearToXYZ(r, g, b float64) (x, y, z float64) {
	return mulCols(&fwdCols, r, g, b).Div(whiteLanes).Lanes3()
}

// XYZToLinear implements Kernel.
func (Vector) XYZToLinear(x, y, z float64) (r, g, b float64) {
	s := wide.Load3(x, y, z).Mul(whiteLanes)
	return mulCols(&invCols, s[0], s[1], s[2]).Clamp(0, 1).Lanes3()
}

// XYZToLab implements Kernel.
func (Vector) XYZToLab(x, y, z float64) (l, a, b float64) {
	f := labFLanes(wide.Load3(x, y, z))
	fx, fy, fz := f.Lanes3()
	d := wide.Load3(fy, fx, fy).Sub(wide.Load3(0, fy, fz))
	return d.Mul(labScale).Sub(labBias).Lanes3()
}

// LabToXYZ implements Kernel.
func (Vector) LabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	ab := wide.Load3(a, 0, -b).Div(labABDivisor)
	f := wide.Load3(fy, fy, fy).Add(ab)
	return labFInvLanes(f).Lanes3()
}

// Luminosity implements Kernel.
func (Vector) Luminosity(r, g, b float64) float64 {
	return lumaLanes.Mul(wide.Load3(r, g, b)).Sum3()
}

func labFLanes(t wide.F64x4) wide.F64x4 {
	linear := t.Scale(labKappa).Add(wide.SplatF64(labOffset))
	return wide.Select(t.Greater(labEpsilon), t.Cbrt(), linear)
}

func labFInvLanes(v wide.F64x4) wide.F64x4 {
	cube := v.Mul(v).Mul(v)
	linear := v.Sub(wide.SplatF64(labOffset)).Div(wide.SplatF64(labKappa))
	return wide.Select(cube.Greater(labEpsilon), cube, linear)
}
