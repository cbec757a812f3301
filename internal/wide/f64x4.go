package wide

import "math"

// F64x4 represents 4 float64 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F64x4 [4]float64

// Mask4 holds one boolean per lane, produced by comparisons and consumed by Select.
type Mask4 [4]bool

// SplatF64 creates F64x4 with all elements set to n.
func SplatF64(n float64) F64x4 {
	var result F64x4
	for i := range result {
		result[i] = n
	}
	return result
}

// Load3 packs three channel values into lanes 0-2 and zeroes the padding lane.
func Load3(a, b, c float64) F64x4 {
	return F64x4{a, b, c, 0}
}

// Lanes3 extracts lanes 0-2. The padding lane is ignored.
func (v F64x4) Lanes3() (a, b, c float64) {
	return v[0], v[1], v[2]
}

// Add performs element-wise addition.
func (v F64x4) Add(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F64x4) Sub(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F64x4) Mul(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
// Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F64x4) Div(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Scale multiplies every element by s.
func (v F64x4) Scale(s float64) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] * s
	}
	return result
}

// MulAdd returns v + a*s for each element, evaluated as a separate
// multiply and add.
func (v F64x4) MulAdd(a F64x4, s float64) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] + a[i]*s
	}
	return result
}

// Pow raises each element to the power e using math.Pow.
func (v F64x4) Pow(e float64) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = math.Pow(v[i], e)
	}
	return result
}

// Cbrt computes the cube root of each element.
func (v F64x4) Cbrt() F64x4 {
	var result F64x4
	for i := range v {
		result[i] = math.Cbrt(v[i])
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
func (v F64x4) Clamp(minVal, maxVal float64) F64x4 {
	var result F64x4
	for i := range v {
		switch {
		case v[i] < minVal:
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}

// Greater reports v[i] > t for each element.
func (v F64x4) Greater(t float64) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] > t
	}
	return m
}

// Select returns a[i] where m[i] is set and b[i] elsewhere.
func Select(m Mask4, a, b F64x4) F64x4 {
	var result F64x4
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// Sum3 returns (v[0] + v[1]) + v[2]. The padding lane is not included.
func (v F64x4) Sum3() float64 {
	return v[0] + v[1] + v[2]
}
