// Package wide provides SIMD-friendly wide types for batch colour arithmetic.
//
// The F64x4 type holds four float64 lanes in a fixed-size array so that the
// Go compiler can keep the whole value in vector registers on hardware with
// 256-bit double-precision units (AVX on amd64). Colour transforms use three
// lanes for the R, G, B (or X, Y, Z / L, a, b) channels and leave the fourth
// lane as zero padding.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Every lane operation performs exactly the scalar operation, so a
//     vector computation written in the same order as its scalar
//     counterpart produces the same result
//
// # Capability Probe
//
// Accelerated reports whether the current CPU has a 4-wide float64 unit.
// The probe runs once at package initialization and never changes.
//
// # Usage Example
//
//	v := wide.Load3(r, g, b)
//	w := v.Mul(wide.Load3(0.2126, 0.7152, 0.0722))
//	y := w.Sum3()
package wide
