package ggcolor

import (
	"sync"

	"github.com/gogpu/ggcolor/internal/colorspace"
	"github.com/gogpu/ggcolor/internal/wide"
)

// Strategy selects how the vectorisable transforms (gamma, matrix, Lab and
// luminosity) are computed.
//
// Both concrete strategies evaluate the same formulas in the same order and
// agree to within floating-point rounding. StrategyAuto picks the vector
// path when the CPU has a 4-wide float64 unit.
//
// Use cases for forced strategies:
//   - Benchmarking: compare both paths on the same workload
//   - Regression testing: verify both paths against the same reference
//   - Reproducibility: pin results across machines with different CPUs
type Strategy int

const (
	// StrategyAuto resolves to StrategyVector on hardware with 4-wide
	// float64 SIMD and to StrategyScalar elsewhere (default).
	StrategyAuto Strategy = iota

	// StrategyScalar computes each channel with independent scalar
	// multiply-adds.
	StrategyScalar

	// StrategyVector packs the three channels plus a zero padding lane into
	// a 4-lane value. It runs on any CPU; it is only faster with SIMD.
	StrategyVector
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "Auto"
	case StrategyScalar:
		return "Scalar"
	case StrategyVector:
		return "Vector"
	default:
		return "Unknown"
	}
}

// resolve maps StrategyAuto (and unknown values) to a concrete strategy.
func (s Strategy) resolve() Strategy {
	switch s {
	case StrategyScalar, StrategyVector:
		return s
	default:
		if wide.Accelerated() {
			return StrategyVector
		}
		return StrategyScalar
	}
}

// kernel returns the implementation for a resolved strategy.
func (s Strategy) kernel() colorspace.Kernel {
	if s == StrategyVector {
		return colorspace.Vector{}
	}
	return colorspace.Scalar{}
}

// defaultConverter is built on first use; the probe and the choice are
// never revisited.
var defaultConverter = sync.OnceValue(func() *Converter {
	return NewConverter()
})

// DefaultConverter returns the process-wide converter used by the Color
// methods and package-level functions. It uses StrategyAuto.
func DefaultConverter() *Converter {
	return defaultConverter()
}

// ActiveStrategy reports the concrete strategy of DefaultConverter.
func ActiveStrategy() Strategy {
	return DefaultConverter().Strategy()
}
