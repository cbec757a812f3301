// Package ggcolor provides colorimetric conversions for 2D graphics.
//
// # Overview
//
// ggcolor converts between gamma-encoded sRGB, linear RGB, CIE XYZ (D65),
// CIE L*a*b* and HSV, reduces colors to gray with five perceptual
// strategies, and measures color differences in L*a*b*. Every conversion
// is a pure function on small value types and is safe for concurrent use.
//
// # Quick Start
//
//	import "github.com/gogpu/ggcolor"
//
//	c, err := ggcolor.FromHex("#3498db")
//	if err != nil {
//	    return err
//	}
//	lab := c.ToLab()
//	gray := c.ToGrayScale(ggcolor.GrayLuminosity)
//	d := ggcolor.Distance(lab, ggcolor.Red.ToLab())
//
// # Conversion Pipeline
//
//	sRGB --ToLinear--> linear RGB --matrix--> XYZ --f(t)--> L*a*b*
//
// The inverse path runs in reverse. XYZ and Lab results that fall outside
// the sRGB gamut are clamped to [0,1] silently. HSV is computed directly
// from sRGB. FromHSV and the Validate methods report out-of-range input as
// *RangeError; FromHex reports malformed strings with ErrInvalidHex.
//
// # Execution Strategies
//
// Gamma, matrix, Lab and luminosity transforms have a scalar and a 4-lane
// vector implementation. The vector path is selected once per process
// when the CPU supports 4-wide float64 SIMD (see ActiveStrategy); both
// paths compute identical formulas. Use NewConverter with WithStrategy to
// pin one.
//
// # Images
//
// Converter.MapImage and friends apply conversions to whole images,
// splitting rows across a worker pool.
//
// # Logging
//
// ggcolor is silent by default. See SetLogger.
package ggcolor
