package ggcolor

import "math"

// GrayScaleMode selects a grayscale reduction.
type GrayScaleMode int

const (
	// GrayLuminosity weights channels by Rec. 709 luma:
	// 0.2126 R + 0.7152 G + 0.0722 B (default).
	GrayLuminosity GrayScaleMode = iota

	// GrayLightness averages the largest and smallest channel.
	GrayLightness

	// GrayAverage is the plain mean of R, G and B.
	GrayAverage

	// GrayCieLab uses CIE L* rescaled from [0,100] to [0,1].
	GrayCieLab

	// GrayGammaExpandedAverage averages the linear (gamma-expanded) channels.
	GrayGammaExpandedAverage
)

// grayTolerance is the overshoot beyond [0,1] accepted as rounding noise.
const grayTolerance = 1e-3

// String returns the mode name.
func (m GrayScaleMode) String() string {
	switch m {
	case GrayLuminosity:
		return "Luminosity"
	case GrayLightness:
		return "Lightness"
	case GrayAverage:
		return "Average"
	case GrayCieLab:
		return "CieLab"
	case GrayGammaExpandedAverage:
		return "GammaExpandedAverage"
	default:
		return "Unknown"
	}
}

// GrayScaleModes lists every mode in declaration order.
func GrayScaleModes() []GrayScaleMode {
	return []GrayScaleMode{
		GrayLuminosity, GrayLightness, GrayAverage, GrayCieLab, GrayGammaExpandedAverage,
	}
}

// ParseGrayScaleMode returns the mode whose String matches name.
func ParseGrayScaleMode(name string) (GrayScaleMode, bool) {
	for _, m := range GrayScaleModes() {
		if m.String() == name {
			return m, true
		}
	}
	return GrayLuminosity, false
}

// ToGrayScale reduces c to a gray with R == G == B, preserving alpha.
//
// Lightness, Average and Luminosity map a gray to itself (Luminosity to
// within rounding). CieLab and GammaExpandedAverage do not: a gray input
// is still run through the Lab or linear transform, so a second application
// moves the value again. Unknown modes behave like GrayLuminosity.
func (cv *Converter) ToGrayScale(c Color, mode GrayScaleMode) Color {
	var y float64
	switch mode {
	case GrayLightness:
		y = (math.Max(c.R, math.Max(c.G, c.B)) + math.Min(c.R, math.Min(c.G, c.B))) / 2
	case GrayAverage:
		y = average(c)
	case GrayCieLab:
		y = cv.ToLab(c).L / 100
	case GrayGammaExpandedAverage:
		y = average(cv.ToLinear(c))
	default:
		y = cv.kernel.Luminosity(c.R, c.G, c.B)
	}

	if y < -grayTolerance || y > 1+grayTolerance {
		Logger().Warn("ggcolor: grayscale result outside [0,1]",
			"mode", mode.String(), "value", y, "color", c.String())
	}
	return Color{R: y, G: y, B: y, A: c.A}
}

func average(c Color) float64 {
	return (c.R + c.G + c.B) / 3
}
