package ggcolor

import (
	"errors"

	"github.com/gogpu/ggcolor/internal/colorspace"
)

// HsvColor is a hue/saturation/value colour. Hue is in degrees.
type HsvColor struct {
	H, S, V float64
}

// Validate reports every component outside H ∈ [0,360], S ∈ [0,1], V ∈ [0,1].
func (hsv HsvColor) Validate() error {
	return errors.Join(
		checkRange("HSV", "hue", hsv.H, 0, 360),
		checkRange("HSV", "saturation", hsv.S, 0, 1),
		checkRange("HSV", "value", hsv.V, 0, 1),
	)
}

// ToHSV converts the gamma-encoded color to HSV.
//
// When red is the largest channel and green equals blue exactly, hue is 0.
func (c Color) ToHSV() HsvColor {
	h, s, v := colorspace.RGBToHSV(c.R, c.G, c.B)
	return HsvColor{H: h, S: s, V: v}
}

// FromHSV converts HSV to an opaque gamma-encoded color.
// It returns a *RangeError (possibly joined with others) when a component
// is out of range.
func FromHSV(hsv HsvColor) (Color, error) {
	if err := hsv.Validate(); err != nil {
		return Color{}, err
	}
	r, g, b := colorspace.HSVToRGB(hsv.H, hsv.S, hsv.V)
	return Color{R: r, G: g, B: b, A: 1}, nil
}
