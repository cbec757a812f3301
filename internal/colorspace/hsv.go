package colorspace

import "math"

// RGBToHSV converts RGB components to hue in degrees [0,360),
// saturation and value in [0,1].
//
// When red is the maximum and green equals blue exactly the hue is left at
// 0. Round trips of near-achromatic colours depend on this, so it is kept.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	d := hi - lo

	switch hi {
	case r:
		if g > b {
			h = 60 * (g - b) / d
		} else if g < b {
			h = 60*(g-b)/d + 360
		}
	case g:
		h = 60*(b-r)/d + 120
	case b:
		h = 60*(r-g)/d + 240
	}

	if hi != 0 {
		s = 1 - lo/hi
	}
	return h, s, hi
}

// HSVToRGB converts hue in degrees and saturation/value in [0,1] to RGB.
// Inputs are not validated here.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	sector := h / 60
	n := math.Floor(sector)
	frac := sector - n

	p := v * (1 - s)
	q := v * (1 - s*frac)
	t := v * (1 - s*(1-frac))

	switch (int(n)%6 + 6) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
