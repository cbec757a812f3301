package ggcolor

import (
	"fmt"
	"strconv"
)

// FromHex parses "#RRGGBB" or "#RRGGBBAA" (case-insensitive digits).
// Any other form, including shorthand "#RGB" and strings without the
// leading '#', is rejected with an error wrapping ErrInvalidHex.
func FromHex(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w %q: missing '#' prefix", ErrInvalidHex, s)
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w %q: want 6 or 8 hex digits, got %d", ErrInvalidHex, s, len(digits))
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: non-hex digit", ErrInvalidHex, s)
	}

	if len(digits) == 6 {
		v = v<<8 | 0xFF
	}
	//nolint:gosec // G115: each shift isolates one byte
	return FromRgbaBytes(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustHex is like FromHex but panics on malformed input.
// It is intended for package-level color literals.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
