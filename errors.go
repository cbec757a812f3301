package ggcolor

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidHex is wrapped by every FromHex failure.
var ErrInvalidHex = errors.New("ggcolor: invalid hex color")

// ErrOutOfRange is matched (via errors.Is) by every *RangeError.
var ErrOutOfRange = errors.New("ggcolor: component out of range")

// RangeError reports a colour component outside its valid interval.
type RangeError struct {
	Space     string // "HSV" or "Lab"
	Component string // e.g. "hue", "L"
	Value     float64
	Min, Max  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ggcolor: %s %s %s out of range [%s, %s]",
		e.Space, e.Component, fmtFloat(e.Value), fmtFloat(e.Min), fmtFloat(e.Max))
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// checkRange returns a *RangeError when v is outside [lo, hi] or NaN.
func checkRange(space, component string, v, lo, hi float64) error {
	if v >= lo && v <= hi {
		return nil
	}
	return &RangeError{Space: space, Component: component, Value: v, Min: lo, Max: hi}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
