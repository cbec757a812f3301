package ggcolor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Color{1, 0, 0, 1}},
		{"#FF000080", Color{1, 0, 0, 128.0 / 255}},
		{"#00ff00", Color{0, 1, 0, 1}},
		{"#000000", Color{0, 0, 0, 1}},
		{"#FFFFFF00", Color{1, 1, 1, 0}},
		{"#3498DB", Color{0x34 / 255.0, 0x98 / 255.0, 0xDB / 255.0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromHexInvalid(t *testing.T) {
	tests := []struct {
		in      string
		message string
	}{
		{"FF0000", "missing '#'"},
		{"", "missing '#'"},
		{"#FF00", "want 6 or 8 hex digits"},
		{"#F00", "want 6 or 8 hex digits"},
		{"#FF00000", "want 6 or 8 hex digits"},
		{"#GG0000", "non-hex digit"},
		{"#+F0000", "non-hex digit"},
		{"#FF 000", "non-hex digit"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := FromHex(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidHex), "error %v should wrap ErrInvalidHex", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#3498DB", "#FF000080", "#000000", "#FFFFFF"} {
		assert.Equal(t, s, MustHex(s).Hex())
	}
}

func TestMustHexPanics(t *testing.T) {
	assert.Panics(t, func() { MustHex("red") })
}
