package colorspace

import (
	"math"
	"testing"
)

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestGammaCorrectExpand(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, 0.214041140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GammaCorrect(tt.input, true)
			if !floatNear(got, tt.want, 1e-9) {
				t.Errorf("GammaCorrect(%v, true) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGammaCorrectCompress(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045 / 12.92, 0.04045},
		{"mid gray linear", 0.214041140, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GammaCorrect(tt.input, false)
			if !floatNear(got, tt.want, 1e-9) {
				t.Errorf("GammaCorrect(%v, false) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestGammaRoundTrip checks every 8-bit sRGB level survives expand+compress.
func TestGammaRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float64(i) / 255
		got := GammaCorrect(GammaCorrect(s, true), false)
		if !floatNear(got, s, 1e-12) {
			t.Errorf("round trip %d/255: got %v, want %v", i, got, s)
		}
	}
}

func TestGammaCorrectNegativeIsTotal(t *testing.T) {
	// Negative values take the linear segment in both directions.
	if got := GammaCorrect(-0.5, true); got != -0.5/12.92 {
		t.Errorf("expand(-0.5) = %v", got)
	}
	if got := GammaCorrect(-0.5, false); got != -0.5*12.92 {
		t.Errorf("compress(-0.5) = %v", got)
	}
}
