package ggcolor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomLab(rng *rand.Rand) CieLabColor {
	return CieLabColor{
		L: rng.Float64() * 100,
		A: rng.Float64()*220 - 110,
		B: rng.Float64()*220 - 110,
	}
}

func TestDistanceProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 20))
	for i := 0; i < 5000; i++ {
		a, b := randomLab(rng), randomLab(rng)
		if d := Distance(a, a); d != 0 {
			t.Fatalf("Distance(a, a) = %v, want 0", d)
		}
		if Distance(a, b) != Distance(b, a) {
			t.Fatalf("Distance not symmetric for %v, %v", a, b)
		}
		if Distance2(a, b) < 0 {
			t.Fatalf("Distance2(%v, %v) < 0", a, b)
		}
	}
}

func TestDistanceKnown(t *testing.T) {
	a := CieLabColor{50, 0, 0}
	b := CieLabColor{53, 4, 0}
	assert.Equal(t, 25.0, Distance2(a, b))
	assert.Equal(t, 5.0, Distance(a, b))
}

func TestDistanceCIE94(t *testing.T) {
	a := CieLabColor{50, 2.6772, -79.7751}
	b := CieLabColor{50, 0, -82.7485}

	// Pure lightness differences are unweighted.
	assert.InDelta(t, 3.0, DistanceCIE94(CieLabColor{50, 0, 0}, CieLabColor{53, 0, 0}), 1e-12)
	assert.Equal(t, 0.0, DistanceCIE94(a, a))
	// Chromatic differences are damped relative to CIE76.
	assert.Less(t, DistanceCIE94(a, b), Distance(a, b))
	assert.InDelta(t, 1.3950, DistanceCIE94(a, b), 1e-3)
}
