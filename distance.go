package ggcolor

import "math"

// Distance2 returns the squared Euclidean distance between two Lab colours.
func Distance2(a, b CieLabColor) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return dl*dl + da*da + db*db
}

// Distance returns the Euclidean (CIE76) distance between two Lab colours.
// It tracks perceived difference only below roughly 10 units; use
// DistanceCIE94 to rank larger differences.
func Distance(a, b CieLabColor) float64 {
	return math.Sqrt(Distance2(a, b))
}

// DistanceCIE94 returns the CIE 1994 colour difference with graphic-arts
// weights (kL = kC = kH = 1, K1 = 0.045, K2 = 0.015), taking a as the
// reference colour.
func DistanceCIE94(a, b CieLabColor) float64 {
	dl := a.L - b.L
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	dc := c1 - c2

	// ΔH² = Δa² + Δb² − ΔC²; rounding can make it slightly negative.
	da := a.A - b.A
	db := a.B - b.B
	dh2 := max(da*da+db*db-dc*dc, 0)

	sc := 1 + 0.045*c1
	sh := 1 + 0.015*c1
	return math.Sqrt(dl*dl + (dc/sc)*(dc/sc) + dh2/(sh*sh))
}
