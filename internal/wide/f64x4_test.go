package wide

import (
	"math"
	"testing"
)

func TestSplatF64(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"zero", 0.0},
		{"one", 1.0},
		{"half", 0.5},
		{"negative", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatF64(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %f, want %f", i, v, tt.value)
				}
			}
		})
	}
}

func TestLoad3(t *testing.T) {
	v := Load3(0.25, 0.5, 0.75)
	if v[3] != 0 {
		t.Errorf("padding lane = %v, want 0", v[3])
	}
	a, b, c := v.Lanes3()
	if a != 0.25 || b != 0.5 || c != 0.75 {
		t.Errorf("Lanes3() = (%v, %v, %v), want (0.25, 0.5, 0.75)", a, b, c)
	}
}

func TestF64x4_Arithmetic(t *testing.T) {
	a := F64x4{1, 2, 3, 4}
	b := F64x4{0.5, 4, -3, 8}

	tests := []struct {
		name string
		got  F64x4
		want F64x4
	}{
		{"add", a.Add(b), F64x4{1.5, 6, 0, 12}},
		{"sub", a.Sub(b), F64x4{0.5, -2, 6, -4}},
		{"mul", a.Mul(b), F64x4{0.5, 8, -9, 32}},
		{"div", a.Div(b), F64x4{2, 0.5, -1, 0.5}},
		{"scale", a.Scale(2), F64x4{2, 4, 6, 8}},
		{"muladd", a.MulAdd(b, 2), F64x4{2, 10, -3, 20}},
		{"clamp", F64x4{-1, 0.5, 2, 1}.Clamp(0, 1), F64x4{0, 0.5, 1, 1}},
		{"pow", F64x4{4, 9, 0, 1}.Pow(0.5), F64x4{2, 3, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// TestF64x4_MatchesScalar checks that every lane performs exactly the
// scalar operation, bit for bit.
func TestF64x4_MatchesScalar(t *testing.T) {
	a := F64x4{0.1, 0.7, 0.333, 1e-9}
	b := F64x4{0.3, 0.11, 3.14159, 12.92}

	sum := a.Add(b)
	prod := a.Mul(b)
	quot := a.Div(b)
	pw := a.Pow(2.4)
	for i := range a {
		if sum[i] != a[i]+b[i] {
			t.Errorf("Add lane %d = %v, want %v", i, sum[i], a[i]+b[i])
		}
		if prod[i] != a[i]*b[i] {
			t.Errorf("Mul lane %d = %v, want %v", i, prod[i], a[i]*b[i])
		}
		if quot[i] != a[i]/b[i] {
			t.Errorf("Div lane %d = %v, want %v", i, quot[i], a[i]/b[i])
		}
		if pw[i] != math.Pow(a[i], 2.4) {
			t.Errorf("Pow lane %d = %v, want %v", i, pw[i], math.Pow(a[i], 2.4))
		}
	}
}

func TestF64x4_Cbrt(t *testing.T) {
	got := F64x4{8, 27, -8, 0}.Cbrt()
	want := F64x4{2, 3, -2, 0}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Errorf("lane %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSelect(t *testing.T) {
	v := F64x4{0.01, 0.5, 0.04045, 1}
	m := v.Greater(0.04045)
	want := Mask4{false, true, false, true}
	if m != want {
		t.Fatalf("Greater() = %v, want %v", m, want)
	}

	got := Select(m, SplatF64(1), SplatF64(-1))
	if got != (F64x4{-1, 1, -1, 1}) {
		t.Errorf("Select() = %v", got)
	}
}

func TestSum3IgnoresPadding(t *testing.T) {
	v := F64x4{1, 2, 3, 100}
	if got := v.Sum3(); got != 6 {
		t.Errorf("Sum3() = %v, want 6", got)
	}
}

func TestFeaturesConsistentWithAccelerated(t *testing.T) {
	feats := Features()
	hasAVX := false
	for _, f := range feats {
		if f == "avx" {
			hasAVX = true
		}
	}
	if hasAVX != Accelerated() {
		t.Errorf("Accelerated() = %v, but features %v", Accelerated(), feats)
	}
}

func BenchmarkF64x4_MulAdd(b *testing.B) {
	v := Load3(0.2, 0.4, 0.6)
	c := Load3(0.4124564, 0.2126729, 0.0193339)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v = v.MulAdd(c, 0.5)
	}
	_ = v
}

func BenchmarkF64x4_Pow(b *testing.B) {
	v := Load3(0.2, 0.4, 0.6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Pow(2.4)
	}
}
