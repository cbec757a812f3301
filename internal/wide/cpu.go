package wide

import "golang.org/x/sys/cpu"

// accelerated is fixed at init; nothing writes it afterwards.
var accelerated = cpu.X86.HasAVX

// Accelerated reports whether the CPU provides 4-wide float64 vector
// instructions (AVX on amd64).
func Accelerated() bool {
	return accelerated
}

// Features lists the detected vector extensions relevant to F64x4,
// for diagnostics.
func Features() []string {
	var feats []string
	if cpu.X86.HasAVX {
		feats = append(feats, "avx")
	}
	if cpu.X86.HasAVX2 {
		feats = append(feats, "avx2")
	}
	if cpu.X86.HasFMA {
		feats = append(feats, "fma")
	}
	if cpu.X86.HasAVX512F {
		feats = append(feats, "avx512f")
	}
	if cpu.ARM64.HasASIMD {
		feats = append(feats, "asimd")
	}
	if cpu.ARM64.HasSVE {
		feats = append(feats, "sve")
	}
	return feats
}
