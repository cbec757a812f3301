// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build stress

package stress

import (
	"image"
	"math/rand/v2"
	"runtime"
	"sync"
	"testing"

	"github.com/gogpu/ggcolor"
)

// =============================================================================
// Stress Tests for concurrent color conversion
// These tests verify that conversions share no mutable state
// =============================================================================

// TestStressConcurrentConversions runs the full conversion set from many
// goroutines and compares against results computed serially.
func TestStressConcurrentConversions(t *testing.T) {
	const n = 50000
	rng := rand.New(rand.NewPCG(1, 1))
	inputs := make([]ggcolor.Color, n)
	for i := range inputs {
		inputs[i] = ggcolor.RGBA(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64())
	}

	type result struct {
		lab  ggcolor.CieLabColor
		back ggcolor.Color
		gray ggcolor.Color
		hsv  ggcolor.HsvColor
	}
	convert := func(c ggcolor.Color) result {
		lab := c.ToLab()
		return result{
			lab:  lab,
			back: ggcolor.FromLab(lab),
			gray: c.ToGrayScale(ggcolor.GrayCieLab),
			hsv:  c.ToHSV(),
		}
	}

	want := make([]result, n)
	for i, c := range inputs {
		want[i] = convert(c)
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	errs := make(chan int, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < n; i += workers {
				if convert(inputs[i]) != want[i] {
					errs <- i
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for i := range errs {
		t.Errorf("concurrent result for input %d (%v) differs from serial", i, inputs[i])
	}
}

// TestStressLargeImage converts a 4K frame with every grayscale mode.
func TestStressLargeImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3840, 2160))
	rng := rand.New(rand.NewPCG(2, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(rng.IntN(256))
	}

	cv := ggcolor.NewConverter()
	for _, mode := range ggcolor.GrayScaleModes() {
		dst := cv.GrayScaleImage(src, mode)
		for i := 0; i < len(dst.Pix); i += 4 {
			if dst.Pix[i] != dst.Pix[i+1] || dst.Pix[i+1] != dst.Pix[i+2] {
				t.Fatalf("%s: pixel %d not gray: %v", mode, i/4, dst.Pix[i:i+4])
			}
			if dst.Pix[i+3] != src.Pix[i+3] {
				t.Fatalf("%s: pixel %d alpha changed", mode, i/4)
			}
		}
	}
	t.Logf("strategy %s", cv.Strategy())
}
