package ggcolor

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggcolor/internal/parallel"
)

// bandsPerWorker oversubscribes the pool so work stealing can even out
// bands of unequal cost.
const bandsPerWorker = 4

// MapImage applies fn to every pixel of src and returns the result as a new
// non-premultiplied RGBA image with the same bounds.
//
// Pixels are decoded with FromRgbaBytes and encoded with Color.Bytes, so fn
// sees gamma-encoded straight-alpha colors. Rows are split into bands that
// run concurrently on the converter's workers; fn must be safe for
// concurrent use (all conversions in this package are).
func (cv *Converter) MapImage(src image.Image, fn func(Color) Color) *image.NRGBA {
	bounds := src.Bounds()
	in := toNRGBA(src)
	out := image.NewNRGBA(bounds)
	if bounds.Empty() {
		return out
	}

	pool := parallel.NewWorkerPool(cv.workers)
	defer pool.Close()

	bands := parallel.SplitRows(bounds.Dy(), pool.Workers()*bandsPerWorker)
	Logger().Debug("ggcolor: mapping image",
		"width", bounds.Dx(), "height", bounds.Dy(),
		"bands", len(bands), "workers", pool.Workers(),
		"strategy", cv.strategy.String())

	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() {
			mapRows(in, out, band, fn)
		}
	}
	pool.ExecuteAll(work)
	return out
}

// GrayScaleImage converts every pixel of src with ToGrayScale.
func (cv *Converter) GrayScaleImage(src image.Image, mode GrayScaleMode) *image.NRGBA {
	return cv.MapImage(src, func(c Color) Color {
		return cv.ToGrayScale(c, mode)
	})
}

// InverseImage inverts the RGB channels of every pixel of src.
func (cv *Converter) InverseImage(src image.Image) *image.NRGBA {
	return cv.MapImage(src, Color.Inverse)
}

func mapRows(in, out *image.NRGBA, band parallel.Band, fn func(Color) Color) {
	b := in.Rect
	for y := b.Min.Y + band.Start; y < b.Min.Y+band.End; y++ {
		si := in.PixOffset(b.Min.X, y)
		di := out.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			s := in.Pix[si : si+4 : si+4]
			c := fn(FromRgbaBytes(s[0], s[1], s[2], s[3]))
			d := out.Pix[di : di+4 : di+4]
			d[0], d[1], d[2], d[3] = c.Bytes()
			si += 4
			di += 4
		}
	}
}

// toNRGBA returns src itself when it is already an *image.NRGBA,
// otherwise a converted copy with the same bounds.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	n := image.NewNRGBA(b)
	draw.Draw(n, b, src, b.Min, draw.Src)
	return n
}
