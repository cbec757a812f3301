// Command colordemo demonstrates the ggcolor conversion library.
//
// Describe a color:
//
//	colordemo -color "#3498db"
//	colordemo -color "steel blue"
//
// Convert an image to grayscale:
//
//	colordemo -in photo.png -out gray.png -mode CieLab -width 400
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggcolor"
)

func main() {
	var (
		colorArg = flag.String("color", "", "hex (#RRGGBB[AA]) or named color to describe")
		input    = flag.String("in", "", "input PNG to convert")
		output   = flag.String("out", "gray.png", "output PNG file")
		modeArg  = flag.String("mode", "Luminosity", "grayscale mode: "+modeNames())
		invert   = flag.Bool("invert", false, "invert colors instead of grayscale")
		width    = flag.Int("width", 0, "resample output to this width (0 keeps size)")
		strategy = flag.String("strategy", "auto", "execution strategy: auto, scalar, vector")
		workers  = flag.Int("workers", 0, "image workers (0 = GOMAXPROCS)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ggcolor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := parseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}
	cv := ggcolor.NewConverter(ggcolor.WithStrategy(s), ggcolor.WithWorkers(*workers))

	switch {
	case *colorArg != "":
		c, err := ggcolor.ParseColor(*colorArg)
		if err != nil {
			log.Fatalf("Invalid color: %v", err)
		}
		describe(os.Stdout, cv, c)
	case *input != "":
		mode, ok := ggcolor.ParseGrayScaleMode(*modeArg)
		if !ok {
			log.Fatalf("Unknown mode %q (want one of %s)", *modeArg, modeNames())
		}
		if err := convertFile(cv, *input, *output, mode, *invert, *width); err != nil {
			log.Fatalf("Failed to convert: %v", err)
		}
		log.Printf("Saved %s (strategy %s)\n", *output, cv.Strategy())
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func parseStrategy(name string) (ggcolor.Strategy, error) {
	switch strings.ToLower(name) {
	case "auto", "":
		return ggcolor.StrategyAuto, nil
	case "scalar":
		return ggcolor.StrategyScalar, nil
	case "vector":
		return ggcolor.StrategyVector, nil
	default:
		return ggcolor.StrategyAuto, fmt.Errorf("unknown strategy %q", name)
	}
}

func modeNames() string {
	var names []string
	for _, m := range ggcolor.GrayScaleModes() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func describe(w io.Writer, cv *ggcolor.Converter, c ggcolor.Color) {
	lin := cv.ToLinear(c)
	xyz := cv.ToXYZ(c)
	lab := cv.ToLab(c)
	hsv := c.ToHSV()

	fmt.Fprintf(w, "hex      %s\n", c.Hex())
	fmt.Fprintf(w, "srgb     %.6f %.6f %.6f  alpha %.6f\n", c.R, c.G, c.B, c.A)
	fmt.Fprintf(w, "linear   %.6f %.6f %.6f\n", lin.R, lin.G, lin.B)
	fmt.Fprintf(w, "xyz      %.6f %.6f %.6f\n", xyz.X, xyz.Y, xyz.Z)
	fmt.Fprintf(w, "lab      %.4f %.4f %.4f\n", lab.L, lab.A, lab.B)
	fmt.Fprintf(w, "hsv      %.2f %.4f %.4f\n", hsv.H, hsv.S, hsv.V)
	fmt.Fprintf(w, "inverse  %s\n", c.Inverse().Hex())
	for _, m := range ggcolor.GrayScaleModes() {
		fmt.Fprintf(w, "gray     %-20s %s\n", m, cv.ToGrayScale(c, m).Hex())
	}
	fmt.Fprintf(w, "ΔE white %.4f\n", ggcolor.Distance(lab, cv.ToLab(ggcolor.White)))
	fmt.Fprintf(w, "strategy %s\n", cv.Strategy())
}

func convertFile(cv *ggcolor.Converter, in, out string, mode ggcolor.GrayScaleMode, invert bool, width int) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	src, err := png.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}

	var dst image.Image
	if invert {
		dst = cv.InverseImage(src)
	} else {
		dst = cv.GrayScaleImage(src, mode)
	}
	if width > 0 {
		dst = resample(dst, width)
	}

	o, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(o, dst); err != nil {
		o.Close()
		return err
	}
	return o.Close()
}

// resample scales img to the given width, keeping the aspect ratio.
func resample(img image.Image, width int) image.Image {
	b := img.Bounds()
	height := max(1, b.Dy()*width/max(1, b.Dx()))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
