package ggcolor

import (
	"image/color"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Common colors, taken from the SVG 1.1 / CSS named color table.
// Note that Green is the CSS green (0, 128, 0); Lime is (0, 255, 0).
var (
	Black       = fromRGBA(colornames.Black)
	White       = fromRGBA(colornames.White)
	Red         = fromRGBA(colornames.Red)
	Green       = fromRGBA(colornames.Green)
	Lime        = fromRGBA(colornames.Lime)
	Blue        = fromRGBA(colornames.Blue)
	Yellow      = fromRGBA(colornames.Yellow)
	Cyan        = fromRGBA(colornames.Cyan)
	Magenta     = fromRGBA(colornames.Magenta)
	Gray        = fromRGBA(colornames.Gray)
	Orange      = fromRGBA(colornames.Orange)
	Purple      = fromRGBA(colornames.Purple)
	Transparent = RGBA(0, 0, 0, 0)
)

// namedColors maps folded names to colors. Read-only after init.
var namedColors = buildNamedColors()

func buildNamedColors() map[string]Color {
	m := make(map[string]Color, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = fromRGBA(c)
	}
	m["transparent"] = Transparent
	return m
}

// fromRGBA converts an opaque colornames entry.
func fromRGBA(c color.RGBA) Color {
	return FromRgbaBytes(c.R, c.G, c.B, c.A)
}

// Named looks up a CSS/SVG color name. Matching ignores case, spaces,
// hyphens and underscores, so "Alice Blue", "alice_blue" and "AliceBlue"
// all resolve to the same color.
func Named(name string) (Color, bool) {
	c, ok := namedColors[normalizeName(name)]
	return c, ok
}

// Names returns all known color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// normalizeName folds case and drops word separators.
// A Caser is stateful, so each call builds its own.
func normalizeName(name string) string {
	folded := cases.Fold().String(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, folded)
}

// ParseColor accepts either a hex string ("#RRGGBB", "#RRGGBBAA") or a
// color name.
func ParseColor(s string) (Color, error) {
	if c, ok := Named(s); ok {
		return c, nil
	}
	return FromHex(strings.TrimSpace(s))
}
