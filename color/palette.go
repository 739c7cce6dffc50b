package color

import (
	"fmt"
	"sort"
	"strings"
)

// named is a subset of the CSS Color Module Level 4 keywords.
var named = map[string]string{
	"black":         "#000000",
	"white":         "#ffffff",
	"red":           "#ff0000",
	"lime":          "#00ff00",
	"blue":          "#0000ff",
	"yellow":        "#ffff00",
	"cyan":          "#00ffff",
	"magenta":       "#ff00ff",
	"silver":        "#c0c0c0",
	"gray":          "#808080",
	"maroon":        "#800000",
	"olive":         "#808000",
	"green":         "#008000",
	"purple":        "#800080",
	"teal":          "#008080",
	"navy":          "#000080",
	"orange":        "#ffa500",
	"gold":          "#ffd700",
	"pink":          "#ffc0cb",
	"hotpink":       "#ff69b4",
	"crimson":       "#dc143c",
	"coral":         "#ff7f50",
	"tomato":        "#ff6347",
	"salmon":        "#fa8072",
	"chocolate":     "#d2691e",
	"brown":         "#a52a2a",
	"tan":           "#d2b48c",
	"beige":         "#f5f5dc",
	"ivory":         "#fffff0",
	"khaki":         "#f0e68c",
	"lavender":      "#e6e6fa",
	"violet":        "#ee82ee",
	"indigo":        "#4b0082",
	"orchid":        "#da70d6",
	"plum":          "#dda0dd",
	"turquoise":     "#40e0d0",
	"aquamarine":    "#7fffd4",
	"skyblue":       "#87ceeb",
	"steelblue":     "#4682b4",
	"royalblue":     "#4169e1",
	"dodgerblue":    "#1e90ff",
	"slategray":     "#708090",
	"darkgray":      "#a9a9a9",
	"lightgray":     "#d3d3d3",
	"darkgreen":     "#006400",
	"forestgreen":   "#228b22",
	"seagreen":      "#2e8b57",
	"olivedrab":     "#6b8e23",
	"darkred":       "#8b0000",
	"firebrick":     "#b22222",
	"sienna":        "#a0522d",
	"peru":          "#cd853f",
	"wheat":         "#f5deb3",
	"mintcream":     "#f5fffa",
	"midnightblue":  "#191970",
	"darkslategray": "#2f4f4f",
}

// Entry is one named palette colour.
type Entry struct {
	Name  string
	Color Color
}

var palette = buildPalette()

func buildPalette() []Entry {
	out := make([]Entry, 0, len(named))
	for name, hex := range named {
		out = append(out, Entry{Name: name, Color: MustHex(hex)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Palette returns the named colours sorted by name.
func Palette() []Entry {
	return append([]Entry(nil), palette...)
}

// Lookup returns the colour for a CSS name (case and space insensitive).
func Lookup(name string) (Color, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if key == "grey" {
		key = "gray"
	}
	hex, ok := named[key]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return MustHex(hex), nil
}

// Name returns the palette entry perceptually closest to c, ignoring
// alpha, and the CIEDE2000 distance to it (0 for an exact match).
//
// Complexity: O(palette size).
func Name(c Color) (string, float64) {
	target := c.colorful()
	best, bestDist := "", 0.0
	for i, e := range palette {
		d := target.DistanceCIEDE2000(e.Color.colorful())
		if i == 0 || d < bestDist {
			best, bestDist = e.Name, d
		}
	}
	return best, bestDist
}
