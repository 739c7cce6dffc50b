package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadHex is returned when a string is not a valid hex colour.
var ErrBadHex = errors.New("color: invalid hex colour")

// ErrUnknownName is returned when Lookup gets a name outside the palette.
var ErrUnknownName = errors.New("color: unknown colour name")

// ErrNoImage is returned by Extract for a nil image or n <= 0.
var ErrNoImage = errors.New("color: nothing to extract")

// Color is an sRGB colour with 8-bit channels and alpha.
type Color struct {
	R, G, B, A uint8
}

// FromRGB returns an opaque colour.
func FromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromHSL builds an opaque colour from hue in degrees [0,360) and
// saturation and lightness in [0,1]. Out-of-range values are clamped.
func FromHSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, clamp01(s), clamp01(l)), 255)
}

// ParseHex parses #rgb, #rgba, #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is ParseHex for package-level literals; it panics on error.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns "#rrggbb", or "#rrggbbaa" when the colour is not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBString returns CSS "rgb(r, g, b)" or "rgba(r, g, b, a)".
func (c Color) RGBString() string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	a := strconv.FormatFloat(float64(c.A)/255, 'f', 2, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strings.TrimRight(strings.TrimRight(a, "0"), "."))
}

// HSL returns hue in degrees and saturation/lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Lighten raises HSL lightness by amount (0..1).
func (c Color) Lighten(amount float64) Color {
	h, s, l := c.HSL()
	return fromColorful(colorful.Hsl(h, s, clamp01(l+amount)), c.A)
}

// Darken lowers HSL lightness by amount (0..1).
func (c Color) Darken(amount float64) Color {
	return c.Lighten(-amount)
}

// Mix blends c toward other; weight 0 keeps c, 1 yields other.
func (c Color) Mix(other Color, weight float64) Color {
	w := clamp01(weight)
	a := float64(c.A) + (float64(other.A)-float64(c.A))*w
	return fromColorful(c.colorful().BlendRgb(other.colorful(), w), uint8(math.Round(a)))
}

// Invert returns the RGB complement, keeping alpha.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Luminance returns WCAG relative luminance in [0,1].
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between a and b in [1,21].
func Contrast(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// IsDark reports whether white text contrasts better than black on c.
func (c Color) IsDark() bool {
	white, black := FromRGB(255, 255, 255), FromRGB(0, 0, 0)
	return Contrast(c, white) > Contrast(c, black)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * uint32(c.A) / 255
	g = uint32(c.G) * uint32(c.A) / 255
	b = uint32(c.B) * uint32(c.A) / 255
	a = uint32(c.A)
	return r | r<<8, g | g<<8, b | b<<8, a | a<<8
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cc colorful.Color, alpha uint8) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
