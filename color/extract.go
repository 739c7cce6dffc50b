package color

import (
	"fmt"
	"image"
	"sort"
)

// ExtractOptions tunes Extract.
type ExtractOptions struct {
	// Bits per channel kept when bucketing pixels (1..8). Fewer bits merge
	// near-identical shades into one bucket.
	Bits uint
	// MinAlpha skips pixels more transparent than this.
	MinAlpha uint8
	// Step samples every Step-th pixel in each direction (>= 1).
	Step int
}

// DefaultExtractOptions buckets to 5 bits per channel, ignores pixels
// with alpha below 128, and samples every pixel.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{Bits: 5, MinAlpha: 128, Step: 1}
}

// Swatch is one dominant colour with its pixel count.
type Swatch struct {
	Color Color
	Count int
}

// Extract returns up to n most frequent colours of img, most frequent
// first (ties broken by hex value). Each colour is the mean of its bucket.
func Extract(img image.Image, n int, opts ExtractOptions) ([]Swatch, error) {
	if img == nil || n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoImage, n)
	}
	if opts.Bits == 0 || opts.Bits > 8 {
		opts.Bits = 8
	}
	if opts.Step < 1 {
		opts.Step = 1
	}
	shift := 8 - opts.Bits

	type acc struct{ r, g, b, n int }
	buckets := make(map[uint32]*acc)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += opts.Step {
		for x := bounds.Min.X; x < bounds.Max.X; x += opts.Step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 || uint8(a16>>8) < opts.MinAlpha {
				continue
			}
			// Un-premultiply.
			r := uint8(r16 * 0xffff / a16 >> 8)
			g := uint8(g16 * 0xffff / a16 >> 8)
			b := uint8(b16 * 0xffff / a16 >> 8)
			key := uint32(r>>shift)<<16 | uint32(g>>shift)<<8 | uint32(b>>shift)
			a := buckets[key]
			if a == nil {
				a = &acc{}
				buckets[key] = a
			}
			a.r += int(r)
			a.g += int(g)
			a.b += int(b)
			a.n++
		}
	}

	out := make([]Swatch, 0, len(buckets))
	for _, a := range buckets {
		out = append(out, Swatch{
			Color: FromRGB(uint8(a.r/a.n), uint8(a.g/a.n), uint8(a.b/a.n)),
			Count: a.n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Color.Hex() < out[j].Color.Hex()
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
