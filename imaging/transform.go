package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

var (
	ErrImageOpacity = errors.New("imaging: opacity outside [0, 1]")
	ErrImageAngle   = errors.New("imaging: angle is not a multiple of 90")
)

// Position anchors an overlay inside the base image.
type Position int

const (
	Center Position = iota
	TopLeft
	Top
	TopRight
	Left
	Right
	BottomLeft
	Bottom
	BottomRight
)

// Resize scales to w x h with Catmull-Rom. A zero dimension is derived
// from the other one so the aspect ratio is kept.
func (m *Image) Resize(w, h int) (*Image, error) {
	return m.ResizeWith(w, h, draw.CatmullRom)
}

// ResizeWith is Resize with a caller-chosen interpolator
// (draw.NearestNeighbor, draw.ApproxBiLinear, draw.BiLinear, draw.CatmullRom).
func (m *Image) ResizeWith(w, h int, interp draw.Interpolator) (*Image, error) {
	sw, sh := m.Width(), m.Height()
	if w < 0 || h < 0 || (w == 0 && h == 0) || sw == 0 || sh == 0 {
		return nil, fmt.Errorf("%w: resize %dx%d to %dx%d", ErrImageSize, sw, sh, w, h)
	}
	if w == 0 {
		w = max(1, int(math.Round(float64(sw)*float64(h)/float64(sh))))
	}
	if h == 0 {
		h = max(1, int(math.Round(float64(sh)*float64(w)/float64(sw))))
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	interp.Scale(dst, dst.Bounds(), m.img, m.img.Bounds(), draw.Src, nil)
	return m.derive(dst), nil
}

// Fit scales down, keeping the aspect ratio, until the image fits in
// maxW x maxH. Images that already fit are returned unchanged.
func (m *Image) Fit(maxW, maxH int) (*Image, error) {
	if maxW <= 0 || maxH <= 0 {
		return nil, fmt.Errorf("%w: fit %dx%d", ErrImageSize, maxW, maxH)
	}
	sw, sh := m.Width(), m.Height()
	if sw <= maxW && sh <= maxH {
		return m, nil
	}
	scale := math.Min(float64(maxW)/float64(sw), float64(maxH)/float64(sh))
	w := max(1, int(math.Round(float64(sw)*scale)))
	h := max(1, int(math.Round(float64(sh)*scale)))
	return m.Resize(w, h)
}

// Crop cuts rect, given in the image's own coordinates and clipped to its
// bounds. The result is anchored at the origin.
func (m *Image) Crop(rect image.Rectangle) (*Image, error) {
	r := rect.Canon().Intersect(m.img.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("%w: crop %v outside %v", ErrImageSize, rect, m.img.Bounds())
	}
	return m.derive(toRGBA(m.img, r)), nil
}

// CropCenter cuts a w x h region around the centre, clamped to the
// image size.
func (m *Image) CropCenter(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: crop %dx%d", ErrImageSize, w, h)
	}
	b := m.img.Bounds()
	w, h = min(w, b.Dx()), min(h, b.Dy())
	x := b.Min.X + (b.Dx()-w)/2
	y := b.Min.Y + (b.Dy()-h)/2
	return m.Crop(image.Rect(x, y, x+w, y+h))
}

// Overlay draws top over the image at pos, inset by margin pixels from
// the anchored edges, blended at opacity.
func (m *Image) Overlay(top *Image, pos Position, margin int, opacity float64) (*Image, error) {
	b, t := m.img.Bounds(), top.img.Bounds()
	var x, y int
	switch pos {
	case TopLeft, Left, BottomLeft:
		x = margin
	case TopRight, Right, BottomRight:
		x = b.Dx() - t.Dx() - margin
	default:
		x = (b.Dx() - t.Dx()) / 2
	}
	switch pos {
	case TopLeft, Top, TopRight:
		y = margin
	case BottomLeft, Bottom, BottomRight:
		y = b.Dy() - t.Dy() - margin
	default:
		y = (b.Dy() - t.Dy()) / 2
	}
	return m.OverlayAt(top, image.Pt(x, y), opacity)
}

// OverlayAt draws top with its top-left corner at pt, relative to the
// image's top-left corner.
func (m *Image) OverlayAt(top *Image, pt image.Point, opacity float64) (*Image, error) {
	if math.IsNaN(opacity) || opacity < 0 || opacity > 1 {
		return nil, fmt.Errorf("%w: %v", ErrImageOpacity, opacity)
	}
	dst := toRGBA(m.img, m.img.Bounds())
	t := top.img.Bounds()
	target := image.Rectangle{Min: pt, Max: pt.Add(t.Size())}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(opacity * 255))})
	draw.DrawMask(dst, target, top.img, t.Min, mask, image.Point{}, draw.Over)
	return m.derive(dst), nil
}

// Rotate turns the image clockwise by a multiple of 90 degrees.
func (m *Image) Rotate(degrees int) (*Image, error) {
	if degrees%90 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrImageAngle, degrees)
	}
	turns := ((degrees/90)%4 + 4) % 4
	if turns == 0 {
		return m.derive(toRGBA(m.img, m.img.Bounds())), nil
	}
	b := m.img.Bounds()
	w, h := b.Dx(), b.Dy()
	var dst *image.RGBA
	if turns == 2 {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := m.img.At(b.Min.X+x, b.Min.Y+y)
			switch turns {
			case 1:
				dst.Set(h-1-y, x, c)
			case 2:
				dst.Set(w-1-x, h-1-y, c)
			case 3:
				dst.Set(y, w-1-x, c)
			}
		}
	}
	return m.derive(dst), nil
}

// FlipHorizontal mirrors left to right.
func (m *Image) FlipHorizontal() *Image {
	b := m.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dx()-1-x, y, m.img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return m.derive(dst)
}
