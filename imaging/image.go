package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/lvkit/files"
)

var (
	ErrImageOpen   = errors.New("imaging: cannot open image")
	ErrImageDecode = errors.New("imaging: cannot decode image")
	ErrImageEncode = errors.New("imaging: cannot encode image")
	ErrImageFormat = errors.New("imaging: unsupported format")
	ErrImageSize   = errors.New("imaging: invalid dimensions")
)

// Format names an encoding.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// DefaultQuality is used for JPEG when quality is 0.
const DefaultQuality = 90

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "jpg", "jpeg", "jpe":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrImageFormat, filepath.Ext(path))
}

// Image wraps a decoded image together with its source format.
type Image struct {
	img    image.Image
	format Format
}

// New wraps img. The format defaults to PNG.
func New(img image.Image) *Image {
	return &Image{img: img, format: PNG}
}

// Open decodes the file at path.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageOpen, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads any registered format from r.
func Decode(r io.Reader) (*Image, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	return &Image{img: img, format: Format(name)}, nil
}

// Image returns the underlying image.
func (m *Image) Image() image.Image { return m.img }

// Format returns the format the image was decoded from ("webp" for WebP
// sources, which cannot be re-encoded as such).
func (m *Image) Format() Format { return m.format }

// Width in pixels.
func (m *Image) Width() int { return m.img.Bounds().Dx() }

// Height in pixels.
func (m *Image) Height() int { return m.img.Bounds().Dy() }

// Encode writes the image to w. quality applies to JPEG only (1..100, 0
// for DefaultQuality).
func (m *Image) Encode(w io.Writer, format Format, quality int) error {
	var err error
	switch format {
	case JPEG:
		if quality <= 0 {
			quality = DefaultQuality
		}
		if quality > 100 {
			quality = 100
		}
		err = jpeg.Encode(w, m.img, &jpeg.Options{Quality: quality})
	case PNG:
		err = png.Encode(w, m.img)
	case GIF:
		err = gif.Encode(w, m.img, nil)
	case BMP:
		err = bmp.Encode(w, m.img)
	case TIFF:
		err = tiff.Encode(w, m.img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrImageFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageEncode, err)
	}
	return nil
}

// Save encodes to path in the format implied by its extension. The file
// is replaced atomically.
func (m *Image) Save(path string, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := m.Encode(&buf, format, quality); err != nil {
		return err
	}
	return files.Write(path, buf.Bytes(), 0o644)
}

// toRGBA copies src into a fresh RGBA anchored at the origin.
func toRGBA(src image.Image, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

func (m *Image) derive(img image.Image) *Image {
	return &Image{img: img, format: m.format}
}

// Grayscale converts to 16-bit luminance.
func (m *Image) Grayscale() *Image {
	b := m.img.Bounds()
	dst := image.NewGray16(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x-b.Min.X, y-b.Min.Y, color.Gray16Model.Convert(m.img.At(x, y)))
		}
	}
	return m.derive(dst)
}
