// Package imaging normalizes uploaded product images: every stored image is
// an opaque 800x700 JPEG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nikolayk812/storefront/internal/domain"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	TargetWidth  = 800
	TargetHeight = 700
	JPEGQuality  = 90

	// MaxImageSize is the largest accepted upload in bytes when limits are enforced.
	MaxImageSize = 3145728

	ContentType = "image/jpeg"
)

type Resolution struct {
	Height int
	Width  int
}

var (
	MinResolution = Resolution{Height: 400, Width: 400}
	MaxResolution = Resolution{Height: 700, Width: 400}
)

// Normalizer re-encodes images. With EnforceLimits unset no source size or
// resolution is rejected.
type Normalizer struct {
	EnforceLimits bool
}

// Normalize decodes r, flattens it to RGB, resizes it to TargetWidth x
// TargetHeight and returns it encoded as JPEG with JPEGQuality.
func (n Normalizer) Normalize(r io.Reader) ([]byte, error) {
	if n.EnforceLimits {
		data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
		if err != nil {
			return nil, fmt.Errorf("io.ReadAll: %w", err)
		}
		if len(data) > MaxImageSize {
			return nil, domain.ErrImageTooLarge
		}
		r = bytes.NewReader(data)
	}

	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image.Decode: %w", err)
	}

	if n.EnforceLimits {
		b := src.Bounds()
		if err := CheckResolution(b.Dx(), b.Dy()); err != nil {
			return nil, fmt.Errorf("%s %dx%d: %w", format, b.Dx(), b.Dy(), err)
		}
	}

	src = dropAlpha(src)

	dst := image.NewRGBA(image.Rect(0, 0, TargetWidth, TargetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("jpeg.Encode: %w", err)
	}

	return buf.Bytes(), nil
}

// dropAlpha makes every pixel opaque, keeping the colour stored under
// transparent pixels instead of blending it onto a background.
func dropAlpha(src image.Image) image.Image {
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return src
	}

	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	return dst
}

// Normalize uses a Normalizer without limits.
func Normalize(r io.Reader) ([]byte, error) {
	return Normalizer{}.Normalize(r)
}

// CheckResolution reports whether a width x height image fits between
// MinResolution and MaxResolution.
func CheckResolution(width, height int) error {
	if height < MinResolution.Height || width < MinResolution.Width {
		return domain.ErrMinResolution
	}
	if height > MaxResolution.Height || width > MaxResolution.Width {
		return domain.ErrMaxResolution
	}
	return nil
}
