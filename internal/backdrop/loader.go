package backdrop

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/ftrvxmtrx/tga"
)

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic = []byte{0xff, 0xd8}
)

// Load decodes a PNG, JPEG or TGA backdrop map into NRGBA.
// The image is read as equirectangular: x spans azimuth, y spans polar angle.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("backdrop: read %s: %w", path, err)
	}

	img, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("backdrop: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// decode picks the codec from the leading bytes. TGA has no magic number
// (tga registers an empty one with package image, which matches anything),
// so it is the fallback and image.Decode is never used.
func decode(raw []byte) (image.Image, error) {
	r := bytes.NewReader(raw)
	switch {
	case bytes.HasPrefix(raw, pngMagic):
		return png.Decode(r)
	case bytes.HasPrefix(raw, jpegMagic):
		return jpeg.Decode(r)
	default:
		return tga.Decode(r)
	}
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
