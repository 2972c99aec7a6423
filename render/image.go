package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// LoadImage reads a reference image (PNG, JPEG or BMP) and converts it to
// an opaque ARGB surface
func LoadImage(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open reference image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}

	return FromImage(img), nil
}

// FromImage converts any image.Image into an opaque ARGB surface
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			b.Pix[i] = PackARGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8), 255)
			i++
		}
	}
	return b
}
