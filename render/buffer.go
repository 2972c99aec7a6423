// Package render provides the software rasterizer used to score shape
// genomes against a reference image, plus reference image loading. It is a
// replaceable collaborator of the genetic engine: the engine only sees the
// Evaluator interface.
package render

// Pixels are packed 0xAARRGGBB, matching the fitness math which compares
// R, G and B channels and ignores alpha.

// PackARGB builds a packed pixel from channel values
func PackARGB(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits a packed pixel into channel values
func UnpackARGB(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}

// Buffer is a width*height ARGB pixel surface
type Buffer struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewBuffer allocates a zeroed (transparent black) surface
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
}

// Clear resets every pixel to opaque black
func (b *Buffer) Clear() {
	black := PackARGB(0, 0, 0, 255)
	for i := range b.Pix {
		b.Pix[i] = black
	}
}

// At returns the pixel at (x, y); the caller must stay in bounds
func (b *Buffer) At(x, y int) uint32 {
	return b.Pix[y*b.Width+x]
}

// Set writes the pixel at (x, y); the caller must stay in bounds
func (b *Buffer) Set(x, y int, p uint32) {
	b.Pix[y*b.Width+x] = p
}
