package render

import (
	"math"

	"github.com/lixenwraith/artevo/genetic"
)

// alphaBlend composites src over dst using src's alpha.
// The result is fully opaque, matching a canvas that starts opaque black.
func alphaBlend(dst, src uint32) uint32 {
	sr, sg, sb, sa := UnpackARGB(src)
	dr, dg, db, _ := UnpackARGB(dst)

	a := float32(sa) / 255.0
	rr := uint8(float32(sr)*a + float32(dr)*(1.0-a))
	rg := uint8(float32(sg)*a + float32(dg)*(1.0-a))
	rb := uint8(float32(sb)*a + float32(db)*(1.0-a))

	return PackARGB(rr, rg, rb, 255)
}

// DrawCircle alpha-blends a filled circle into the buffer, clipping
// against the buffer bounds. Non-positive radii draw nothing.
func DrawCircle(b *Buffer, cx, cy, r int, col uint32) {
	if r <= 0 {
		return
	}

	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= b.Height {
			continue
		}
		dxMax := int(math.Sqrt(float64(r2 - dy*dy)))
		for dx := -dxMax; dx <= dxMax; dx++ {
			x := cx + dx
			if x < 0 || x >= b.Width {
				continue
			}
			i := y*b.Width + x
			b.Pix[i] = alphaBlend(b.Pix[i], col)
		}
	}
}

// edgeX interpolates the x coordinate at scanline y along (xa,ya)-(xb,yb)
func edgeX(y, xa, ya, xb, yb int) float64 {
	if yb == ya {
		return float64(xa)
	}
	return float64(xa) + float64(xb-xa)*(float64(y-ya)/float64(yb-ya))
}

// DrawTriangle alpha-blends a filled triangle into the buffer using
// scanline filling, clipping against the buffer bounds. Degenerate
// triangles collapse to lines or points.
func DrawTriangle(b *Buffer, x1, y1, x2, y2, x3, y3 int, col uint32) {
	// Sort vertices by y
	if y1 > y2 {
		x1, x2, y1, y2 = x2, x1, y2, y1
	}
	if y1 > y3 {
		x1, x3, y1, y3 = x3, x1, y3, y1
	}
	if y2 > y3 {
		x2, x3, y2, y3 = x3, x2, y3, y2
	}

	for y := y1; y <= y3; y++ {
		if y < 0 || y >= b.Height {
			continue
		}
		var xa, xb float64
		if y < y2 {
			xa = edgeX(y, x1, y1, x2, y2)
			xb = edgeX(y, x1, y1, x3, y3)
		} else {
			xa = edgeX(y, x2, y2, x3, y3)
			xb = edgeX(y, x1, y1, x3, y3)
		}
		if xa > xb {
			xa, xb = xb, xa
		}

		xs := int(xa)
		xe := int(xb)
		if xs < 0 {
			xs = 0
		}
		if xe >= b.Width {
			xe = b.Width - 1
		}
		for x := xs; x <= xe; x++ {
			i := y*b.Width + x
			b.Pix[i] = alphaBlend(b.Pix[i], col)
		}
	}
}

// Chromosome rasterizes a genome into the buffer: clears to opaque black,
// then alpha-blends every gene in genome order
func Chromosome(b *Buffer, c *genetic.Chromosome) {
	b.Clear()
	for i := range c.Genes {
		g := &c.Genes[i]
		col := PackARGB(g.R, g.G, g.B, g.A)
		if g.Kind == genetic.ShapeCircle {
			DrawCircle(b, g.CX, g.CY, g.Radius, col)
		} else {
			DrawTriangle(b, g.X1, g.Y1, g.X2, g.Y2, g.X3, g.Y3, col)
		}
	}
}
