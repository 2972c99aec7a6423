package genetic

import (
	"math/rand/v2"

	"github.com/lixenwraith/artevo/parameter"
)

// RandomGene draws a uniformly random shape gene within the given bounds:
// 50/50 circle or triangle, independent uniform coordinates, uniform color
func RandomGene(rng *rand.Rand, width, height int) Gene {
	var g Gene
	if rng.IntN(2) == 0 {
		g.Kind = ShapeCircle
		g.CX = rng.IntN(width)
		g.CY = rng.IntN(height)
		g.Radius = parameter.GARadiusMin + rng.IntN(parameter.GARadiusMax)
	} else {
		g.Kind = ShapeTriangle
		g.X1 = rng.IntN(width)
		g.Y1 = rng.IntN(height)
		g.X2 = rng.IntN(width)
		g.Y2 = rng.IntN(height)
		g.X3 = rng.IntN(width)
		g.Y3 = rng.IntN(height)
	}

	g.R = uint8(rng.IntN(256))
	g.G = uint8(rng.IntN(256))
	g.B = uint8(rng.IntN(256))
	g.A = uint8(rng.IntN(256))

	return g
}

// MutateGene applies one of nine equally likely mutation operators in place.
// Cases 1-3 share slots between shape kinds (x, y, then radius-or-x2);
// cases 4-6 only affect triangles; 7 re-rolls RGB together; 8 alpha alone.
func MutateGene(rng *rand.Rand, g *Gene, width, height int) {
	switch rng.IntN(9) {
	case 0:
		*g = RandomGene(rng, width, height)
	case 1:
		if g.Kind == ShapeCircle {
			g.CX = rng.IntN(width)
		} else {
			g.X1 = rng.IntN(width)
		}
	case 2:
		if g.Kind == ShapeCircle {
			g.CY = rng.IntN(height)
		} else {
			g.Y1 = rng.IntN(height)
		}
	case 3:
		if g.Kind == ShapeCircle {
			g.Radius = parameter.GARadiusMin + rng.IntN(parameter.GARadiusMax)
		} else {
			g.X2 = rng.IntN(width)
		}
	case 4:
		if g.Kind == ShapeTriangle {
			g.Y2 = rng.IntN(height)
		}
	case 5:
		if g.Kind == ShapeTriangle {
			g.X3 = rng.IntN(width)
		}
	case 6:
		if g.Kind == ShapeTriangle {
			g.Y3 = rng.IntN(height)
		}
	case 7:
		g.R = uint8(rng.IntN(256))
		g.G = uint8(rng.IntN(256))
		g.B = uint8(rng.IntN(256))
	case 8:
		g.A = uint8(rng.IntN(256))
	}
}
