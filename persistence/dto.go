package persistence

import (
	"fmt"

	"github.com/lixenwraith/artevo/genetic"
)

// GeneDTO is the serialized form of a single shape gene
type GeneDTO struct {
	Kind   string `toml:"kind"`
	CX     int    `toml:"cx,omitempty"`
	CY     int    `toml:"cy,omitempty"`
	Radius int    `toml:"radius,omitempty"`
	X1     int    `toml:"x1,omitempty"`
	Y1     int    `toml:"y1,omitempty"`
	X2     int    `toml:"x2,omitempty"`
	Y2     int    `toml:"y2,omitempty"`
	X3     int    `toml:"x3,omitempty"`
	Y3     int    `toml:"y3,omitempty"`
	R      uint8  `toml:"r"`
	G      uint8  `toml:"g"`
	B      uint8  `toml:"b"`
	A      uint8  `toml:"a"`
}

// SolutionDTO is the on-disk form of a best-found chromosome
type SolutionDTO struct {
	Fitness float64   `toml:"fitness"`
	Width   int       `toml:"width"`
	Height  int       `toml:"height"`
	Genes   []GeneDTO `toml:"genes"`
}

const (
	kindCircle   = "circle"
	kindTriangle = "triangle"
)

// ToDTO converts a chromosome and its geometry bounds to the disk form
func ToDTO(c *genetic.Chromosome, width, height int) SolutionDTO {
	dto := SolutionDTO{
		Fitness: c.Fitness,
		Width:   width,
		Height:  height,
		Genes:   make([]GeneDTO, len(c.Genes)),
	}
	for i, g := range c.Genes {
		gd := GeneDTO{R: g.R, G: g.G, B: g.B, A: g.A}
		if g.Kind == genetic.ShapeCircle {
			gd.Kind = kindCircle
			gd.CX, gd.CY, gd.Radius = g.CX, g.CY, g.Radius
		} else {
			gd.Kind = kindTriangle
			gd.X1, gd.Y1 = g.X1, g.Y1
			gd.X2, gd.Y2 = g.X2, g.Y2
			gd.X3, gd.Y3 = g.X3, g.Y3
		}
		dto.Genes[i] = gd
	}
	return dto
}

// FromDTO rebuilds a chromosome from its disk form
func FromDTO(dto SolutionDTO) (*genetic.Chromosome, error) {
	c := &genetic.Chromosome{
		Genes:   make([]genetic.Gene, len(dto.Genes)),
		Fitness: dto.Fitness,
	}
	for i, gd := range dto.Genes {
		g := genetic.Gene{R: gd.R, G: gd.G, B: gd.B, A: gd.A}
		switch gd.Kind {
		case kindCircle:
			g.Kind = genetic.ShapeCircle
			g.CX, g.CY, g.Radius = gd.CX, gd.CY, gd.Radius
		case kindTriangle:
			g.Kind = genetic.ShapeTriangle
			g.X1, g.Y1 = gd.X1, gd.Y1
			g.X2, g.Y2 = gd.X2, gd.Y2
			g.X3, g.Y3 = gd.X3, gd.Y3
		default:
			return nil, fmt.Errorf("persistence: unknown gene kind %q at index %d", gd.Kind, i)
		}
		c.Genes[i] = g
	}
	return c, nil
}
