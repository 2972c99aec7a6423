package genetic

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/artevo/parameter"
)

// --- Core Types ---

// ShapeKind discriminates the geometry carried by a Gene
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeTriangle
)

// Gene is a single drawable primitive with an RGBA color.
// Circle genes use CX/CY/Radius; triangle genes use X1..Y3.
// The unused geometry fields of the other kind stay zero.
type Gene struct {
	Kind ShapeKind

	// Circle geometry
	CX, CY, Radius int

	// Triangle geometry
	X1, Y1 int
	X2, Y2 int
	X3, Y3 int

	// Color channels
	R, G, B, A uint8
}

// FitnessUnset marks a chromosome whose fitness has not been computed.
// A large finite value rather than +Inf so exact comparisons stay safe.
const FitnessUnset = 1.0e30

// Chromosome is a candidate solution: a fixed-length genome of shapes
// plus its evaluated fitness (lower is better)
type Chromosome struct {
	Genes   []Gene
	Fitness float64
}

// --- Injected Operators ---

// Evaluator scores a chromosome; lower is better.
// Implementations must be safe for concurrent use: the worker pool calls
// Evaluate from multiple goroutines, each on a disjoint population slice.
type Evaluator interface {
	Evaluate(c *Chromosome) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface
type EvaluatorFunc func(c *Chromosome) float64

func (f EvaluatorFunc) Evaluate(c *Chromosome) float64 { return f(c) }

// Allocator abstracts chromosome creation and release.
// The engine routes every chromosome it owns through one allocator so
// callers can pool, count, or instrument genome storage.
type Allocator interface {
	New(nShapes int) *Chromosome
	Free(c *Chromosome)
}

// HeapAllocator is the default allocator: plain heap allocation,
// release is left to the garbage collector
type HeapAllocator struct{}

func (HeapAllocator) New(nShapes int) *Chromosome {
	return &Chromosome{
		Genes:   make([]Gene, nShapes),
		Fitness: FitnessUnset,
	}
}

func (HeapAllocator) Free(c *Chromosome) {}

// --- Logging ---

// LogLevel classifies engine log messages
type LogLevel uint8

const (
	LogInfo LogLevel = iota
	LogWarn
	LogError
)

// LogFunc is an optional fire-and-forget logging callback.
// It must not block; failures are not propagated.
type LogFunc func(level LogLevel, msg string)

// --- Configuration ---

// Params is the immutable per-run configuration.
// Zero fields are filled from package parameter defaults by Validate.
type Params struct {
	// PopulationSize is the number of chromosomes per generation
	PopulationSize int
	// NbShapes is the genome length, fixed for the run
	NbShapes int
	// EliteCount is the number of best chromosomes preserved per island
	EliteCount int
	// MutationRate is the per-gene mutation probability (0-1)
	MutationRate float64
	// CrossoverRate is the probability of crossover vs asexual copy (0-1)
	CrossoverRate float64
	// MaxIterations is the hard stop generation count
	MaxIterations int
	// IslandCount is the number of sub-populations and eval workers
	IslandCount int
	// MigrationInterval is generations between ring migrations
	MigrationInterval int
	// Width and Height bound gene coordinates
	Width, Height int
}

// DefaultParams returns the tuning used by the shipped binaries
func DefaultParams() Params {
	return Params{
		PopulationSize:    parameter.GAPopulationSize,
		NbShapes:          parameter.GANbShapes,
		EliteCount:        parameter.GAEliteCount,
		MutationRate:      parameter.GAMutationRate,
		CrossoverRate:     parameter.GACrossoverRate,
		MaxIterations:     parameter.GAMaxIterations,
		IslandCount:       parameter.GAIslandCount,
		MigrationInterval: parameter.GAMigrationInterval,
		Width:             parameter.GAImageWidth,
		Height:            parameter.GAImageHeight,
	}
}

var (
	// ErrGenomeLength reports a genome length mismatch between chromosomes
	// that an operation requires to be equal
	ErrGenomeLength = errors.New("genetic: genome length mismatch")
)

// Validate fills defaulted fields and rejects unusable configurations
func (p *Params) Validate() error {
	if p.IslandCount == 0 {
		p.IslandCount = parameter.GAIslandCount
	}
	if p.MigrationInterval == 0 {
		p.MigrationInterval = parameter.GAMigrationInterval
	}
	if p.EliteCount == 0 {
		p.EliteCount = parameter.GAEliteCount
	}
	if p.Width == 0 {
		p.Width = parameter.GAImageWidth
	}
	if p.Height == 0 {
		p.Height = parameter.GAImageHeight
	}

	switch {
	case p.PopulationSize <= 0:
		return fmt.Errorf("genetic: population size %d must be positive", p.PopulationSize)
	case p.NbShapes <= 0:
		return fmt.Errorf("genetic: shape count %d must be positive", p.NbShapes)
	case p.MaxIterations <= 0:
		return fmt.Errorf("genetic: max iterations %d must be positive", p.MaxIterations)
	case p.IslandCount <= 0:
		return fmt.Errorf("genetic: island count %d must be positive", p.IslandCount)
	case p.PopulationSize < p.IslandCount:
		return fmt.Errorf("genetic: population size %d smaller than island count %d", p.PopulationSize, p.IslandCount)
	case p.MutationRate < 0 || p.MutationRate > 1:
		return fmt.Errorf("genetic: mutation rate %g outside [0,1]", p.MutationRate)
	case p.CrossoverRate < 0 || p.CrossoverRate > 1:
		return fmt.Errorf("genetic: crossover rate %g outside [0,1]", p.CrossoverRate)
	case p.MigrationInterval <= 0:
		return fmt.Errorf("genetic: migration interval %d must be positive", p.MigrationInterval)
	case p.EliteCount < 0:
		return fmt.Errorf("genetic: elite count %d must not be negative", p.EliteCount)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("genetic: image bounds %dx%d must be positive", p.Width, p.Height)
	}

	// Every island must be able to hold its elites
	islandMin := p.PopulationSize / p.IslandCount
	if p.EliteCount > islandMin {
		return fmt.Errorf("genetic: elite count %d exceeds smallest island size %d", p.EliteCount, islandMin)
	}
	return nil
}
