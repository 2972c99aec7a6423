package genetic

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func taggedChromosome(n int, tag int) *Chromosome {
	c := &Chromosome{Genes: make([]Gene, n), Fitness: FitnessUnset}
	for i := range c.Genes {
		c.Genes[i].CX = tag
		c.Genes[i].CY = i
	}
	return c
}

func TestCrossoverMidpointSplit(t *testing.T) {
	const n = 7
	a := taggedChromosome(n, 1)
	b := taggedChromosome(n, 2)
	child := taggedChromosome(n, 0)

	if err := Crossover(a, b, child); err != nil {
		t.Fatalf("Crossover: %v", err)
	}

	cut := n / 2
	for i := 0; i < cut; i++ {
		if child.Genes[i] != a.Genes[i] {
			t.Errorf("gene %d: want parent A's gene", i)
		}
	}
	for i := cut; i < n; i++ {
		if child.Genes[i] != b.Genes[i] {
			t.Errorf("gene %d: want parent B's gene", i)
		}
	}
}

func TestCrossoverLengthMismatch(t *testing.T) {
	a := taggedChromosome(4, 1)
	b := taggedChromosome(5, 2)
	child := taggedChromosome(4, 0)

	if err := Crossover(a, b, child); !errors.Is(err, ErrGenomeLength) {
		t.Errorf("parent mismatch: err = %v, want ErrGenomeLength", err)
	}

	short := taggedChromosome(3, 0)
	if err := Crossover(a, a, short); !errors.Is(err, ErrGenomeLength) {
		t.Errorf("child mismatch: err = %v, want ErrGenomeLength", err)
	}
}

func TestCopyGenomeLeavesFitness(t *testing.T) {
	src := taggedChromosome(4, 7)
	src.Fitness = 42.0
	dst := taggedChromosome(4, 0)
	dst.Fitness = 99.0

	if err := CopyGenome(dst, src); err != nil {
		t.Fatalf("CopyGenome: %v", err)
	}
	for i := range dst.Genes {
		if dst.Genes[i] != src.Genes[i] {
			t.Fatalf("gene %d not copied", i)
		}
	}
	if dst.Fitness != 99.0 {
		t.Errorf("fitness overwritten to %v; CopyGenome must not touch it", dst.Fitness)
	}
}

func TestCopyGenomeLengthMismatch(t *testing.T) {
	src := taggedChromosome(4, 1)
	dst := taggedChromosome(3, 0)
	if err := CopyGenome(dst, src); !errors.Is(err, ErrGenomeLength) {
		t.Errorf("err = %v, want ErrGenomeLength", err)
	}
}

func TestRandomizeChromosomeResetsFitness(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	c := taggedChromosome(8, 0)
	c.Fitness = 1.0

	RandomizeChromosome(rng, c, 640, 480)

	if c.Fitness != FitnessUnset {
		t.Errorf("fitness = %v, want FitnessUnset", c.Fitness)
	}
	if len(c.Genes) != 8 {
		t.Errorf("genome length changed to %d", len(c.Genes))
	}
}

func TestHeapAllocatorGenomeLength(t *testing.T) {
	var alloc HeapAllocator
	for _, n := range []int{1, 4, 100} {
		c := alloc.New(n)
		if len(c.Genes) != n {
			t.Errorf("New(%d): genome length %d", n, len(c.Genes))
		}
		if c.Fitness != FitnessUnset {
			t.Errorf("New(%d): fitness %v, want FitnessUnset", n, c.Fitness)
		}
	}
}
