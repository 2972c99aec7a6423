package genetic

import (
	"math/rand/v2"
)

// RandomizeChromosome fills the genome with random genes and resets fitness
func RandomizeChromosome(rng *rand.Rand, c *Chromosome, width, height int) {
	for i := range c.Genes {
		c.Genes[i] = RandomGene(rng, width, height)
	}
	c.Fitness = FitnessUnset
}

// CopyGenome deep-copies the gene array from src into dst.
// Fitness is deliberately not copied; the caller owns that decision.
func CopyGenome(dst, src *Chromosome) error {
	if len(dst.Genes) != len(src.Genes) {
		return ErrGenomeLength
	}
	copy(dst.Genes, src.Genes)
	return nil
}

// Crossover writes a single-point midpoint crossover of a and b into child:
// the first half of the genome from a, the remainder from b.
// All three genomes must have equal length.
func Crossover(a, b, child *Chromosome) error {
	if len(a.Genes) != len(b.Genes) || len(child.Genes) != len(a.Genes) {
		return ErrGenomeLength
	}
	cut := len(child.Genes) / 2
	copy(child.Genes[:cut], a.Genes[:cut])
	copy(child.Genes[cut:], b.Genes[cut:])
	return nil
}
