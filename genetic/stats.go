package genetic

import (
	"gonum.org/v1/gonum/stat"
)

// PoolStats holds statistical measures of one generation's population
type PoolStats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	StdDev     float64
}

// calculateStats computes fitness statistics across the population
func calculateStats(pop []*Chromosome, generation int) PoolStats {
	if len(pop) == 0 {
		return PoolStats{Generation: generation}
	}

	fit := make([]float64, len(pop))
	s := PoolStats{
		Generation: generation,
		Best:       pop[0].Fitness,
		Worst:      pop[0].Fitness,
	}
	for i, c := range pop {
		fit[i] = c.Fitness
		if c.Fitness < s.Best {
			s.Best = c.Fitness
		}
		if c.Fitness > s.Worst {
			s.Worst = c.Fitness
		}
	}

	s.Mean = stat.Mean(fit, nil)
	if len(fit) > 1 {
		s.StdDev = stat.StdDev(fit, nil)
	}
	return s
}
