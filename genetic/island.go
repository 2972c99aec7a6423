package genetic

import (
	"math/rand/v2"
	"sort"
)

// islandRange is a contiguous [Start..End] inclusive slice of the
// population array owned by one island
type islandRange struct {
	Start int
	End   int
}

func (r islandRange) size() int { return r.End - r.Start + 1 }

// partitionIslands splits [0, popSize) into count contiguous ranges.
// The last island absorbs the remainder of the integer division.
func partitionIslands(popSize, count int) []islandRange {
	ranges := make([]islandRange, count)
	islSize := popSize / count
	for i := range ranges {
		ranges[i].Start = i * islSize
		if i == count-1 {
			ranges[i].End = popSize - 1
		} else {
			ranges[i].End = (i+1)*islSize - 1
		}
	}
	return ranges
}

// findBest returns the chromosome with the lowest fitness in [start..end].
// First encountered wins ties.
func findBest(pop []*Chromosome, start, end int) *Chromosome {
	best := pop[start]
	for i := start + 1; i <= end; i++ {
		if pop[i].Fitness < best.Fitness {
			best = pop[i]
		}
	}
	return best
}

// findWorstIndex returns the index of the highest fitness in [start..end].
// First encountered wins ties.
func findWorstIndex(pop []*Chromosome, start, end int) int {
	worst := start
	for i := start + 1; i <= end; i++ {
		if pop[i].Fitness > pop[worst].Fitness {
			worst = i
		}
	}
	return worst
}

// eliteIndices returns the k lowest-fitness indices of [start..end],
// best first. Ties keep the lower index first (stable sort).
func eliteIndices(pop []*Chromosome, start, end, k int) []int {
	idx := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return pop[idx[a]].Fitness < pop[idx[b]].Fitness
	})
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}

// betterOf resolves one tournament: the chromosome at i wins unless j is
// strictly fitter. Ties favor the first-drawn index.
func betterOf(pop []*Chromosome, i, j int) *Chromosome {
	if pop[i].Fitness <= pop[j].Fitness {
		return pop[i]
	}
	return pop[j]
}

// tournamentInRange draws two independent indices in [a..b] (with
// replacement) and returns the fitter chromosome
func tournamentInRange(rng *rand.Rand, pop []*Chromosome, a, b int) *Chromosome {
	i := a + rng.IntN(b-a+1)
	j := a + rng.IntN(b-a+1)
	return betterOf(pop, i, j)
}

// migrate exchanges elites between islands in a ring: each island's worst
// individual is overwritten (genome and fitness) by a copy of the previous
// island's best. Operates in place on the current population.
func migrate(islands []islandRange, pop []*Chromosome) {
	migrants := make([]*Chromosome, len(islands))
	for i, isl := range islands {
		migrants[i] = findBest(pop, isl.Start, isl.End)
	}

	for dest, isl := range islands {
		src := (dest - 1 + len(islands)) % len(islands)
		widx := findWorstIndex(pop, isl.Start, isl.End)
		if pop[widx] == migrants[src] {
			// Single island with best == worst handle; nothing to move
			continue
		}
		CopyGenome(pop[widx], migrants[src])
		pop[widx].Fitness = migrants[src].Fitness
	}
}
