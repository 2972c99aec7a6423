package genetic

import (
	"math/rand/v2"
	"testing"
)

func chromWithFitness(f float64) *Chromosome {
	return &Chromosome{Genes: make([]Gene, 4), Fitness: f}
}

func popWithFitness(fs ...float64) []*Chromosome {
	pop := make([]*Chromosome, len(fs))
	for i, f := range fs {
		pop[i] = chromWithFitness(f)
	}
	return pop
}

func TestPartitionIslandsCoversPopulation(t *testing.T) {
	cases := []struct {
		popSize int
		count   int
	}{
		{8, 1}, {8, 2}, {8, 4}, {9, 4}, {10, 3}, {100, 8}, {7, 7}, {5, 4},
	}

	for _, tc := range cases {
		ranges := partitionIslands(tc.popSize, tc.count)
		if len(ranges) != tc.count {
			t.Fatalf("popSize=%d count=%d: got %d ranges", tc.popSize, tc.count, len(ranges))
		}

		next := 0
		for i, r := range ranges {
			if r.Start != next {
				t.Errorf("popSize=%d count=%d island %d: start %d, want %d", tc.popSize, tc.count, i, r.Start, next)
			}
			if r.End < r.Start {
				t.Errorf("popSize=%d count=%d island %d: empty range [%d..%d]", tc.popSize, tc.count, i, r.Start, r.End)
			}
			next = r.End + 1
		}
		if next != tc.popSize {
			t.Errorf("popSize=%d count=%d: ranges end at %d", tc.popSize, tc.count, next)
		}
	}
}

func TestPartitionIslandsLastAbsorbsRemainder(t *testing.T) {
	ranges := partitionIslands(10, 4)
	last := ranges[len(ranges)-1]
	if last.size() != 4 {
		t.Errorf("last island size = %d, want 4", last.size())
	}
	for i := 0; i < 3; i++ {
		if ranges[i].size() != 2 {
			t.Errorf("island %d size = %d, want 2", i, ranges[i].size())
		}
	}
}

func TestFindBestFirstWinsTies(t *testing.T) {
	pop := popWithFitness(10.0, 1.0, 5.0, 1.0)
	if got := findBest(pop, 0, 3); got != pop[1] {
		t.Errorf("findBest returned index with fitness %v, want first-encountered 1.0", got.Fitness)
	}
}

func TestFindWorstIndexFirstWinsTies(t *testing.T) {
	pop := popWithFitness(3.0, 9.0, 9.0, 1.0)
	if got := findWorstIndex(pop, 0, 3); got != 1 {
		t.Errorf("findWorstIndex = %d, want 1", got)
	}
}

func TestFindBestRespectsRange(t *testing.T) {
	pop := popWithFitness(0.1, 10.0, 5.0, 0.2)
	if got := findBest(pop, 1, 2); got != pop[2] {
		t.Errorf("findBest over [1..2] returned fitness %v, want 5.0", got.Fitness)
	}
}

func TestBetterOfSelection(t *testing.T) {
	pop := popWithFitness(10.0, 1.0, 5.0, 1.0)

	if got := betterOf(pop, 0, 1); got != pop[1] {
		t.Errorf("draw (0,1): got fitness %v, want 1.0 at index 1", got.Fitness)
	}
	// Tie favors the first-drawn index
	if got := betterOf(pop, 1, 3); got != pop[1] {
		t.Error("draw (1,3) tie: want index 1 (first-drawn)")
	}
	if got := betterOf(pop, 3, 1); got != pop[3] {
		t.Error("draw (3,1) tie: want index 3 (first-drawn)")
	}
}

func TestTournamentNeverPicksOutsideRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	pop := popWithFitness(0.0, 5.0, 6.0, 7.0, 0.0)

	for i := 0; i < 200; i++ {
		got := tournamentInRange(rng, pop, 1, 3)
		if got == pop[0] || got == pop[4] {
			t.Fatal("tournament selected a chromosome outside [1..3]")
		}
	}
}

func TestEliteIndices(t *testing.T) {
	pop := popWithFitness(4.0, 2.0, 3.0, 2.0)

	got := eliteIndices(pop, 0, 3, 2)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("eliteIndices = %v, want [1 3]", got)
	}

	if got := eliteIndices(pop, 0, 3, 10); len(got) != 4 {
		t.Errorf("k beyond range size: got %d indices, want 4", len(got))
	}
}

func TestMigrateRing(t *testing.T) {
	// Two islands of 3; island 0 best at 0, worst at 2; island 1 best at 4,
	// worst at 3
	pop := popWithFitness(1.0, 5.0, 9.0, 8.0, 2.0, 6.0)
	for i, c := range pop {
		for g := range c.Genes {
			c.Genes[g].CX = i // tag genomes by slot
		}
	}
	islands := []islandRange{{0, 2}, {3, 5}}

	snapshot := make([][]Gene, len(pop))
	for i, c := range pop {
		snapshot[i] = append([]Gene(nil), c.Genes...)
	}

	migrate(islands, pop)

	// Island 0's worst (slot 2) received island 1's best (slot 4)
	if pop[2].Genes[0].CX != 4 || pop[2].Fitness != 2.0 {
		t.Errorf("island 0 worst: genome tag %d fitness %v, want tag 4 fitness 2.0",
			pop[2].Genes[0].CX, pop[2].Fitness)
	}
	// Island 1's worst (slot 3) received island 0's best (slot 0)
	if pop[3].Genes[0].CX != 0 || pop[3].Fitness != 1.0 {
		t.Errorf("island 1 worst: genome tag %d fitness %v, want tag 0 fitness 1.0",
			pop[3].Genes[0].CX, pop[3].Fitness)
	}

	// No other slot's genome changed
	for _, i := range []int{0, 1, 4, 5} {
		for g := range pop[i].Genes {
			if pop[i].Genes[g] != snapshot[i][g] {
				t.Errorf("slot %d genome changed during migration", i)
			}
		}
	}
}

func TestMigrateSingleIslandSelfCopies(t *testing.T) {
	pop := popWithFitness(1.0, 5.0, 9.0)
	islands := []islandRange{{0, 2}}

	migrate(islands, pop)

	// Worst replaced by the island's own best
	if pop[2].Fitness != 1.0 {
		t.Errorf("worst fitness after self-migration = %v, want 1.0", pop[2].Fitness)
	}
}

func TestMigrateBestEqualsWorstHandle(t *testing.T) {
	pop := popWithFitness(1.0)
	islands := []islandRange{{0, 0}}

	// Best == worst handle; must not self-copy or panic
	migrate(islands, pop)
	if pop[0].Fitness != 1.0 {
		t.Errorf("fitness changed: %v", pop[0].Fitness)
	}
}
