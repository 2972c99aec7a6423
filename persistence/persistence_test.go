package persistence

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/artevo/genetic"
)

func randomChromosome(n int) *genetic.Chromosome {
	rng := rand.New(rand.NewPCG(5, 5))
	c := &genetic.Chromosome{Genes: make([]genetic.Gene, n)}
	genetic.RandomizeChromosome(rng, c, 640, 480)
	c.Fitness = 123.5
	return c
}

func TestSolutionRoundTrip(t *testing.T) {
	m := NewManager(t.TempDir())
	src := randomChromosome(16)

	if m.Exists("best") {
		t.Fatal("solution reported as existing before save")
	}
	if err := m.Save("best", ToDTO(src, 640, 480)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !m.Exists("best") {
		t.Fatal("solution not reported as existing after save")
	}

	dto, err := m.Load("best")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dto.Width != 640 || dto.Height != 480 {
		t.Errorf("bounds = %dx%d, want 640x480", dto.Width, dto.Height)
	}

	got, err := FromDTO(dto)
	if err != nil {
		t.Fatalf("FromDTO: %v", err)
	}
	if got.Fitness != src.Fitness {
		t.Errorf("fitness = %v, want %v", got.Fitness, src.Fitness)
	}
	if len(got.Genes) != len(src.Genes) {
		t.Fatalf("genome length = %d, want %d", len(got.Genes), len(src.Genes))
	}
	for i := range got.Genes {
		if got.Genes[i] != src.Genes[i] {
			t.Errorf("gene %d differs: %+v vs %+v", i, got.Genes[i], src.Genes[i])
		}
	}
}

func TestFromDTOUnknownKind(t *testing.T) {
	dto := SolutionDTO{Genes: []GeneDTO{{Kind: "pentagon"}}}
	if _, err := FromDTO(dto); err == nil {
		t.Error("unknown gene kind accepted")
	}
}

func TestLoadMissingSolution(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("absent"); err == nil {
		t.Error("loading a missing solution did not error")
	}
}
