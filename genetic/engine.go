// Package genetic implements an island-model genetic algorithm that evolves
// fixed-length genomes of drawable shapes toward a minimal fitness score.
// The engine is domain-agnostic over what a chromosome renders to: scoring
// goes through an injected Evaluator and chromosome storage through an
// injected Allocator.
package genetic

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/artevo/parameter"
	"github.com/lixenwraith/artevo/status"
)

// --- Algorithm Engine ---

// Engine owns the population buffers and orchestrates generations:
// reproduction, parallel evaluation, ring migration and best tracking.
// Run blocks; start it on its own goroutine and poll Best from consumers.
type Engine struct {
	params    Params
	evaluator Evaluator
	alloc     Allocator
	logf      LogFunc
	reg       *status.Registry
	rng       *rand.Rand

	// active guards against overlapping Run calls
	active atomic.Bool
	// stop is the cooperative cancellation flag, checked once per generation
	stop atomic.Bool

	// best snapshot, the sole externally readable output
	bestMu  sync.Mutex
	best    *Chromosome
	hasBest bool

	histMu  sync.Mutex
	history []PoolStats

	evals atomic.Int64
}

// ErrEngineBusy reports a second Run on an engine whose loop is still live
var ErrEngineBusy = errors.New("genetic: engine is already running")

// New creates an engine for the given configuration and evaluator.
// Use the Set* methods before Run to override allocator, logging,
// metrics or seeding.
func New(params Params, evaluator Evaluator) (*Engine, error) {
	if evaluator == nil {
		return nil, errors.New("genetic: evaluator must not be nil")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		params:    params,
		evaluator: evaluator,
		alloc:     HeapAllocator{},
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// SetAllocator replaces the chromosome allocator. Call before Run.
func (e *Engine) SetAllocator(alloc Allocator) {
	e.alloc = alloc
}

// SetLogger installs an optional leveled log callback. Call before Run.
func (e *Engine) SetLogger(logf LogFunc) {
	e.logf = logf
}

// SetStatus installs an optional metrics registry. Call before Run.
func (e *Engine) SetStatus(reg *status.Registry) {
	e.reg = reg
}

// SetSeed makes the controller's random draws reproducible. Call before Run.
func (e *Engine) SetSeed(seed uint64) {
	e.rng = rand.New(rand.NewPCG(seed, seed))
}

// Params returns the validated run configuration
func (e *Engine) Params() Params {
	return e.params
}

// Stop requests cooperative shutdown. The current generation completes
// before the engine observes the flag. Safe to call at any time, from any
// goroutine, any number of times.
func (e *Engine) Stop() {
	e.stop.Store(true)
}

// Best copies out the best solution published so far.
// Returns false before the initial evaluation has completed.
func (e *Engine) Best() (Chromosome, bool) {
	e.bestMu.Lock()
	defer e.bestMu.Unlock()

	if !e.hasBest {
		return Chromosome{}, false
	}
	out := Chromosome{
		Genes:   make([]Gene, len(e.best.Genes)),
		Fitness: e.best.Fitness,
	}
	copy(out.Genes, e.best.Genes)
	return out, true
}

// History returns a copy of the recorded per-generation statistics
func (e *Engine) History() []PoolStats {
	e.histMu.Lock()
	defer e.histMu.Unlock()

	out := make([]PoolStats, len(e.history))
	copy(out, e.history)
	return out
}

// Run executes the full evolution loop: population init, parallel
// evaluation, per-island reproduction with migration, and graceful worker
// shutdown. It returns when MaxIterations is reached, Stop is called, or
// ctx is cancelled; an in-flight evaluation phase always completes first.
func (e *Engine) Run(ctx context.Context) error {
	if !e.active.CompareAndSwap(false, true) {
		return ErrEngineBusy
	}
	defer e.active.Store(false)

	p := e.params
	islands := partitionIslands(p.PopulationSize, p.IslandCount)

	pool := newWorkerPool(islands, e.evaluator, &e.evals)
	defer pool.stop()

	e.bestMu.Lock()
	if e.best == nil {
		e.best = e.alloc.New(p.NbShapes)
	}
	e.bestMu.Unlock()

	// Double-buffered population: pop is authoritative, next is built each
	// generation and swapped in by handle copy
	pop := make([]*Chromosome, p.PopulationSize)
	next := make([]*Chromosome, p.PopulationSize)
	for i := range pop {
		c := e.alloc.New(p.NbShapes)
		RandomizeChromosome(e.rng, c, p.Width, p.Height)
		pop[i] = c
	}
	defer func() {
		for _, c := range pop {
			e.alloc.Free(c)
		}
	}()

	e.log(LogInfo, fmt.Sprintf("engine: %d chromosomes, %d islands, %d workers",
		p.PopulationSize, p.IslandCount, p.IslandCount))

	// Generation 0: evaluate the initial population and seed the snapshot
	pool.evaluate(pop)
	best := findBest(pop, 0, p.PopulationSize-1)
	bestFitness := best.Fitness
	e.publishBest(best)
	e.recordStats(pop, 0, 0)

	for gen := 1; gen <= p.MaxIterations; gen++ {
		if e.stop.Load() || ctx.Err() != nil {
			break
		}
		genStart := time.Now()

		if gen%p.MigrationInterval == 0 {
			migrate(islands, pop)
			if e.reg != nil {
				e.reg.Migrations.Add(1)
			}
		}

		// Reproduction: per island, carry the elite handles over verbatim
		// and breed the remaining slots from island-local tournaments
		for _, isl := range islands {
			k := p.EliteCount
			if k > isl.size() {
				k = isl.size()
			}
			for j, ei := range eliteIndices(pop, isl.Start, isl.End, k) {
				next[isl.Start+j] = pop[ei]
			}

			for i := isl.Start + k; i <= isl.End; i++ {
				pa := tournamentInRange(e.rng, pop, isl.Start, isl.End)
				pb := tournamentInRange(e.rng, pop, isl.Start, isl.End)
				if pb.Fitness < pa.Fitness {
					pa, pb = pb, pa
				}

				child := e.alloc.New(p.NbShapes)
				if e.rng.Float64() < p.CrossoverRate {
					Crossover(pa, pb, child)
				} else {
					CopyGenome(child, pa)
				}
				for g := range child.Genes {
					if e.rng.Float64() < p.MutationRate {
						MutateGene(e.rng, &child.Genes[g], p.Width, p.Height)
					}
				}
				child.Fitness = FitnessUnset
				next[i] = child
			}
		}

		pool.evaluate(next)

		for i := range next {
			if next[i].Fitness < bestFitness {
				bestFitness = next[i].Fitness
				e.publishBest(next[i])
			}
		}

		// Free the replaced generation. Elite handles live in both buffers
		// at this point and must survive.
		for _, isl := range islands {
			k := p.EliteCount
			if k > isl.size() {
				k = isl.size()
			}
			for i := isl.Start; i <= isl.End; i++ {
				kept := false
				for j := 0; j < k; j++ {
					if pop[i] == next[isl.Start+j] {
						kept = true
						break
					}
				}
				if !kept {
					e.alloc.Free(pop[i])
				}
			}
		}
		copy(pop, next)

		e.recordStats(pop, gen, time.Since(genStart))
		if gen%100 == 0 {
			e.log(LogInfo, fmt.Sprintf("generation %d: best fitness %.4f", gen, bestFitness))
		}
	}

	// Graceful shutdown: stop flag first, then terminate workers. The
	// deferred pool.stop is idempotent, so every exit path joins exactly
	// once and never leaves a worker blocked.
	e.stop.Store(true)
	pool.stop()
	e.log(LogInfo, "engine: shutdown complete")

	return ctx.Err()
}

// publishBest copies genome and fitness of c into the snapshot slot
func (e *Engine) publishBest(c *Chromosome) {
	e.bestMu.Lock()
	CopyGenome(e.best, c)
	e.best.Fitness = c.Fitness
	e.hasBest = true
	e.bestMu.Unlock()

	if e.reg != nil {
		e.reg.BestFitness.Set(c.Fitness)
	}
}

func (e *Engine) recordStats(pop []*Chromosome, gen int, dur time.Duration) {
	s := calculateStats(pop, gen)

	e.histMu.Lock()
	if len(e.history) >= parameter.GAStatsHistory {
		copy(e.history, e.history[1:])
		e.history = e.history[:len(e.history)-1]
	}
	e.history = append(e.history, s)
	e.histMu.Unlock()

	if e.reg != nil {
		e.reg.Generation.Store(int64(gen))
		e.reg.Evaluations.Store(e.evals.Load())
		e.reg.GenDurationMS.Set(float64(dur) / float64(time.Millisecond))
	}
}

func (e *Engine) log(level LogLevel, msg string) {
	if e.logf != nil {
		e.logf(level, msg)
	}
}
