package genetic

import (
	"sync"
	"sync/atomic"
)

// evalJob tells a worker which population array to score this generation.
// Each worker only touches its own fixed index range of the array, so the
// send on the command channel is the happens-before edge for the rebind
// and the receive on done is the edge for the fitness writes.
type evalJob struct {
	pop []*Chromosome
}

// workerPool runs one long-lived evaluation goroutine per island.
// Workers are commanded through per-worker channels and report through a
// shared done channel; closing the command channels is the stop signal,
// which keeps the start/done protocol symmetric on every path.
type workerPool struct {
	ranges    []islandRange
	evaluator Evaluator

	cmds []chan evalJob
	done chan struct{}

	evals    *atomic.Int64
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// newWorkerPool spawns the workers immediately; they block on their
// command channels until the first evaluate call
func newWorkerPool(ranges []islandRange, evaluator Evaluator, evals *atomic.Int64) *workerPool {
	p := &workerPool{
		ranges:    ranges,
		evaluator: evaluator,
		cmds:      make([]chan evalJob, len(ranges)),
		done:      make(chan struct{}, len(ranges)),
		evals:     evals,
	}

	for i := range p.cmds {
		p.cmds[i] = make(chan evalJob)
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

func (p *workerPool) worker(id int) {
	defer p.wg.Done()
	r := p.ranges[id]

	for job := range p.cmds[id] {
		for i := r.Start; i <= r.End; i++ {
			c := job.pop[i]
			if c == nil {
				continue
			}
			c.Fitness = p.evaluator.Evaluate(c)
			if p.evals != nil {
				p.evals.Add(1)
			}
		}
		p.done <- struct{}{}
	}
}

// evaluate scores every chromosome of pop in parallel and returns once all
// workers have finished. The caller must not read fitness fields or mutate
// pop while the call is in flight.
func (p *workerPool) evaluate(pop []*Chromosome) {
	for i := range p.cmds {
		p.cmds[i] <- evalJob{pop: pop}
	}
	for range p.cmds {
		<-p.done
	}
}

// stop terminates all workers and waits for them to exit. Safe to call
// more than once and safe to call without any evaluate having run.
func (p *workerPool) stop() {
	p.stopOnce.Do(func() {
		for i := range p.cmds {
			close(p.cmds[i])
		}
	})
	p.wg.Wait()
}
