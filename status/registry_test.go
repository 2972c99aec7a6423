package status

import (
	"sync"
	"testing"
)

func TestAtomicFloatSetGet(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("zero value = %v, want 0", f.Get())
	}

	f.Set(3.25)
	if f.Get() != 3.25 {
		t.Errorf("Get = %v, want 3.25", f.Get())
	}

	f.Set(-1e30)
	if f.Get() != -1e30 {
		t.Errorf("Get = %v, want -1e30", f.Get())
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	if got := f.Add(2.5); got != 4.0 {
		t.Errorf("Add returned %v, want 4.0", got)
	}
	if f.Get() != 4.0 {
		t.Errorf("Get = %v, want 4.0", f.Get())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup

	const workers = 8
	const perWorker = 1000
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				f.Add(1.0)
			}
		}()
	}
	wg.Wait()

	if f.Get() != workers*perWorker {
		t.Errorf("concurrent adds = %v, want %d", f.Get(), workers*perWorker)
	}
}

func TestRegistryConcurrentReadWrite(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			reg.Generation.Store(int64(i))
			reg.BestFitness.Set(float64(1000 - i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = reg.Generation.Load()
			_ = reg.BestFitness.Get()
		}
	}()
	wg.Wait()

	if reg.Generation.Load() != 999 {
		t.Errorf("final generation = %d, want 999", reg.Generation.Load())
	}
	if reg.BestFitness.Get() != 1.0 {
		t.Errorf("final best fitness = %v, want 1.0", reg.BestFitness.Get())
	}
}
