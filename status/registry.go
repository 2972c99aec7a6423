// Package status publishes engine progress as lock-free metrics.
// The engine writes once per generation; consumers (viewer status line,
// benchmark reporting) read at arbitrary times without coordination.
package status

import "sync/atomic"

// Registry holds the metrics one evolution run exposes.
// All fields are safe for concurrent use; zero value is ready.
type Registry struct {
	// Generation is the last completed generation number
	Generation atomic.Int64

	// Evaluations counts fitness function invocations
	Evaluations atomic.Int64

	// Migrations counts completed ring migrations
	Migrations atomic.Int64

	// BestFitness is the fitness of the published best snapshot
	BestFitness AtomicFloat

	// GenDurationMS is the wall time of the last generation in milliseconds
	GenDurationMS AtomicFloat
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{}
}
