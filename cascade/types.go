package cascade

import "errors"

const (
	// FlashThreshold is the energy at which a cell flashes.
	FlashThreshold = 10

	// SyncLimit caps the number of steps FirstSynchronousStep simulates.
	SyncLimit = 1000
)

var (
	// ErrEnergyRange indicates an initial energy level outside [0, 9].
	ErrEnergyRange = errors.New("cascade: initial energy must be in [0, 9]")

	// ErrNoConvergence indicates the field did not flash in unison within SyncLimit steps.
	ErrNoConvergence = errors.New("cascade: no synchronous step within limit")
)

// Cell is a single automaton cell.
//
// Invariant: Flashed implies Energy ≥ FlashThreshold while a step is running;
// between steps every cell has Flashed == false.
type Cell struct {
	Energy  uint8
	Flashed bool
}
