// Package cascade implements a synchronous cellular automaton in which cells
// accumulate energy, discharge ("flash") once they reach a threshold, and pass
// one unit of energy to each of their eight neighbours.
//
// One Step performs:
//
//  1. Charge: every cell gains one unit of energy.
//  2. Cascade: every cell at or above FlashThreshold that has not flashed in
//     this step flashes and charges its neighbours. Neighbours pushed over
//     the threshold flash in turn. An iterative worklist drives the cascade,
//     so no cell is processed twice and the call stack stays flat.
//  3. Reset: every cell that flashed returns to zero energy.
//
// Complexity:
//
//   - Step: O(W×H) time; each cell enters the worklist at most 9 times.
//   - Memory: O(W×H) for the field and the worklist.
//
// Errors:
//
//   - ErrEnergyRange:   an initial level lies outside [0, 9].
//   - ErrNoConvergence: FirstSynchronousStep found no synchronous step within SyncLimit.
//   - gridgraph.ErrEmptyGrid / gridgraph.ErrNonRectangular from NewField.
package cascade
