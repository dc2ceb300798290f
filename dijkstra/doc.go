// Package dijkstra computes minimum-cost routes across rectangular grids of
// positive entry costs using Dijkstra's algorithm.
//
// Overview:
//
//   - A route moves between 4-connected cells. Entering a cell costs that
//     cell's value; the cost of the source cell is never paid.
//   - A min-heap keyed by tentative distance always expands the closest
//     unsettled cell. A cell is settled the first time it is popped with its
//     current best distance, and the search stops once the target settles.
//   - Grids are read through the CostGrid interface, so large derived grids
//     (see Tile) are evaluated lazily instead of being materialised.
//
// Key features:
//
//   - Functional options: Source, Target, WithReturnPath, WithMaxDistance.
//   - ReturnPath: if enabled, Result.Path lists every cell from source to target.
//   - MaxDistance: abandons exploration beyond a distance cap.
//   - Tile: a virtual k×k replication of a base grid where tile (tx, ty)
//     shifts every cost by tx+ty, wrapping 10 → 1.
//
// Performance and complexity (V = W×H cells, E ≤ 4V moves):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) node records plus O(E) heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:       a nil CostGrid was passed to ShortestPath.
//   - ErrBadCost:       NewGrid saw a cost outside [1, 9].
//   - ErrBadTileFactor: Tile was asked for a factor below 1.
//   - ErrOutOfBounds:   source or target lies outside the grid.
//   - ErrNoPath:        the target could not be settled.
//   - ErrBadMaxDistance (via panic) for a negative WithMaxDistance.
package dijkstra
