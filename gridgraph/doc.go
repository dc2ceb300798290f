// Package gridgraph treats a rectangular 2-D grid of cells as a graph whose
// vertices are positions and whose edges join neighbouring cells.
//
// What:
//
//   - Grid[T] wraps a rectangular row-major [][]T with a chosen Connectivity.
//   - Neighbors lists the in-bounds neighbours of a cell (Conn4 or Conn8).
//   - ConnectedComponents groups member cells into contiguous regions.
//
// Why:
//
//   - Cellular automata: 8-connected energy cascades.
//   - Cost grids: 4-connected shortest paths.
//   - Terrain analysis: basins bounded by ridge cells.
//
// Complexity:
//
//   - New:                 O(W×H) time and memory (deep copy).
//   - Neighbors:           O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
