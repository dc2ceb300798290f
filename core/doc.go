// Package core provides a small in-memory Graph keyed by string vertex IDs.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-vertex Metadata for algorithm-specific labels
//   - Sequential Edge.ID generation ("e1", "e2", …)
//
// Deterministic iteration: Vertices, Edges and NeighborIDs all return
// sorted results, so algorithms built on top (see package dfs) visit
// neighbours in a reproducible order.
//
// All methods are safe for concurrent use; a single sync.RWMutex guards
// the vertex catalog, the edge catalog and the adjacency index together.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same pair of vertices.
package core
