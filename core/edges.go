package core

import (
	"fmt"
	"sort"
)

// AddEdge connects from and to, creating missing endpoints, and returns the
// new edge ID.
//
// Validation (in order):
//  1. Both IDs must be non-empty (ErrEmptyVertexID).
//  2. from != to (ErrLoopNotAllowed).
//  3. No from→to edge exists yet (ErrMultiEdgeNotAllowed).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.adjacency[from][to]) > 0 {
		return "", fmt.Errorf("%w: %s → %s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	eid := fmt.Sprintf("e%d", g.nextEdgeID)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}

	g.adjacency[from][to] = append(g.adjacency[from][to], eid)
	if !g.directed {
		g.adjacency[to][from] = append(g.adjacency[to][from], eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge leads from → to.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// NeighborIDs returns the distinct IDs reachable from id over one edge,
// sorted ascending. Returns ErrVertexNotFound for an unknown id.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(nbrs))
	for to, eids := range nbrs {
		if len(eids) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Edges returns all edges sorted by numeric ID order of creation.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
