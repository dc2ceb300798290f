package dfs

import (
	"fmt"

	"github.com/spencewenski/advent-of-code-2021/core"
)

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph  *core.Graph
	opts   Options
	target string
	walk   *Walk
	nbrs   map[string][]string // cached sorted neighbour IDs
	res    *PathResult
}

// AllPaths enumerates every walk from start to target admitted by the
// configured predicate and returns the count (and the walks themselves with
// WithCollectPaths).
//
// The start vertex is on the path from the outset, so with the default
// predicate it is never re-entered.
//
// Complexity:
//
//   - Time:   O(P · L) for P walks of length at most L, plus predicate cost.
//   - Memory: O(L) for the shared path, plus O(P · L) when collecting.
func AllPaths(g *core.Graph, start, target string, opts ...Option) (*PathResult, error) {
	// 1. Validate input graph and endpoints
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}

	// 2. Apply options
	popts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&popts)
	}
	if popts.Admit == nil {
		popts.Admit = func(id string, w *Walk) bool { return w.Visits(id) == 0 }
	}

	// 3. Walk from start
	w := &pathWalker{
		graph:  g,
		opts:   popts,
		target: target,
		walk:   &Walk{visits: make(map[string]int), tracked: popts.Tracked},
		nbrs:   make(map[string][]string),
		res:    &PathResult{},
	}
	if err := w.visit(start, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// visit pushes id, records a walk if id is the target, otherwise recurses
// into every admitted neighbour, and pops id before returning.
func (w *pathWalker) visit(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.walk.push(id)
	defer w.walk.pop()

	// 2. Reaching the target completes a walk
	if id == w.target {
		return w.record()
	}

	// 3. Depth limit
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// 4. Explore admitted neighbours
	nbrs, err := w.neighbors(id)
	if err != nil {
		return err
	}
	for _, nid := range nbrs {
		if !w.opts.Admit(nid, w.walk) {
			continue
		}
		if err = w.visit(nid, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (w *pathWalker) record() error {
	w.res.Count++
	if w.opts.CollectPaths {
		w.res.Paths = append(w.res.Paths, append([]string(nil), w.walk.Path()...))
	}
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(w.walk.Path()); err != nil {
			return fmt.Errorf("dfs: OnPath hook: %w", err)
		}
	}

	return nil
}

func (w *pathWalker) neighbors(id string) ([]string, error) {
	if nbrs, ok := w.nbrs[id]; ok {
		return nbrs, nil
	}
	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	w.nbrs[id] = nbrs

	return nbrs, nil
}
