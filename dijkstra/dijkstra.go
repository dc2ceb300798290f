package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/spencewenski/advent-of-code-2021/position"
)

// ShortestPath computes the minimum total entry cost of a 4-connected route
// from Options.Source to Options.Target across g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Source and Target must lie inside g (ErrOutOfBounds).
//
// Returns ErrNoPath if the target cannot be settled within MaxDistance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g CostGrid, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}
	w, h := g.Width(), g.Height()
	if !cfg.targetSet {
		cfg.Target = position.New(w-1, h-1)
	}

	// 3) Validate endpoints
	if !cfg.Source.In(w, h) {
		return nil, fmt.Errorf("%w: source %s", ErrOutOfBounds, cfg.Source)
	}
	if !cfg.Target.In(w, h) {
		return nil, fmt.Errorf("%w: target %s", ErrOutOfBounds, cfg.Target)
	}

	// 4) Prepare node records, one per logical cell.
	r := &runner{
		g:       g,
		w:       w,
		h:       h,
		options: cfg,
		nodes:   make([]node, w*h),
		pq:      make(nodePQ, 0, w+h),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, w*h)
	}

	// 5) Initialize and run main loop.
	r.init()
	r.process()

	t := r.index(cfg.Target)
	if !r.nodes[t].done {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, cfg.Source, cfg.Target)
	}

	res := &Result{Distance: r.nodes[t].best, Settled: r.settled}
	if cfg.ReturnPath {
		res.Path = r.path(t)
	}

	return res, nil
}

// node is the per-cell search record.
//
// cost is the entry cost, loaded the first time the cell is relaxed (0 = not loaded).
// best is the tentative distance; it only decreases until done is set, and is final afterwards.
type node struct {
	cost uint8
	best int
	done bool
}

// runner holds the mutable state for a single search.
type runner struct {
	g       CostGrid
	w, h    int
	options Options
	nodes   []node // row-major, indexed by y*w + x
	prev    []int  // predecessor index, -1 for the source; nil unless ReturnPath
	pq      nodePQ
	settled int
}

func (r *runner) index(p position.Position) int {
	return p.Y*r.w + p.X
}

func (r *runner) coordinate(i int) position.Position {
	return position.New(i%r.w, i/r.w)
}

// entryCost returns the entry cost of cell i, reading it from the grid once.
func (r *runner) entryCost(i int) int {
	n := &r.nodes[i]
	if n.cost == 0 {
		n.cost = uint8(r.g.Cost(r.coordinate(i)))
	}

	return int(n.cost)
}

// init sets every tentative distance to +∞, then seeds the source at 0.
func (r *runner) init() {
	for i := range r.nodes {
		r.nodes[i].best = math.MaxInt
	}
	for i := range r.prev {
		r.prev[i] = -1
	}

	src := r.index(r.options.Source)
	r.nodes[src].best = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process is the core loop. It stops when the heap is empty, when the target
// settles, or when the closest remaining entry exceeds MaxDistance.
func (r *runner) process() {
	target := r.index(r.options.Target)
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		n := &r.nodes[item.idx]

		// 2) Skip stale entries: already settled, or superseded by a better push.
		if n.done || item.dist > n.best {
			continue
		}

		// 3) Stop once the frontier is beyond the distance cap.
		if item.dist > r.options.MaxDistance {
			return
		}

		// 4) Settle.
		n.done = true
		r.settled++
		if item.idx == target {
			return
		}

		// 5) Relax the four orthogonal neighbours.
		r.relax(item.idx)
	}
}

// relax tries to improve each unsettled neighbour of u through u.
func (r *runner) relax(u int) {
	from := r.coordinate(u)
	base := r.nodes[u].best
	for _, q := range from.Adjacent(r.w, r.h) {
		v := r.index(q)
		if r.nodes[v].done {
			continue
		}

		newDist := base + r.entryCost(v)
		if newDist > r.options.MaxDistance || newDist >= r.nodes[v].best {
			continue
		}

		r.nodes[v].best = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		// Lazy decrease-key: the older entry for v stays in the heap and is
		// discarded when popped.
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// path walks predecessors back from t and returns the route source → t.
func (r *runner) path(t int) []position.Position {
	var rev []position.Position
	for at := t; at >= 0; at = r.prev[at] {
		rev = append(rev, r.coordinate(at))
	}
	out := make([]position.Position, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}

	return out
}

// nodeItem is a heap entry: a cell index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
