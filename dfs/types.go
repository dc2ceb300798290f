package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AllPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetNotFound indicates that the target vertex does not exist.
	ErrTargetNotFound = errors.New("dfs: target vertex not found")
)

// Option configures optional behavior of AllPaths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Admit reports whether the walk may step onto id next. It is called
	// with the walk as it stands before the step. Nil admits only vertices
	// with Visits(id) == 0.
	Admit func(id string, w *Walk) bool

	// Tracked marks vertices whose second visit increments Walk.Repeats.
	// Nil tracks nothing.
	Tracked func(id string) bool

	// OnPath, if non-nil, is invoked with each complete walk. The slice is
	// only valid during the call. Returning an error aborts enumeration.
	OnPath func(path []string) error

	// CollectPaths stores a copy of every complete walk in PathResult.Paths.
	CollectPaths bool

	// MaxDepth, if non-negative, limits walks to that many edges.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, simple-path
// admission, no hooks, no collection, and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context. Passing nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAdmit installs the admission predicate.
func WithAdmit(fn func(id string, w *Walk) bool) Option {
	return func(o *Options) {
		o.Admit = fn
	}
}

// WithTracked installs the predicate selecting vertices counted by Walk.Repeats.
func WithTracked(fn func(id string) bool) Option {
	return func(o *Options) {
		o.Tracked = fn
	}
}

// WithOnPath installs a hook invoked for every complete walk.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithCollectPaths enables PathResult.Paths.
func WithCollectPaths() Option {
	return func(o *Options) {
		o.CollectPaths = true
	}
}

// WithMaxDepth limits walks to limit edges. A limit of 0 only matches
// when start == target.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// PathResult captures the outcome of AllPaths.
type PathResult struct {
	// Count is the number of distinct complete walks.
	Count uint64

	// Paths holds every walk in discovery order when CollectPaths is set.
	Paths [][]string
}

// Walk is the in-progress path handed to the admission predicate.
type Walk struct {
	path    []string
	visits  map[string]int
	repeats int
	tracked func(string) bool
}

// Visits returns how many times id appears on the current path.
func (w *Walk) Visits(id string) int { return w.visits[id] }

// Path returns the current path. The slice must not be retained or modified.
func (w *Walk) Path() []string { return w.path }


// Repeats returns the number of tracked vertices that appear more than once.
func (w *Walk) Repeats() int { return w.repeats }

func (w *Walk) push(id string) {
	w.path = append(w.path, id)
	w.visits[id]++
	if w.visits[id] == 2 && w.tracked != nil && w.tracked(id) {
		w.repeats++
	}
}

func (w *Walk) pop() {
	id := w.path[len(w.path)-1]
	w.path = w.path[:len(w.path)-1]
	if w.visits[id] == 2 && w.tracked != nil && w.tracked(id) {
		w.repeats--
	}
	w.visits[id]--
}
