package dijkstra

import (
	"errors"
	"math"

	"github.com/spencewenski/advent-of-code-2021/position"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGrid indicates that a nil CostGrid was passed to ShortestPath.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadCost indicates a cell cost outside [1, 9].
	ErrBadCost = errors.New("dijkstra: cell cost must be in [1, 9]")

	// ErrBadTileFactor indicates a tiling factor below 1.
	ErrBadTileFactor = errors.New("dijkstra: tile factor must be at least 1")

	// ErrOutOfBounds indicates the source or target lies outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: position outside grid")

	// ErrNoPath indicates the target was never settled.
	ErrNoPath = errors.New("dijkstra: target unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// CostGrid is a rectangular grid of positive cell entry costs.
type CostGrid interface {
	Width() int
	Height() int
	// Cost returns the price of entering p, in [1, 255]. p is always in bounds.
	Cost(p position.Position) int
}

// Options configures the behavior of ShortestPath.
//
// Source      – starting cell; defaults to (0, 0).
// Target      – destination cell; defaults to the bottom-right corner.
// ReturnPath  – if true, Result.Path is filled in.
// MaxDistance – cells farther than this are not explored. Default math.MaxInt.
type Options struct {
	Source      position.Position
	Target      position.Position
	ReturnPath  bool
	MaxDistance int

	targetSet bool
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// Source sets the starting cell.
func Source(p position.Position) Option {
	return func(o *Options) {
		o.Source = p
	}
}

// Target sets the destination cell.
func Target(p position.Position) Option {
	return func(o *Options) {
		o.Target = p
		o.targetSet = true
	}
}

// WithReturnPath enables reconstruction of the settled route in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Cells whose shortest
// distance would exceed max are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the options used when none are supplied:
// source (0, 0), target at the bottom-right corner, no path, no cap.
func DefaultOptions() Options {
	return Options{
		Source:      position.New(0, 0),
		ReturnPath:  false,
		MaxDistance: math.MaxInt,
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Distance is the sum of entry costs along the route, excluding the source.
	Distance int

	// Path lists the route from Source to Target inclusive. Nil unless
	// WithReturnPath was given.
	Path []position.Position

	// Settled counts the cells whose distance was finalised before the
	// target settled.
	Settled int
}
