package gridgraph

import "github.com/spencewenski/advent-of-code-2021/position"

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values does not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](values [][]T, conn Connectivity) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]T, w)
		copy(cells[y], values[y])
	}

	return &Grid[T]{Width: w, Height: h, Cells: cells, Conn: conn}, nil
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	out, _ := New(g.Cells, g.Conn) // g is rectangular and non-empty by construction

	return out
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p position.Position) bool {
	return p.In(g.Width, g.Height)
}

// At returns the value stored at p. p must be in bounds.
func (g *Grid[T]) At(p position.Position) T {
	return g.Cells[p.Y][p.X]
}

// Ptr returns a pointer to the cell at p for in-place updates. p must be in bounds.
func (g *Grid[T]) Ptr(p position.Position) *T {
	return &g.Cells[p.Y][p.X]
}

// Set stores v at p. p must be in bounds.
func (g *Grid[T]) Set(p position.Position, v T) {
	g.Cells[p.Y][p.X] = v
}

// Len returns the number of cells, W×H.
func (g *Grid[T]) Len() int {
	return g.Width * g.Height
}

// Index converts p to its row-major index.
func (g *Grid[T]) Index(p position.Position) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a position.
func (g *Grid[T]) Coordinate(idx int) position.Position {
	return position.New(idx%g.Width, idx/g.Width)
}

// Neighbors returns the in-bounds neighbours of p according to g.Conn.
// Complexity: O(d), d = 4 or 8.
func (g *Grid[T]) Neighbors(p position.Position) []position.Position {
	return p.Neighbors(g.Conn.Offsets(), g.Width, g.Height)
}

// Positions returns every position of the grid in row-major order.
func (g *Grid[T]) Positions() []position.Position {
	out := make([]position.Position, 0, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, position.New(x, y))
		}
	}

	return out
}
