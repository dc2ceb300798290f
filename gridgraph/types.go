package gridgraph

import "github.com/spencewenski/advent-of-code-2021/position"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets returns the neighbor offsets for c.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return position.Offsets8
	}

	return position.Offsets4
}

// Grid is a rectangular row-major array of T.
// Width and Height define dimensions; Cells[y][x] holds the value at (x, y).
// Every row has exactly Width entries.
type Grid[T any] struct {
	Width, Height int
	Cells         [][]T
	Conn          Connectivity
}
