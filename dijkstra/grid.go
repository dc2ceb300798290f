package dijkstra

import (
	"fmt"

	"github.com/spencewenski/advent-of-code-2021/gridgraph"
	"github.com/spencewenski/advent-of-code-2021/position"
)

// Grid is a materialised CostGrid backed by a gridgraph.Grid.
type Grid struct {
	cells *gridgraph.Grid[uint8]
}

// NewGrid validates costs (each in [1, 9], rectangular, non-empty) and
// returns the corresponding Grid.
func NewGrid(costs [][]uint8) (*Grid, error) {
	cells, err := gridgraph.New(costs, gridgraph.Conn4)
	if err != nil {
		return nil, err
	}
	for _, p := range cells.Positions() {
		if c := cells.At(p); c < 1 || c > 9 {
			return nil, fmt.Errorf("%w: %d at %s", ErrBadCost, c, p)
		}
	}

	return &Grid{cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.Width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.Height }

// Cost returns the entry cost of p.
func (g *Grid) Cost(p position.Position) int { return int(g.cells.At(p)) }

// Tiled is a virtual factor×factor replication of a base grid. The copy at
// tile (tx, ty) adds tx+ty to every cost, wrapping 10 → 1 so no cost is 0.
// Costs are computed on demand; the enlarged grid is never stored.
type Tiled struct {
	base   CostGrid
	factor int
}

// Tile returns the factor×factor tiling of base.
func Tile(base CostGrid, factor int) (*Tiled, error) {
	if base == nil {
		return nil, ErrNilGrid
	}
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadTileFactor, factor)
	}

	return &Tiled{base: base, factor: factor}, nil
}

// Width returns factor × base width.
func (t *Tiled) Width() int { return t.base.Width() * t.factor }

// Height returns factor × base height.
func (t *Tiled) Height() int { return t.base.Height() * t.factor }

// Cost returns ((base − 1 + tx + ty) mod 9) + 1 for the base cell under p.
func (t *Tiled) Cost(p position.Position) int {
	bw, bh := t.base.Width(), t.base.Height()
	tx, x := p.X/bw, p.X%bw
	ty, y := p.Y/bh, p.Y%bh

	return (t.base.Cost(position.New(x, y))-1+tx+ty)%9 + 1
}
