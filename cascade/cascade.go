package cascade

import (
	"fmt"

	"github.com/spencewenski/advent-of-code-2021/gridgraph"
	"github.com/spencewenski/advent-of-code-2021/position"
)

// Field is a rectangular grid of cells with 8-connectivity.
// A Field owns its cells; NewField copies the caller's levels.
type Field struct {
	grid *gridgraph.Grid[Cell]
}

// NewField builds a Field from initial energy levels in [0, 9].
func NewField(levels [][]uint8) (*Field, error) {
	cells := make([][]Cell, len(levels))
	for y, row := range levels {
		cells[y] = make([]Cell, len(row))
		for x, e := range row {
			if e >= FlashThreshold {
				return nil, fmt.Errorf("%w: %d at %d,%d", ErrEnergyRange, e, x, y)
			}
			cells[y][x] = Cell{Energy: e}
		}
	}
	grid, err := gridgraph.New(cells, gridgraph.Conn8)
	if err != nil {
		return nil, err
	}

	return &Field{grid: grid}, nil
}

// Size returns the number of cells in the field.
func (f *Field) Size() int {
	return f.grid.Len()
}

// Energy returns the energy of the cell at p.
func (f *Field) Energy(p position.Position) uint8 {
	return f.grid.At(p).Energy
}

// Levels returns a snapshot of the current energy levels, row by row.
func (f *Field) Levels() [][]uint8 {
	out := make([][]uint8, f.grid.Height)
	for y := range out {
		out[y] = make([]uint8, f.grid.Width)
		for x := range out[y] {
			out[y][x] = f.grid.Cells[y][x].Energy
		}
	}

	return out
}

// Step advances the field by one step and returns the positions that flashed,
// in the order they flashed. Each position appears at most once.
func (f *Field) Step() []position.Position {
	// 1) Charge every cell; cells reaching the threshold seed the worklist.
	pending := f.charge()

	// 2) Cascade until no unflashed cell is at or above the threshold.
	flashed := f.cascade(pending)

	// 3) Reset the cells that flashed.
	f.reset(flashed)

	return flashed
}

// charge adds one unit of energy to every cell and returns those that reached the threshold.
func (f *Field) charge() []position.Position {
	var ready []position.Position
	for y := 0; y < f.grid.Height; y++ {
		for x := 0; x < f.grid.Width; x++ {
			c := &f.grid.Cells[y][x]
			c.Energy++
			if c.Energy >= FlashThreshold {
				ready = append(ready, position.New(x, y))
			}
		}
	}

	return ready
}

// cascade drains the worklist. A cell flashes the first time it is popped
// while at or above the threshold; later pops of the same cell are skipped.
func (f *Field) cascade(queue []position.Position) []position.Position {
	var flashed []position.Position
	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		c := f.grid.Ptr(p)
		if c.Flashed || c.Energy < FlashThreshold {
			continue
		}
		c.Flashed = true
		flashed = append(flashed, p)

		for _, q := range f.grid.Neighbors(p) {
			n := f.grid.Ptr(q)
			if n.Flashed {
				continue
			}
			n.Energy++
			if n.Energy == FlashThreshold {
				queue = append(queue, q)
			}
		}
	}

	return flashed
}

// reset zeroes the given cells. Applying it twice leaves the same cells.
func (f *Field) reset(flashed []position.Position) {
	for _, p := range flashed {
		*f.grid.Ptr(p) = Cell{}
	}
}

// CountFlashes runs steps steps on a copy of levels and returns the total
// number of flashes.
func CountFlashes(levels [][]uint8, steps int) (uint64, error) {
	f, err := NewField(levels)
	if err != nil {
		return 0, err
	}
	var total uint64
	for i := 0; i < steps; i++ {
		total += uint64(len(f.Step()))
	}

	return total, nil
}

// FirstSynchronousStep returns the 1-based index of the first step in which
// every cell flashed. It gives up with ErrNoConvergence after SyncLimit steps.
func FirstSynchronousStep(levels [][]uint8) (uint64, error) {
	f, err := NewField(levels)
	if err != nil {
		return 0, err
	}
	for i := 1; i <= SyncLimit; i++ {
		if len(f.Step()) == f.Size() {
			return uint64(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %d steps", ErrNoConvergence, SyncLimit)
}
