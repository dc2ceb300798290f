package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/spencewenski/advent-of-code-2021/gridgraph"
	"github.com/spencewenski/advent-of-code-2021/position"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.grid, gridgraph.Conn4)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.New(grid, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(position.New(xy[0], xy[1])) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(position.New(xy[0], xy[1])) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestNew_DeepCopy ensures the grid does not alias the caller's rows.
func TestNew_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.New(grid, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	grid[0][0] = 99
	if got := gg.At(position.New(0, 0)); got != 1 {
		t.Errorf("At(0,0) = %d after caller mutation; want 1", got)
	}

	clone := gg.Clone()
	clone.Set(position.New(1, 1), 42)
	if got := gg.At(position.New(1, 1)); got != 4 {
		t.Errorf("At(1,1) = %d after clone mutation; want 4", got)
	}
}

// TestNeighbors_Connectivity counts neighbours of the centre and a corner
// under both connectivities.
func TestNeighbors_Connectivity(t *testing.T) {
	grid := [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	cases := []struct {
		conn           gridgraph.Connectivity
		centre, corner int
	}{
		{gridgraph.Conn4, 4, 2},
		{gridgraph.Conn8, 8, 3},
	}
	for _, tc := range cases {
		gg, _ := gridgraph.New(grid, tc.conn)
		if n := len(gg.Neighbors(position.New(1, 1))); n != tc.centre {
			t.Errorf("conn=%d centre neighbours = %d; want %d", tc.conn, n, tc.centre)
		}
		if n := len(gg.Neighbors(position.New(2, 2))); n != tc.corner {
			t.Errorf("conn=%d corner neighbours = %d; want %d", tc.conn, n, tc.corner)
		}
	}
}

// TestIndexCoordinate_RoundTrip checks Index and Coordinate are inverses.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	gg, _ := gridgraph.New([][]int{{1, 2, 3}, {4, 5, 6}}, gridgraph.Conn4)
	for i, p := range gg.Positions() {
		if gg.Index(p) != i {
			t.Errorf("Index(%v) = %d; want %d", p, gg.Index(p), i)
		}
		if gg.Coordinate(i) != p {
			t.Errorf("Coordinate(%d) = %v; want %v", i, gg.Coordinate(i), p)
		}
	}
	if gg.Len() != 6 {
		t.Errorf("Len = %d; want 6", gg.Len())
	}
}
