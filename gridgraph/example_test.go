package gridgraph_test

import (
	"fmt"

	"github.com/spencewenski/advent-of-code-2021/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents demonstrates how to identify contiguous
// regions of non-zero cells in a 2D grid.
//
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three regions, listed in BFS order from their first cell.
func ExampleGrid_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{0, 0, 2, 2, 0},
		{3, 0, 0, 0, 0},
	}
	gg, _ := gridgraph.New(grid, gridgraph.Conn4)

	comps := gg.ConnectedComponents(func(v int) bool { return v > 0 })
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, p := range comp {
			fmt.Printf(" (%s)", p)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (1,0) (2,0) (1,1) (0,1)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
	// component 2: (0,3)
}
