// Package dijkstra_test provides runnable examples for the grid shortest-path engine.
package dijkstra_test

import (
	"fmt"

	"github.com/spencewenski/advent-of-code-2021/dijkstra"
)

// ExampleShortestPath demonstrates a route across a 3×3 cost grid.
// The cheapest route skirts the 9s along the left column and bottom row.
func ExampleShortestPath() {
	// 1) Build the cost grid; each value is the price of entering that cell.
	g, err := dijkstra.NewGrid([][]uint8{
		{1, 9, 9},
		{1, 9, 9},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Search from the top-left to the bottom-right and keep the route.
	res, err := dijkstra.ShortestPath(g, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("distance:", res.Distance)
	fmt.Println("path:", res.Path)
	// Output:
	// distance: 4
	// path: [0,0 0,1 0,2 1,2 2,2]
}

// ExampleTile shows the lazily evaluated 5×5 tiling of a single cell.
func ExampleTile() {
	base, _ := dijkstra.NewGrid([][]uint8{{8}})
	tiled, _ := dijkstra.Tile(base, 5)

	res, _ := dijkstra.ShortestPath(tiled)
	fmt.Printf("%dx%d distance=%d\n", tiled.Width(), tiled.Height(), res.Distance)
	// Output: 5x5 distance=37
}
