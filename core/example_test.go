package core_test

import (
	"fmt"

	"github.com/spencewenski/advent-of-code-2021/core"
)

// ExampleGraph builds a small undirected graph and lists neighbours.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("start", "A")
	_, _ = g.AddEdge("start", "b")
	_, _ = g.AddEdge("A", "b")

	nbrs, _ := g.NeighborIDs("b")
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("neighbours of b:", nbrs)
	// Output:
	// vertices: [A b start]
	// neighbours of b: [A start]
}
