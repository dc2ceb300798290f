package dfs_test

import (
	"fmt"
	"strings"

	"github.com/spencewenski/advent-of-code-2021/core"
	"github.com/spencewenski/advent-of-code-2021/dfs"
)

// ExampleAllPaths lists every simple path through a small directed graph.
func ExampleAllPaths() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("in", "x")
	_, _ = g.AddEdge("in", "y")
	_, _ = g.AddEdge("x", "y")
	_, _ = g.AddEdge("x", "out")
	_, _ = g.AddEdge("y", "out")

	res, _ := dfs.AllPaths(g, "in", "out", dfs.WithOnPath(func(p []string) error {
		fmt.Println(strings.Join(p, ","))

		return nil
	}))
	fmt.Println("count:", res.Count)
	// Output:
	// in,x,out
	// in,x,y,out
	// in,y,out
	// count: 3
}
