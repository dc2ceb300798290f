package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spencewenski/advent-of-code-2021/core"
	"github.com/spencewenski/advent-of-code-2021/dfs"
)

// buildGraph creates a graph from "from-to" pairs.
func buildGraph(t *testing.T, directed bool, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// kite is s-a, a-b, b-e, a-e (undirected).
func kite(t *testing.T) *core.Graph {
	return buildGraph(t, false,
		[2]string{"s", "a"},
		[2]string{"a", "b"},
		[2]string{"b", "e"},
		[2]string{"a", "e"},
	)
}

func TestAllPaths_Errors(t *testing.T) {
	_, err := dfs.AllPaths(nil, "s", "e")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := kite(t)
	_, err = dfs.AllPaths(g, "x", "e")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.AllPaths(g, "s", "x")
	assert.ErrorIs(t, err, dfs.ErrTargetNotFound)
}

func TestAllPaths_DirectedDiamond(t *testing.T) {
	g := buildGraph(t, true,
		[2]string{"A", "B"},
		[2]string{"A", "C"},
		[2]string{"B", "D"},
		[2]string{"C", "D"},
	)
	res, err := dfs.AllPaths(g, "A", "D", dfs.WithCollectPaths())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Count)
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, res.Paths)

	// Nothing leads back to A.
	res, err = dfs.AllPaths(g, "D", "A")
	require.NoError(t, err)
	assert.Zero(t, res.Count)
}

func TestAllPaths_SimplePathsByDefault(t *testing.T) {
	res, err := dfs.AllPaths(kite(t), "s", "e", dfs.WithCollectPaths())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Count)
	assert.Equal(t, [][]string{{"s", "a", "b", "e"}, {"s", "a", "e"}}, res.Paths)
}

func TestAllPaths_OneTrackedRepeat(t *testing.T) {
	tracked := func(id string) bool { return id != "s" && id != "e" }
	admit := func(id string, w *dfs.Walk) bool {
		if id == "s" {
			return false
		}

		return w.Visits(id) == 0 || w.Repeats() == 0
	}
	res, err := dfs.AllPaths(kite(t), "s", "e",
		dfs.WithTracked(tracked),
		dfs.WithAdmit(admit),
		dfs.WithCollectPaths(),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res.Count)
	assert.Equal(t, [][]string{
		{"s", "a", "b", "a", "e"},
		{"s", "a", "b", "e"},
		{"s", "a", "e"},
	}, res.Paths)
}

func TestAllPaths_WalkStateRestored(t *testing.T) {
	// After enumeration every visit count must be back to zero; the admit
	// hook observes the shared Walk, so check the length it sees at the root.
	var rootLens []int
	admit := func(id string, w *dfs.Walk) bool {
		if p := w.Path(); p[len(p)-1] == "s" {
			rootLens = append(rootLens, len(p))
		}

		return w.Visits(id) == 0
	}
	_, err := dfs.AllPaths(kite(t), "s", "e", dfs.WithAdmit(admit))
	require.NoError(t, err)
	for _, l := range rootLens {
		assert.Equal(t, 1, l)
	}
}

func TestAllPaths_MaxDepth(t *testing.T) {
	res, err := dfs.AllPaths(kite(t), "s", "e", dfs.WithMaxDepth(2), dfs.WithCollectPaths())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"s", "a", "e"}}, res.Paths)

	res, err = dfs.AllPaths(kite(t), "s", "s", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Count)
}

func TestAllPaths_OnPathAbort(t *testing.T) {
	stop := errors.New("stop")
	seen := 0
	res, err := dfs.AllPaths(kite(t), "s", "e", dfs.WithOnPath(func(path []string) error {
		seen++

		return stop
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, seen)
	assert.Equal(t, uint64(1), res.Count)
}

func TestAllPaths_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.AllPaths(kite(t), "s", "e", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
