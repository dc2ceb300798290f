package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spencewenski/advent-of-code-2021/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())

	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.NotNil(t, v.Metadata)

	_, err = g.Vertex("B")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdge_RejectedEdgesLeaveGraphUnchanged(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	_, err = g.AddEdge("C", "C")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("A", "B")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.False(t, g.HasVertex("C"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestNeighborIDs_SortedAndUnknown(t *testing.T) {
	g := core.NewGraph()
	for _, to := range []string{"d", "b", "c", "a"} {
		_, err := g.AddEdge("x", to)
		require.NoError(t, err)
	}
	nbrs, err := g.NeighborIDs("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, nbrs)

	_, err = g.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_CreationOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "e11", edges[10].ID)
}
