package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/graph"
)

func identity(id int) int { return id }

func newComplete(t *testing.T, n int) *graph.Graph[int, *graph.PlainAdjContainer[int]] {
	t.Helper()
	g := graph.NewPlain(n, identity)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}
	return g
}

func TestAddRemoveEdge(t *testing.T) {
	g := graph.NewPlain(3, identity)
	require.Equal(t, 0, g.EdgeCount())

	require.NoError(t, g.AddEdge(0, 1))
	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.Container(0).IsAdjacent(1))
	require.True(t, g.Container(1).IsAdjacent(0))

	require.ErrorIs(t, g.AddEdge(0, 1), graph.ErrEdgeExists)
	require.ErrorIs(t, g.AddEdge(0, 0), graph.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(0, 99), graph.ErrIndexOutOfRange)

	require.NoError(t, g.RemoveEdge(0, 1))
	require.Equal(t, 0, g.EdgeCount())
	require.ErrorIs(t, g.RemoveEdge(0, 1), graph.ErrEdgeDoesNotExist)
}

func TestInitRingClearsExistingEdges(t *testing.T) {
	g := graph.NewPlain(6, identity)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.InitRing(1))

	require.Equal(t, 6, g.EdgeCount())
	for i := 0; i < 6; i++ {
		require.Equal(t, 2, g.Container(i).Degree())
	}
}

func TestIsConnectedAndComponents(t *testing.T) {
	g := graph.NewPlain(5, identity)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	connected, ok := g.IsConnected()
	require.True(t, ok)
	require.False(t, connected)

	require.Equal(t, []int{3, 1, 1}, g.ConnectedComponents())

	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))
	connected, ok = g.IsConnected()
	require.True(t, ok)
	require.True(t, connected)
}

func TestQCoreCompleteGraph(t *testing.T) {
	g := newComplete(t, 20)
	for q := 2; q < 20; q++ {
		size, ok := g.QCore(q)
		require.True(t, ok)
		require.Equal(t, 20, size)
	}
	size, ok := g.QCore(20)
	require.True(t, ok)
	require.Equal(t, 0, size)

	empty := graph.NewPlain[int](0, identity)
	_, ok = empty.QCore(2)
	require.False(t, ok)
}

func TestDiameterOfRing(t *testing.T) {
	g := graph.NewPlain(6, identity)
	require.NoError(t, g.InitRing(1))
	d, ok := g.Diameter()
	require.True(t, ok)
	require.Equal(t, 3, d)
}

func TestTransitivityOfCompleteGraph(t *testing.T) {
	g := newComplete(t, 5)
	require.InDelta(t, 1.0, g.Transitivity(), 1e-9)
}

func TestClonedSubgraphDropsOutsideEdges(t *testing.T) {
	g := graph.NewPlain(5, identity)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	sub, err := g.ClonedSubgraph([]int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 3, sub.VertexCount())
	require.Equal(t, 2, sub.EdgeCount())

	_, err = g.ClonedSubgraph(nil)
	require.ErrorIs(t, err, graph.ErrEmptyNodeList)

	_, err = g.ClonedSubgraph([]int{0, 99})
	require.ErrorIs(t, err, graph.ErrEmptyNodeList)
}

func TestVertexBiconnectedComponentsOfPath(t *testing.T) {
	g := graph.NewPlain(4, identity)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	sizes := g.VertexBiconnectedComponents(false)
	require.Equal(t, []int{2, 2, 2}, sizes)

	strict := g.VertexBiconnectedComponents(true)
	require.Empty(t, strict)
}

func TestVertexLoadCompleteGraphIsUniform(t *testing.T) {
	g := newComplete(t, 6)
	load := g.VertexLoad(true)
	for _, l := range load {
		require.InDelta(t, 5.0, l, 1e-9)
	}
	load0 := g.VertexLoad(false)
	for _, l := range load0 {
		require.InDelta(t, 0.0, l, 1e-9)
	}
}

func TestSmallWorldContainerTracksOrigin(t *testing.T) {
	g := graph.NewSmallWorld(4, identity)
	require.NoError(t, g.InitRing(1))

	c := g.Container(0)
	require.Len(t, c.OriginalEdges(), 2)
	for _, e := range c.OriginalEdges() {
		require.True(t, e.IsAtOrigin)
	}
}
