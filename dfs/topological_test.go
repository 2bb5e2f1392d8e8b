package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []core.NodeID, v core.NodeID) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// build creates a graph of n nodes with the given edges.
func build(t *testing.T, n int, edges ...[2]core.NodeID) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithNodes(n), core.WithLoops())
	for _, e := range edges {
		_, err := g.SetConnection(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_EmptyGraph covers a graph with no nodes.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_NoEdges checks that isolated nodes are all returned.
func TestTopo_NoEdges(t *testing.T) {
	order, err := dfs.TopologicalSort(build(t, 3))
	assert.NoError(t, err)
	assert.ElementsMatch(t, []core.NodeID{0, 1, 2}, order)
}

// TestTopo_SkipConnection verifies every edge goes forward in the order,
// including the shortcut that breaks layer-by-layer frontier order.
func TestTopo_SkipConnection(t *testing.T) {
	edges := [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {4, 2}}
	g := build(t, 5, edges...)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 5)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]), "edge %d→%d", e[0], e[1])
	}
}

// TestTopo_Deterministic ensures repeated sorts agree.
func TestTopo_Deterministic(t *testing.T) {
	g := build(t, 6, [2]core.NodeID{0, 3}, [2]core.NodeID{1, 3}, [2]core.NodeID{2, 4}, [2]core.NodeID{3, 5}, [2]core.NodeID{4, 5})
	first, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dfs.TopologicalSort(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestTopo_Cycle rejects cyclic graphs, including self-loops.
func TestTopo_Cycle(t *testing.T) {
	_, err := dfs.TopologicalSort(build(t, 3, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2}, [2]core.NodeID{2, 0}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort(build(t, 1, [2]core.NodeID{0, 0}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestFindCycle covers acyclic, cyclic and self-loop graphs.
func TestFindCycle(t *testing.T) {
	c, err := dfs.FindCycle(build(t, 3, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2}))
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = dfs.FindCycle(build(t, 4, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 3}, [2]core.NodeID{3, 2}, [2]core.NodeID{2, 1}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 3, 2}, c)

	c, err = dfs.FindCycle(build(t, 2, [2]core.NodeID{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1}, c)

	_, err = dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
