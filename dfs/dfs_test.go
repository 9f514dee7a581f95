package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/core"
	"github.com/katalvlaran/costar/dfs"
)

// graphOf builds a graph from edge pairs.
func graphOf(t testing.TB, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// buildChain returns the frozen chain A–B–…, n actors long.
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	res, err := builder.Build(builder.ChainCasts(n))
	require.NoError(t, err)

	return res.Graph
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddActor("X"))

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.Equal(t, []string{"X"}, res.PostOrder)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, []string{"C", "B", "A"}, res.PostOrder)
	assert.Equal(t, "B", res.Parent["C"])
	assert.Equal(t, 2, res.Depth["C"])
}

// TestDFS_LexicalOrder checks that the smallest neighbor is explored first
// and that branches are exhausted before siblings.
func TestDFS_LexicalOrder(t *testing.T) {
	//   A
	//  / \
	// C   B – D
	g := graphOf(t, [2]string{"A", "C"}, [2]string{"A", "B"}, [2]string{"B", "D"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.PostOrder)
}

func TestDFS_Disconnected(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"})
	require.NoError(t, g.AddActor("C"))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.False(t, res.Visited["C"], "disconnected vertex should not be visited")
}

func TestDFS_MaxDepth(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.False(t, res.Visited["B"])

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"A", "C"})

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnVisitError(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	halt := errors.New("halt")

	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		if id == "B" {
			return halt
		}
		return nil
	}))
	require.ErrorIs(t, err, halt)
	assert.ErrorContains(t, err, `OnVisit hook for "B"`)
	assert.False(t, res.Visited["C"])
}

func TestDFS_OnExitError(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"})

	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(id string) error {
		if id == "B" {
			return errors.New("halt at B on exit")
		}
		return nil
	}))
	require.Error(t, err)
	assert.ErrorContains(t, err, `OnExit hook for "B"`)
	assert.Empty(t, res.PostOrder)
}

func TestDFS_Cancellation(t *testing.T) {
	g := buildChain(t, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "nothing discovered when canceled immediately")
}

// TestDFS_DeepChain walks a chain far longer than any sane recursion depth.
func TestDFS_DeepChain(t *testing.T) {
	const n = 200000
	g := buildChain(t, n)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	last := builder.ActorName(n - 1)
	assert.Equal(t, n-1, res.Depth[last])
	assert.Equal(t, last, res.PostOrder[0])
	assert.Equal(t, "A", res.PostOrder[n-1])
}
