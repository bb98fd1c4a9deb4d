// SPDX-License-Identifier: MIT
// Package: gravix/traverse
//
// traverse_test.go — walks, searches and neighborhoods on hand-checked
// topologies.

package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravix/core"
	"github.com/katalvlaran/gravix/traverse"
)

// buildDiamond returns the undirected diamond
//
//	  a
//	 / \
//	b   c
//	 \ /
//	  d
func buildDiamond(t *testing.T) (*core.Graph[string], map[string]core.NodeID) {
	t.Helper()
	g := core.NewGraph[string]()
	ids := map[string]core.NodeID{}
	for _, name := range []string{"a", "b", "c", "d"} {
		ids[name] = g.AddNode(name)
	}
	for _, pair := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		_, err := g.AddEdge(ids[pair[0]], ids[pair[1]], 1)
		require.NoError(t, err)
	}
	return g, ids
}

// buildLine returns a directed line n0→n1→…→n(k-1).
func buildLine(t *testing.T, k int) (*core.Graph[int], []core.NodeID) {
	t.Helper()
	g := core.NewGraph[int](core.WithDirected(true))
	ids := make([]core.NodeID, k)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for i := 0; i+1 < k; i++ {
		_, err := g.AddEdge(ids[i], ids[i+1], 1)
		require.NoError(t, err)
	}
	return g, ids
}

func TestBFS_VisitOrderIsDeterministic(t *testing.T) {
	g, ids := buildDiamond(t)

	order, err := traverse.BFS(g, ids["a"])
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids["a"], ids["b"], ids["c"], ids["d"]}, order)
}

func TestBFS_UnknownStart(t *testing.T) {
	g, _ := buildDiamond(t)

	_, err := traverse.BFS(g, core.NodeID(99))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestBFS_StopsAtComponentBoundary(t *testing.T) {
	g, ids := buildDiamond(t)
	g.AddNode("island")

	order, err := traverse.BFS(g, ids["a"])
	require.NoError(t, err)
	assert.Len(t, order, 4)
}

func TestDFS_GoesDeepBeforeWide(t *testing.T) {
	g, ids := buildDiamond(t)

	order, err := traverse.DFS(g, ids["a"])
	require.NoError(t, err)
	// Smallest neighbor first: a, then b, then b's neighbor d, then c.
	assert.Equal(t, []core.NodeID{ids["a"], ids["b"], ids["d"], ids["c"]}, order)
}

func TestDFS_UnknownStart(t *testing.T) {
	g, _ := buildDiamond(t)

	_, err := traverse.DFS(g, core.NodeID(99))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestIDDFS_FindsShallowestPath(t *testing.T) {
	g, ids := buildLine(t, 4)

	path, err := traverse.IDDFS(g, ids[0], ids[3], 5)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids[0], ids[1], ids[2], ids[3]}, path)
}

func TestIDDFS_RespectsDepthBound(t *testing.T) {
	g, ids := buildLine(t, 4)

	_, err := traverse.IDDFS(g, ids[0], ids[3], 2)
	assert.ErrorIs(t, err, traverse.ErrNoPath)
}

func TestIDDFS_TrivialAndInvalidCases(t *testing.T) {
	g, ids := buildLine(t, 2)

	path, err := traverse.IDDFS(g, ids[0], ids[0], 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids[0]}, path)

	_, err = traverse.IDDFS(g, ids[0], core.NodeID(99), 3)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestBidirectional_FindsMinimumHopPath(t *testing.T) {
	g, ids := buildDiamond(t)

	path, err := traverse.Bidirectional(g, ids["a"], ids["d"])
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, ids["a"], path[0])
	assert.Equal(t, ids["d"], path[2])
	assert.True(t, g.HasEdgeBetween(path[0], path[1]))
	assert.True(t, g.HasEdgeBetween(path[1], path[2]))
}

func TestBidirectional_PrefersShortBranchOverDeepOne(t *testing.T) {
	// Two routes from s to g: a 5-hop chain through a wide backward
	// fan (s−2−7−6−5−g) and a 3-hop branch (s−4−5−g). The fan keeps
	// the backward side expanding deep before the branch is touched.
	g := core.NewGraph[int]()
	ids := make([]core.NodeID, 10)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for _, pair := range [][2]int{
		{0, 2}, {0, 3}, {0, 4},
		{1, 5}, {5, 6}, {6, 7}, {6, 8}, {6, 9},
		{2, 7}, {4, 5},
	} {
		_, err := g.AddEdge(ids[pair[0]], ids[pair[1]], 1)
		require.NoError(t, err)
	}

	path, err := traverse.Bidirectional(g, ids[0], ids[1])
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids[0], ids[4], ids[5], ids[1]}, path)
}

func TestBidirectional_DirectedFollowsArcs(t *testing.T) {
	g, ids := buildLine(t, 5)

	path, err := traverse.Bidirectional(g, ids[0], ids[4])
	require.NoError(t, err)
	assert.Equal(t, ids, path)

	// Arcs only run forward, so the reverse search must fail.
	_, err = traverse.Bidirectional(g, ids[4], ids[0])
	assert.ErrorIs(t, err, traverse.ErrNoPath)
}

func TestBidirectional_DisconnectedAndTrivial(t *testing.T) {
	g, ids := buildDiamond(t)
	island := g.AddNode("island")

	_, err := traverse.Bidirectional(g, ids["a"], island)
	assert.ErrorIs(t, err, traverse.ErrNoPath)

	path, err := traverse.Bidirectional(g, ids["a"], ids["a"])
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids["a"]}, path)
}

func TestKHopNeighbors_ExcludesStart(t *testing.T) {
	g, ids := buildDiamond(t)

	one, err := traverse.KHopNeighbors(g, ids["a"], 1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids["b"], ids["c"]}, one)

	two, err := traverse.KHopNeighbors(g, ids["a"], 2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids["b"], ids["c"], ids["d"]}, two)
	assert.NotContains(t, two, ids["a"])
}

func TestKHopNeighbors_ZeroHopsAndErrors(t *testing.T) {
	g, ids := buildDiamond(t)

	none, err := traverse.KHopNeighbors(g, ids["a"], 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = traverse.KHopNeighbors(g, core.NodeID(99), 2)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestKHopNeighbors_DirectedRespectsOrientation(t *testing.T) {
	g, ids := buildLine(t, 4)

	hops, err := traverse.KHopNeighbors(g, ids[1], 2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids[2], ids[3]}, hops)
}
