// SPDX-License-Identifier: MIT
// Package: gravix/extract
//
// extract_test.go — extraction semantics and independence guarantees.

package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravix/core"
	"github.com/katalvlaran/gravix/extract"
)

// buildTwoComponents returns a store with a weighted triangle (a,b,c)
// and a separate 2-path (x,y).
func buildTwoComponents(t *testing.T) (*core.Graph[string], map[string]core.NodeID) {
	t.Helper()
	g := core.NewGraph[string]()
	ids := map[string]core.NodeID{}
	for _, name := range []string{"a", "b", "c", "x", "y"} {
		ids[name] = g.AddNode(name)
	}
	for _, spec := range []struct {
		u, v string
		w    float64
	}{
		{"a", "b", 1},
		{"b", "c", 2},
		{"a", "c", 3},
		{"x", "y", 9},
	} {
		_, err := g.AddEdge(ids[spec.u], ids[spec.v], spec.w)
		require.NoError(t, err)
	}
	return g, ids
}

func TestSubgraph_KeepsOnlyCoveredEdges(t *testing.T) {
	g, ids := buildTwoComponents(t)

	sub, err := extract.Subgraph(g, []core.NodeID{ids["a"], ids["b"], ids["x"]})
	require.NoError(t, err)

	assert.Equal(t, 3, sub.NodeCount())
	assert.Equal(t, 1, sub.EdgeCount(), "only a-b has both endpoints covered")

	// Attributes survive; identifiers are reassigned from zero.
	attrs := map[string]bool{}
	for _, n := range sub.Nodes() {
		attrs[n.Attr] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true, "x": true}, attrs)
}

func TestSubgraph_ValidationAndEdgeCases(t *testing.T) {
	g, ids := buildTwoComponents(t)

	_, err := extract.Subgraph(g, []core.NodeID{ids["a"], core.NodeID(99)})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	empty, err := extract.Subgraph(g, nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	// Duplicate ids collapse to one node.
	dup, err := extract.Subgraph(g, []core.NodeID{ids["a"], ids["a"]})
	require.NoError(t, err)
	assert.Equal(t, 1, dup.NodeCount())
}

func TestSubgraph_ResultIsIndependent(t *testing.T) {
	g, ids := buildTwoComponents(t)

	sub, err := extract.Subgraph(g, []core.NodeID{ids["a"], ids["b"]})
	require.NoError(t, err)

	sub.Clear()
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	_, err = g.RemoveNode(ids["a"])
	require.NoError(t, err)
	sub2, err := extract.Subgraph(g, []core.NodeID{ids["b"], ids["c"]})
	require.NoError(t, err)
	assert.Equal(t, 2, sub2.NodeCount())
}

func TestInducedSubgraph_MatchesSubgraph(t *testing.T) {
	g, ids := buildTwoComponents(t)
	pick := []core.NodeID{ids["a"], ids["b"], ids["c"]}

	induced, err := extract.InducedSubgraph(g, pick)
	require.NoError(t, err)
	plain, err := extract.Subgraph(g, pick)
	require.NoError(t, err)

	assert.Equal(t, plain.NodeCount(), induced.NodeCount())
	assert.Equal(t, plain.EdgeCount(), induced.EdgeCount())
	assert.Equal(t, 3, induced.EdgeCount())
}

func TestEgoGraph_IncludesCenterAndHonorsRadius(t *testing.T) {
	// Path a-b-c-d; ego of b with radius 1 is {a,b,c}.
	g := core.NewGraph[string]()
	var ids []core.NodeID
	for _, name := range []string{"a", "b", "c", "d"} {
		ids = append(ids, g.AddNode(name))
	}
	for i := 0; i+1 < len(ids); i++ {
		_, err := g.AddEdge(ids[i], ids[i+1], 1)
		require.NoError(t, err)
	}

	ego, err := extract.EgoGraph(g, ids[1], 1)
	require.NoError(t, err)
	assert.Equal(t, 3, ego.NodeCount())
	assert.Equal(t, 2, ego.EdgeCount())

	zero, err := extract.EgoGraph(g, ids[1], 0)
	require.NoError(t, err)
	assert.Equal(t, 1, zero.NodeCount(), "radius 0 keeps just the center")

	_, err = extract.EgoGraph(g, core.NodeID(99), 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestConnectedComponent_WeakOnDirected(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	_, err := g.AddEdge(b, a, 1) // arc points away from a's reach
	require.NoError(t, err)

	member, err := extract.ConnectedComponent(g, a)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{a, b}, member, "weak connectivity ignores arc direction")
	assert.NotContains(t, member, c)
}

func TestComponentSubgraph_MaterializesOneComponent(t *testing.T) {
	g, ids := buildTwoComponents(t)

	comp, err := extract.ComponentSubgraph(g, ids["x"])
	require.NoError(t, err)
	assert.Equal(t, 2, comp.NodeCount())
	assert.Equal(t, 1, comp.EdgeCount())

	weights := comp.Edges()
	require.Len(t, weights, 1)
	assert.InDelta(t, 9.0, weights[0].Weight, 1e-12)

	_, err = extract.ComponentSubgraph(g, core.NodeID(99))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
