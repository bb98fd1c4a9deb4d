// SPDX-License-Identifier: MIT
// Package: gravix/mst
//
// mst.go — shared types, edge ordering and input validation for the
// spanning-forest builders.

package mst

import (
	"errors"
	"sort"

	"github.com/katalvlaran/gravix/core"
)

// ErrDirectedGraph is returned when a spanning forest is requested on a
// directed store.
var ErrDirectedGraph = errors.New("gravix: spanning forests require an undirected graph")

// TreeEdge is one edge chosen into the spanning forest.
type TreeEdge struct {
	ID     core.EdgeID
	Src    core.NodeID
	Dst    core.NodeID
	Weight float64
}

// edgeLess is the package-wide total order on edges: weight first, then
// src, dst and id. A total order keeps every builder deterministic and
// lets them agree on tie-broken forests.
func edgeLess(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.Src != b.Src {
		return a.Src < b.Src
	}
	if a.Dst != b.Dst {
		return a.Dst < b.Dst
	}
	return a.ID < b.ID
}

// sortedForestEdges returns the candidate edges (self-loops dropped) in
// edgeLess order.
func sortedForestEdges[A comparable](g *core.Graph[A]) []core.Edge {
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.Src != e.Dst {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edgeLess(edges[i], edges[j]) })
	return edges
}

// toTreeEdge converts a picked store edge.
func toTreeEdge(e core.Edge) TreeEdge {
	return TreeEdge{ID: e.ID, Src: e.Src, Dst: e.Dst, Weight: e.Weight}
}
