// SPDX-License-Identifier: MIT
// Package: gravix/mst
//
// kruskal.go — Kruskal's forest: scan edges cheapest-first, keep every
// edge that joins two distinct components. Skipping (rather than
// failing on) cross-component gaps is what turns the classic tree
// algorithm into a forest builder.
//
// Complexity: O(E·log E) time for the sort, near-O(E) for the
// union–find scan.

package mst

import "github.com/katalvlaran/gravix/core"

// Kruskal returns the total weight and the edges of a minimum spanning
// forest of g.
func Kruskal[A comparable](g *core.Graph[A]) (float64, []TreeEdge, error) {
	if g.IsDirected() {
		return 0, nil, ErrDirectedGraph
	}

	uf := NewUnionFind()
	for _, id := range g.NodeIDs() {
		uf.Add(id)
	}

	total := 0.0
	var picked []TreeEdge
	for _, e := range sortedForestEdges(g) {
		if uf.Union(e.Src, e.Dst) {
			picked = append(picked, toTreeEdge(e))
			total += e.Weight
		}
	}
	return total, picked, nil
}
