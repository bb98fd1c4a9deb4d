// SPDX-License-Identifier: MIT
// Package: gravix/mst
//
// boruvka.go — Borůvka's forest: every round, each current component
// nominates its cheapest outgoing edge and all nominations are merged.
// The component count at least halves per round, so O(log V) rounds
// suffice. The total edge order (edgeLess) makes nominations unique,
// which keeps equal-weight graphs cycle-free without perturbation.
//
// Complexity: O(E·log V) time, O(V) space.

package mst

import (
	"sort"

	"github.com/katalvlaran/gravix/core"
)

// Boruvka returns the total weight and the edges of a minimum spanning
// forest of g.
func Boruvka[A comparable](g *core.Graph[A]) (float64, []TreeEdge, error) {
	if g.IsDirected() {
		return 0, nil, ErrDirectedGraph
	}

	uf := NewUnionFind()
	for _, id := range g.NodeIDs() {
		uf.Add(id)
	}
	edges := sortedForestEdges(g)

	total := 0.0
	var picked []TreeEdge
	for {
		// Component root → cheapest edge leaving that component.
		cheapest := make(map[core.NodeID]core.Edge)
		for _, e := range edges {
			ra, rb := uf.Find(e.Src), uf.Find(e.Dst)
			if ra == rb {
				continue
			}
			for _, root := range [2]core.NodeID{ra, rb} {
				if best, ok := cheapest[root]; !ok || edgeLess(e, best) {
					cheapest[root] = e
				}
			}
		}
		if len(cheapest) == 0 {
			break
		}

		roots := make([]core.NodeID, 0, len(cheapest))
		for root := range cheapest {
			roots = append(roots, root)
		}
		sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

		merged := false
		for _, root := range roots {
			e := cheapest[root]
			if uf.Union(e.Src, e.Dst) {
				picked = append(picked, toTreeEdge(e))
				total += e.Weight
				merged = true
			}
		}
		if !merged {
			break
		}
	}
	return total, picked, nil
}
