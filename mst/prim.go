// SPDX-License-Identifier: MIT
// Package: gravix/mst
//
// prim.go — Prim's forest: grow a tree from every not-yet-spanned root
// by repeatedly attaching the cheapest edge that crosses the frontier.
// Restarting from each unvisited node in ascending id order covers all
// components.
//
// Complexity: O(E·log E) time with the lazy edge heap, O(E) space.

package mst

import (
	"container/heap"

	"github.com/katalvlaran/gravix/core"
)

// Prim returns the total weight and the edges of a minimum spanning
// forest of g.
func Prim[A comparable](g *core.Graph[A]) (float64, []TreeEdge, error) {
	if g.IsDirected() {
		return 0, nil, ErrDirectedGraph
	}

	visited := make(map[core.NodeID]struct{}, g.NodeCount())
	total := 0.0
	var picked []TreeEdge

	attach := func(h *edgeHeap, id core.NodeID) error {
		visited[id] = struct{}{}
		edges, err := g.OutEdges(id)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if e.Src != e.Dst {
				heap.Push(h, e)
			}
		}
		return nil
	}

	for _, root := range g.NodeIDs() {
		if _, seen := visited[root]; seen {
			continue
		}
		h := &edgeHeap{}
		if err := attach(h, root); err != nil {
			return 0, nil, err
		}
		for h.Len() > 0 {
			e := heap.Pop(h).(core.Edge)

			// Pick whichever endpoint is still outside the tree.
			next := e.Src
			if _, in := visited[next]; in {
				next = e.Dst
			}
			if _, in := visited[next]; in {
				continue // both endpoints settled, stale frontier edge
			}

			picked = append(picked, toTreeEdge(e))
			total += e.Weight
			if err := attach(h, next); err != nil {
				return 0, nil, err
			}
		}
	}
	return total, picked, nil
}

// edgeHeap is a min-heap over the package edge order.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int           { return len(h) }
func (h edgeHeap) Less(i, j int) bool { return edgeLess(h[i], h[j]) }
func (h edgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x any) { *h = append(*h, x.(core.Edge)) }

func (h *edgeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
