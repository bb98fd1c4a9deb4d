// SPDX-License-Identifier: MIT
// Package: gravix/paths
//
// bellman_ford.go — single-source shortest distances with negative
// weights, via |V|−1 rounds of edge relaxation and one extra round for
// negative-cycle detection.
//
// Complexity: O(V·E) time, O(V) space.

package paths

import (
	"fmt"

	"github.com/katalvlaran/gravix/core"
)

// BellmanFord returns the minimum path cost from source to every
// reachable node, tolerating negative edge weights. A negative cycle
// reachable from source yields ErrNegativeCycle and no distances.
func BellmanFord[A comparable](g *core.Graph[A], source core.NodeID) (map[core.NodeID]float64, error) {
	if !g.HasNode(source) {
		return nil, fmt.Errorf("bellman-ford source %d: %w", source, core.ErrNodeNotFound)
	}

	dist := map[core.NodeID]float64{source: 0}
	edges := g.Edges()
	undirected := !g.IsDirected()

	relax := func(from, to core.NodeID, w float64) bool {
		df, ok := dist[from]
		if !ok {
			return false
		}
		candidate := df + w
		if dt, seen := dist[to]; !seen || candidate < dt {
			dist[to] = candidate
			return true
		}
		return false
	}

	for round := 1; round < g.NodeCount(); round++ {
		changed := false
		for _, e := range edges {
			if relax(e.Src, e.Dst, e.Weight) {
				changed = true
			}
			if undirected && e.Src != e.Dst && relax(e.Dst, e.Src, e.Weight) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// A relaxation that still succeeds exposes a negative cycle.
	improvable := func(from, to core.NodeID, w float64) bool {
		df, ok := dist[from]
		if !ok {
			return false
		}
		dt, seen := dist[to]
		return !seen || df+w < dt
	}
	for _, e := range edges {
		if improvable(e.Src, e.Dst, e.Weight) ||
			(undirected && e.Src != e.Dst && improvable(e.Dst, e.Src, e.Weight)) {
			return nil, fmt.Errorf("bellman-ford from %d: %w", source, ErrNegativeCycle)
		}
	}
	return dist, nil
}
