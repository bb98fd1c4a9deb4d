// SPDX-License-Identifier: MIT
// Package: gravix/paths
//
// floyd_warshall.go — all-pairs shortest distances by dynamic
// programming over intermediate nodes.
//
// Complexity: O(V³) time, O(V²) space.

package paths

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gravix/core"
)

// FloydWarshall returns the minimum path cost between every ordered
// pair of nodes. The outer map has an entry for every node; the inner
// map holds only reachable targets, so an absent inner key means no
// path. A negative cycle anywhere yields ErrNegativeCycle.
func FloydWarshall[A comparable](g *core.Graph[A]) (map[core.NodeID]map[core.NodeID]float64, error) {
	ids := g.NodeIDs()
	n := len(ids)
	index := make(map[core.NodeID]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Dense |V|×|V| working matrix, +Inf for "no path yet".
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
		dist[i][i] = 0
	}
	undirected := !g.IsDirected()
	for _, e := range g.Edges() {
		i, j := index[e.Src], index[e.Dst]
		if e.Weight < dist[i][j] {
			dist[i][j] = e.Weight
		}
		if undirected && e.Weight < dist[j][i] {
			dist[j][i] = e.Weight
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if via := dist[i][k] + dist[k][j]; via < dist[i][j] {
					dist[i][j] = via
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, fmt.Errorf("floyd-warshall at node %d: %w", ids[i], ErrNegativeCycle)
		}
	}

	out := make(map[core.NodeID]map[core.NodeID]float64, n)
	for i, src := range ids {
		row := make(map[core.NodeID]float64)
		for j, dst := range ids {
			if !math.IsInf(dist[i][j], 1) {
				row[dst] = dist[i][j]
			}
		}
		out[src] = row
	}
	return out, nil
}
