// SPDX-License-Identifier: MIT
// Package: gravix/traverse
//
// khop.go — bounded-depth neighborhood collection.

package traverse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gravix/core"
)

// KHopNeighbors returns, in ascending order, every node whose hop
// distance from start lies in 1..k. The start itself is excluded: only
// nodes reached via at least one edge qualify. k ≤ 0 yields an empty
// result.
func KHopNeighbors[A comparable](g *core.Graph[A], start core.NodeID, k int) ([]core.NodeID, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("k-hop start %d: %w", start, core.ErrNodeNotFound)
	}

	visited := map[core.NodeID]struct{}{start: {}}
	frontier := []core.NodeID{start}
	var collected []core.NodeID
	for hop := 0; hop < k && len(frontier) > 0; hop++ {
		var next []core.NodeID
		for _, u := range frontier {
			neighbors, err := g.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("k-hop expand %d: %w", u, err)
			}
			for _, v := range neighbors {
				if _, seen := visited[v]; !seen {
					visited[v] = struct{}{}
					collected = append(collected, v)
					next = append(next, v)
				}
			}
		}
		frontier = next
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i] < collected[j] })
	return collected, nil
}
