// SPDX-License-Identifier: MIT
// Package: gravix/traverse
//
// iddfs.go — iterative-deepening depth-first search.
//
// The search restarts a depth-limited DFS with limits 0..maxDepth and
// returns the first path that reaches the goal, so the result has the
// fewest possible hops. Nodes already on the current path are never
// revisited, which keeps each probe cycle-free.
//
// Complexity: O(b^d) time for branching factor b and solution depth d,
// O(d) space on top of the recursion.

package traverse

import (
	"fmt"

	"github.com/katalvlaran/gravix/core"
)

// IDDFS searches for a path from start to goal within maxDepth hops and
// returns it as a node sequence including both endpoints. A goal deeper
// than maxDepth yields ErrNoPath.
func IDDFS[A comparable](g *core.Graph[A], start, goal core.NodeID, maxDepth int) ([]core.NodeID, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("iddfs start %d: %w", start, core.ErrNodeNotFound)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("iddfs goal %d: %w", goal, core.ErrNodeNotFound)
	}

	onPath := make(map[core.NodeID]struct{})
	for limit := 0; limit <= maxDepth; limit++ {
		if path := depthLimited(g, start, goal, limit, onPath); path != nil {
			return path, nil
		}
	}
	return nil, fmt.Errorf("iddfs within %d hops: %w", maxDepth, ErrNoPath)
}

// depthLimited probes for goal at most limit hops below node and, on
// success, returns the node..goal path.
func depthLimited[A comparable](g *core.Graph[A], node, goal core.NodeID, limit int, onPath map[core.NodeID]struct{}) []core.NodeID {
	if node == goal {
		return []core.NodeID{node}
	}
	if limit == 0 {
		return nil
	}

	onPath[node] = struct{}{}
	defer delete(onPath, node)

	neighbors, err := g.Neighbors(node)
	if err != nil {
		return nil
	}
	for _, v := range neighbors {
		if _, cycle := onPath[v]; cycle {
			continue
		}
		if tail := depthLimited(g, v, goal, limit-1, onPath); tail != nil {
			return append([]core.NodeID{node}, tail...)
		}
	}
	return nil
}
