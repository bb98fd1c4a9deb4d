// SPDX-License-Identifier: MIT
// Package: gravix/traverse
//
// traverse.go — breadth-first and depth-first visit orders.
//
// Complexity: O(V+E) time, O(V) space for both walks.

package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gravix/core"
)

// ErrNoPath is returned by the goal-directed searches (IDDFS,
// Bidirectional) when the goal cannot be reached.
var ErrNoPath = errors.New("gravix: no path between the given nodes")

// BFS returns the breadth-first visit order from start. Neighbors are
// expanded in ascending identifier order; nodes outside the reachable
// set do not appear.
func BFS[A comparable](g *core.Graph[A], start core.NodeID) ([]core.NodeID, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs start %d: %w", start, core.ErrNodeNotFound)
	}

	order := []core.NodeID{start}
	visited := map[core.NodeID]struct{}{start: {}}
	queue := []core.NodeID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("bfs expand %d: %w", u, err)
		}
		for _, v := range neighbors {
			if _, seen := visited[v]; !seen {
				visited[v] = struct{}{}
				order = append(order, v)
				queue = append(queue, v)
			}
		}
	}
	return order, nil
}

// DFS returns the depth-first visit order from start. The walk is
// iterative; among unvisited neighbors the smallest identifier is
// explored first.
func DFS[A comparable](g *core.Graph[A], start core.NodeID) ([]core.NodeID, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("dfs start %d: %w", start, core.ErrNodeNotFound)
	}

	var order []core.NodeID
	visited := make(map[core.NodeID]struct{})
	stack := []core.NodeID{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[u]; seen {
			continue
		}
		visited[u] = struct{}{}
		order = append(order, u)

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dfs expand %d: %w", u, err)
		}
		// Push in reverse so the smallest neighbor is popped first.
		for i := len(neighbors) - 1; i >= 0; i-- {
			if _, seen := visited[neighbors[i]]; !seen {
				stack = append(stack, neighbors[i])
			}
		}
	}
	return order, nil
}
