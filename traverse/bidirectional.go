// SPDX-License-Identifier: MIT
// Package: gravix/traverse
//
// bidirectional.go — two-frontier shortest hop path search.
//
// One frontier grows from start along out-edges, the other from goal
// along in-edges (plain neighbors on undirected stores). Each round
// expands the smaller frontier; the first node claimed by both sides
// is the meeting point from which the path is spliced.
//
// Complexity: O(b^(d/2)) expansions against O(b^d) for plain BFS.

package traverse

import (
	"fmt"

	"github.com/katalvlaran/gravix/core"
)

// Bidirectional returns a minimum-hop path from start to goal, both
// endpoints included. Unreachable goals yield ErrNoPath.
func Bidirectional[A comparable](g *core.Graph[A], start, goal core.NodeID) ([]core.NodeID, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bidirectional start %d: %w", start, core.ErrNodeNotFound)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("bidirectional goal %d: %w", goal, core.ErrNodeNotFound)
	}
	if start == goal {
		return []core.NodeID{start}, nil
	}

	// parent maps double as visited sets; roots point at themselves.
	forward := map[core.NodeID]core.NodeID{start: start}
	backward := map[core.NodeID]core.NodeID{goal: goal}
	forwardFrontier := []core.NodeID{start}
	backwardFrontier := []core.NodeID{goal}

	for len(forwardFrontier) > 0 && len(backwardFrontier) > 0 {
		if len(forwardFrontier) <= len(backwardFrontier) {
			next, meet, found := expandFrontier(g, forwardFrontier, forward, backward, false)
			if found {
				return splicePath(forward, backward, start, goal, meet), nil
			}
			forwardFrontier = next
		} else {
			next, meet, found := expandFrontier(g, backwardFrontier, backward, forward, true)
			if found {
				return splicePath(forward, backward, start, goal, meet), nil
			}
			backwardFrontier = next
		}
	}
	return nil, fmt.Errorf("bidirectional %d→%d: %w", start, goal, ErrNoPath)
}

// expandFrontier grows one search side by a level and reports the first
// node also claimed by the other side.
func expandFrontier[A comparable](
	g *core.Graph[A],
	frontier []core.NodeID,
	parent, other map[core.NodeID]core.NodeID,
	backward bool,
) (next []core.NodeID, meet core.NodeID, found bool) {
	for _, u := range frontier {
		var (
			neighbors []core.NodeID
			err       error
		)
		if backward {
			neighbors, err = g.InNeighbors(u)
		} else {
			neighbors, err = g.Neighbors(u)
		}
		if err != nil {
			continue
		}
		for _, v := range neighbors {
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			if _, hit := other[v]; hit {
				return nil, v, true
			}
			next = append(next, v)
		}
	}
	return next, 0, false
}

// splicePath stitches the two parent chains together at meet.
func splicePath(forward, backward map[core.NodeID]core.NodeID, start, goal, meet core.NodeID) []core.NodeID {
	var path []core.NodeID
	for at := meet; ; at = forward[at] {
		path = append(path, at)
		if at == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for at := meet; at != goal; {
		at = backward[at]
		path = append(path, at)
	}
	return path
}
