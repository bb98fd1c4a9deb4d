// SPDX-License-Identifier: MIT
// Package: gravix/extract
//
// extract.go — subgraph, ego-graph and component extraction.
//
// Complexity: every extraction is O(V+E) over the source store plus the
// cost of collecting the wanted node set.

package extract

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gravix/core"
)

// Subgraph builds a fresh store over the listed nodes, keeping every
// source edge whose endpoints are both listed. Duplicate ids collapse;
// an unknown id fails the whole call. An empty list yields an empty
// store.
func Subgraph[A comparable](g *core.Graph[A], ids []core.NodeID) (*core.Graph[A], error) {
	wanted := make(map[core.NodeID]struct{}, len(ids))
	for _, id := range ids {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("subgraph node %d: %w", id, core.ErrNodeNotFound)
		}
		wanted[id] = struct{}{}
	}

	sub := g.FilterNodes(func(n core.Node[A]) bool {
		_, ok := wanted[n.ID]
		return ok
	})
	return sub, nil
}

// InducedSubgraph builds the subgraph induced by the listed nodes. The
// contract is the same as Subgraph's: all edges between listed nodes
// survive, everything else is dropped.
func InducedSubgraph[A comparable](g *core.Graph[A], ids []core.NodeID) (*core.Graph[A], error) {
	return Subgraph(g, ids)
}

// EgoGraph builds the subgraph over every node within radius hops of
// center, center included. On directed stores the ball grows along
// out-edges.
func EgoGraph[A comparable](g *core.Graph[A], center core.NodeID, radius int) (*core.Graph[A], error) {
	if !g.HasNode(center) {
		return nil, fmt.Errorf("ego center %d: %w", center, core.ErrNodeNotFound)
	}

	ball := map[core.NodeID]struct{}{center: {}}
	frontier := []core.NodeID{center}
	for hop := 0; hop < radius && len(frontier) > 0; hop++ {
		var next []core.NodeID
		for _, u := range frontier {
			neighbors, err := g.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("ego expand %d: %w", u, err)
			}
			for _, v := range neighbors {
				if _, seen := ball[v]; !seen {
					ball[v] = struct{}{}
					next = append(next, v)
				}
			}
		}
		frontier = next
	}

	return Subgraph(g, setToSlice(ball))
}

// ConnectedComponent returns, in ascending order, every node of the
// weakly connected component containing id.
func ConnectedComponent[A comparable](g *core.Graph[A], id core.NodeID) ([]core.NodeID, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("component of %d: %w", id, core.ErrNodeNotFound)
	}

	member := map[core.NodeID]struct{}{id: {}}
	stack := []core.NodeID{id}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors, err := g.AllNeighbors(u)
		if err != nil {
			return nil, fmt.Errorf("component expand %d: %w", u, err)
		}
		for _, v := range neighbors {
			if _, seen := member[v]; !seen {
				member[v] = struct{}{}
				stack = append(stack, v)
			}
		}
	}
	return setToSlice(member), nil
}

// ComponentSubgraph materializes the weakly connected component
// containing id as a fresh store.
func ComponentSubgraph[A comparable](g *core.Graph[A], id core.NodeID) (*core.Graph[A], error) {
	member, err := ConnectedComponent(g, id)
	if err != nil {
		return nil, err
	}
	return Subgraph(g, member)
}

func setToSlice(set map[core.NodeID]struct{}) []core.NodeID {
	out := make([]core.NodeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
