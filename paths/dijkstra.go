// SPDX-License-Identifier: MIT
// Package: gravix/paths
//
// dijkstra.go — single-source shortest distances on non-negative
// weights, plus goal-directed path reconstruction.
//
// The heap holds (node, distance) pairs and tolerates stale entries:
// instead of a decrease-key operation, improved distances are pushed
// again and outdated pops are skipped against the settled set.
//
// Complexity: O((V+E)·log V) time, O(V) space.

package paths

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/gravix/core"
)

// Sentinel errors of the paths package.
var (
	// ErrNegativeWeight is returned by Dijkstra and ShortestPath when
	// the store carries a negative edge weight.
	ErrNegativeWeight = errors.New("gravix: negative edge weight")

	// ErrNegativeCycle is returned by BellmanFord and FloydWarshall when
	// a reachable negative-weight cycle makes distances unbounded.
	ErrNegativeCycle = errors.New("gravix: negative-weight cycle")

	// ErrNoPath is returned by ShortestPath when the goal is not
	// reachable from the source.
	ErrNoPath = errors.New("gravix: no path to target")
)

// Dijkstra returns the minimum path cost from source to every reachable
// node. Unreachable nodes are absent from the map.
func Dijkstra[A comparable](g *core.Graph[A], source core.NodeID) (map[core.NodeID]float64, error) {
	dist, _, err := dijkstra(g, source, false)
	return dist, err
}

// ShortestPath returns the minimum cost and one minimum-cost node
// sequence from source to goal, both endpoints included.
func ShortestPath[A comparable](g *core.Graph[A], source, goal core.NodeID) (float64, []core.NodeID, error) {
	if !g.HasNode(goal) {
		return 0, nil, fmt.Errorf("shortest path goal %d: %w", goal, core.ErrNodeNotFound)
	}

	dist, prev, err := dijkstra(g, source, true)
	if err != nil {
		return 0, nil, err
	}
	cost, ok := dist[goal]
	if !ok {
		return 0, nil, fmt.Errorf("shortest path %d→%d: %w", source, goal, ErrNoPath)
	}

	path := []core.NodeID{goal}
	for at := goal; at != source; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return cost, path, nil
}

// dijkstra runs the shared relaxation loop; prev is tracked only when
// withPath is set.
func dijkstra[A comparable](g *core.Graph[A], source core.NodeID, withPath bool) (map[core.NodeID]float64, map[core.NodeID]core.NodeID, error) {
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("dijkstra source %d: %w", source, core.ErrNodeNotFound)
	}
	if g.HasNegativeWeights() {
		return nil, nil, fmt.Errorf("dijkstra: %w", ErrNegativeWeight)
	}

	dist := map[core.NodeID]float64{source: 0}
	var prev map[core.NodeID]core.NodeID
	if withPath {
		prev = make(map[core.NodeID]core.NodeID)
	}
	settled := make(map[core.NodeID]struct{})

	pq := &nodePQ{{node: source, dist: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if _, done := settled[item.node]; done {
			continue // stale entry, a shorter route was settled already
		}
		settled[item.node] = struct{}{}

		edges, err := g.OutEdges(item.node)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra expand %d: %w", item.node, err)
		}
		for _, e := range edges {
			v := farEndpoint(e, item.node)
			candidate := item.dist + e.Weight
			if current, seen := dist[v]; !seen || candidate < current {
				dist[v] = candidate
				if withPath {
					prev[v] = item.node
				}
				heap.Push(pq, pqItem{node: v, dist: candidate})
			}
		}
	}
	return dist, prev, nil
}

// farEndpoint picks the endpoint of e opposite to u; on directed stores
// OutEdges already guarantees Src == u.
func farEndpoint(e core.Edge, u core.NodeID) core.NodeID {
	if e.Src == u {
		return e.Dst
	}
	return e.Src
}

// pqItem is one heap entry: a node and its tentative distance.
type pqItem struct {
	node core.NodeID
	dist float64
}

// nodePQ is a binary min-heap over tentative distances, node id as the
// tie-break so pop order is deterministic.
type nodePQ []pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
