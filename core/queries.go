// SPDX-License-Identifier: MIT
// Package: gravix/core
//
// queries.go — read-only accessors: lookups, enumerations, degrees and
// neighborhoods. Every slice returned here is a freshly allocated,
// identifier-sorted snapshot.

package core

import (
	"fmt"
	"sort"
)

// IsDirected reports the orientation mode chosen at construction.
func (g *Graph[A]) IsDirected() bool { return g.directed }

// NodeCount returns the number of nodes in the store.
func (g *Graph[A]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the store.
func (g *Graph[A]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// HasNode reports whether id is present.
func (g *Graph[A]) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether id is present.
func (g *Graph[A]) HasEdge(id EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]
	return ok
}

// HasEdgeBetween reports whether at least one edge joins src and dst.
// Orientation matters on directed stores; undirected stores answer for
// either endpoint order.
func (g *Graph[A]) HasEdgeBetween(src, dst NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.adj[src][dst]
	return ok && len(s) > 0
}

// FindEdge returns the lowest-identified edge joining src and dst, which
// between parallel edges is the one inserted first.
func (g *Graph[A]) FindEdge(src, dst NodeID) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		best  Edge
		found bool
	)
	for id := range g.adj[src][dst] {
		if !found || id < best.ID {
			best, found = g.edges[id], true
		}
	}
	return best, found
}

// NodeAttr returns the attribute carried by a node.
func (g *Graph[A]) NodeAttr(id NodeID) (A, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	attr, ok := g.nodes[id]
	if !ok {
		var zero A
		return zero, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return attr, nil
}

// EdgeByID returns the full edge record for id.
func (g *Graph[A]) EdgeByID(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("edge %d: %w", id, ErrEdgeNotFound)
	}
	return e, nil
}

// EdgeWeight returns the weight carried by an edge.
func (g *Graph[A]) EdgeWeight(id EdgeID) (float64, error) {
	e, err := g.EdgeByID(id)
	return e.Weight, err
}

// EdgeEndpoints returns the endpoints of an edge.
func (g *Graph[A]) EdgeEndpoints(id EdgeID) (src, dst NodeID, err error) {
	e, err := g.EdgeByID(id)
	return e.Src, e.Dst, err
}

// NodeIDs returns every node identifier in ascending order.
func (g *Graph[A]) NodeIDs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodeIDsLocked()
}

// Nodes returns a snapshot of every node, sorted by identifier.
func (g *Graph[A]) Nodes() []Node[A] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node[A], 0, len(g.nodes))
	for _, id := range g.nodeIDsLocked() {
		out = append(out, Node[A]{ID: id, Attr: g.nodes[id]})
	}
	return out
}

// EdgeIDs returns every edge identifier in ascending order.
func (g *Graph[A]) EdgeIDs() []EdgeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Edges returns a snapshot of every edge, sorted by identifier.
func (g *Graph[A]) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Degree returns the number of edge endpoints incident to id. On
// undirected stores a self-loop counts once; on directed stores Degree
// is InDegree+OutDegree, so a self-loop counts once per orientation.
func (g *Graph[A]) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	d := countEdges(g.adj[id])
	if g.directed {
		d += countEdges(g.radj[id])
	}
	return d, nil
}

// OutDegree returns the number of edges leaving id. On undirected stores
// it equals Degree.
func (g *Graph[A]) OutDegree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return countEdges(g.adj[id]), nil
}

// InDegree returns the number of edges entering id. On undirected stores
// it equals Degree.
func (g *Graph[A]) InDegree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	if !g.directed {
		return countEdges(g.adj[id]), nil
	}
	return countEdges(g.radj[id]), nil
}

// Neighbors returns the distinct nodes reachable from id along one edge,
// in ascending order. On directed stores this is the out-neighborhood.
func (g *Graph[A]) Neighbors(id NodeID) ([]NodeID, error) {
	return g.OutNeighbors(id)
}

// OutNeighbors returns the distinct heads of edges leaving id, sorted.
func (g *Graph[A]) OutNeighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return sortedKeys(g.adj[id]), nil
}

// InNeighbors returns the distinct tails of edges entering id, sorted.
func (g *Graph[A]) InNeighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	if !g.directed {
		return sortedKeys(g.adj[id]), nil
	}
	return sortedKeys(g.radj[id]), nil
}

// AllNeighbors returns the distinct nodes adjacent to id ignoring edge
// direction, sorted. This is the neighborhood weak-connectivity walks
// need on directed stores.
func (g *Graph[A]) AllNeighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	if !g.directed {
		return sortedKeys(g.adj[id]), nil
	}

	seen := make(map[NodeID]struct{}, len(g.adj[id])+len(g.radj[id]))
	for v := range g.adj[id] {
		seen[v] = struct{}{}
	}
	for v := range g.radj[id] {
		seen[v] = struct{}{}
	}
	out := make([]NodeID, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// OutEdges returns every edge traversable from id, sorted by edge
// identifier. Undirected stores report each incident edge exactly once,
// with Src/Dst as inserted, so callers pick the far endpoint themselves.
func (g *Graph[A]) OutEdges(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}

	var out []Edge
	for _, s := range g.adj[id] {
		for eid := range s {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// nodeIDsLocked returns ascending node ids. Caller holds a lock.
func (g *Graph[A]) nodeIDsLocked() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func nodeNotFound(id NodeID) error {
	return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
}

func countEdges(m map[NodeID]edgeSet) int {
	n := 0
	for _, s := range m {
		n += len(s)
	}
	return n
}

func sortedKeys(m map[NodeID]edgeSet) []NodeID {
	out := make([]NodeID, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
