// SPDX-License-Identifier: MIT
// Package: gravix/core
//
// graph.go — the Graph store and its mutating operations.
//
// Contract:
//   - AddNode always succeeds and returns a fresh NodeID.
//   - AddEdge validates endpoints and weight before touching any map;
//     a failed call leaves the store unchanged.
//   - AddEdgesFrom is atomic: every spec is validated first, then all
//     are committed, so a single bad spec commits nothing.
//   - RemoveNode purges incident edges in the same critical section.
//   - Clear is the only operation that resets identifier allocation.
//
// Complexity:
//   - AddNode/AddEdge/RemoveEdge: O(1) amortized.
//   - RemoveNode: O(E) (scan of the edge catalog).
//   - Clone: O(V+E).

package core

import (
	"fmt"
	"math"
	"sync"
)

// edgeSet holds the identifiers of the parallel edges between one
// ordered pair of endpoints.
type edgeSet map[EdgeID]struct{}

// adjacency maps from-node → to-node → set of edge IDs.
type adjacency map[NodeID]map[NodeID]edgeSet

// Graph is a mutable in-memory graph with attribute-carrying nodes and
// float64-weighted edges. Self-loops and parallel edges are permitted.
// All methods are safe for concurrent use.
type Graph[A comparable] struct {
	mu sync.RWMutex

	directed bool

	nextNode NodeID
	nextEdge EdgeID

	nodes map[NodeID]A
	edges map[EdgeID]Edge

	// adj[u][v] holds every edge traversable from u to v. Undirected
	// stores mirror each non-loop entry under both endpoints; directed
	// stores keep the reverse view in radj for in-degree queries.
	adj  adjacency
	radj adjacency
}

// NewGraph constructs an empty Graph. The store is undirected unless
// WithDirected(true) is given.
func NewGraph[A comparable](opts ...GraphOption) *Graph[A] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[A]{
		directed: cfg.directed,
		nodes:    make(map[NodeID]A),
		edges:    make(map[EdgeID]Edge),
		adj:      make(adjacency),
	}
	if cfg.directed {
		g.radj = make(adjacency)
	}
	return g
}

// AddNode inserts a node carrying attr and returns its identifier.
func (g *Graph[A]) AddNode(attr A) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextNode
	g.nextNode++
	g.nodes[id] = attr
	return id
}

// UpdateNode replaces the attribute carried by an existing node.
func (g *Graph[A]) UpdateNode(id NodeID, attr A) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("update node %d: %w", id, ErrNodeNotFound)
	}
	g.nodes[id] = attr
	return nil
}

// AddEdge inserts an edge from src to dst with the given weight and
// returns its identifier. Both endpoints must exist and the weight must
// be finite; a failed call leaves the store unchanged.
func (g *Graph[A]) AddEdge(src, dst NodeID, weight float64) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdgeSpec(src, dst, weight); err != nil {
		return 0, err
	}
	return g.insertEdge(src, dst, weight), nil
}

// AddEdgesFrom inserts a batch of edges atomically: every spec is
// validated before any edge is committed, so one bad spec commits
// nothing. The returned identifiers are index-aligned with specs.
func (g *Graph[A]) AddEdgesFrom(specs []EdgeSpec) ([]EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, s := range specs {
		if err := g.checkEdgeSpec(s.Src, s.Dst, s.Weight); err != nil {
			return nil, fmt.Errorf("spec %d: %w", i, err)
		}
	}

	ids := make([]EdgeID, len(specs))
	for i, s := range specs {
		ids[i] = g.insertEdge(s.Src, s.Dst, s.Weight)
	}
	return ids, nil
}

// RemoveNode deletes a node together with every incident edge and
// returns the attribute it carried.
func (g *Graph[A]) RemoveNode(id NodeID) (A, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	attr, ok := g.nodes[id]
	if !ok {
		var zero A
		return zero, fmt.Errorf("remove node %d: %w", id, ErrNodeNotFound)
	}

	// Purge incident edges first, then the node itself.
	for eid, e := range g.edges {
		if e.Src == id || e.Dst == id {
			g.deleteEdge(eid, e)
		}
	}
	delete(g.nodes, id)
	delete(g.adj, id)
	if g.directed {
		delete(g.radj, id)
	}
	return attr, nil
}

// TryRemoveNode is RemoveNode without an error: the boolean reports
// whether the node existed.
func (g *Graph[A]) TryRemoveNode(id NodeID) (A, bool) {
	attr, err := g.RemoveNode(id)
	return attr, err == nil
}

// RemoveEdge deletes an edge and returns the weight it carried.
func (g *Graph[A]) RemoveEdge(id EdgeID) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return 0, fmt.Errorf("remove edge %d: %w", id, ErrEdgeNotFound)
	}
	g.deleteEdge(id, e)
	return e.Weight, nil
}

// TryRemoveEdge is RemoveEdge without an error: the boolean reports
// whether the edge existed.
func (g *Graph[A]) TryRemoveEdge(id EdgeID) (float64, bool) {
	w, err := g.RemoveEdge(id)
	return w, err == nil
}

// Clear removes every node and edge and resets identifier allocation,
// returning the store to its just-constructed state.
func (g *Graph[A]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextNode, g.nextEdge = 0, 0
	g.nodes = make(map[NodeID]A)
	g.edges = make(map[EdgeID]Edge)
	g.adj = make(adjacency)
	if g.directed {
		g.radj = make(adjacency)
	}
}

// Clone returns a deep, fully independent copy of the graph. Every
// identifier is preserved, so handles into g remain valid against the
// clone.
func (g *Graph[A]) Clone() *Graph[A] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph[A](WithDirected(g.directed))
	c.nextNode, c.nextEdge = g.nextNode, g.nextEdge
	for id, attr := range g.nodes {
		c.nodes[id] = attr
	}
	for id, e := range g.edges {
		c.edges[id] = e
		c.linkEdge(id, e)
	}
	return c
}

// checkEdgeSpec validates one edge insertion. Caller holds a lock.
func (g *Graph[A]) checkEdgeSpec(src, dst NodeID, weight float64) error {
	if _, ok := g.nodes[src]; !ok {
		return fmt.Errorf("source node %d: %w", src, ErrNodeNotFound)
	}
	if _, ok := g.nodes[dst]; !ok {
		return fmt.Errorf("target node %d: %w", dst, ErrNodeNotFound)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("weight %v: %w", weight, ErrNonFiniteWeight)
	}
	return nil
}

// insertEdge commits a pre-validated edge. Caller holds the write lock.
func (g *Graph[A]) insertEdge(src, dst NodeID, weight float64) EdgeID {
	id := g.nextEdge
	g.nextEdge++

	e := Edge{ID: id, Src: src, Dst: dst, Weight: weight}
	g.edges[id] = e
	g.linkEdge(id, e)
	return id
}

// linkEdge wires an edge into the adjacency views. Caller holds the
// write lock (or owns an unshared store).
func (g *Graph[A]) linkEdge(id EdgeID, e Edge) {
	link(g.adj, e.Src, e.Dst, id)
	if g.directed {
		link(g.radj, e.Dst, e.Src, id)
	} else if e.Src != e.Dst {
		link(g.adj, e.Dst, e.Src, id)
	}
}

// deleteEdge unwires and drops an edge. Caller holds the write lock.
func (g *Graph[A]) deleteEdge(id EdgeID, e Edge) {
	delete(g.edges, id)
	unlink(g.adj, e.Src, e.Dst, id)
	if g.directed {
		unlink(g.radj, e.Dst, e.Src, id)
	} else if e.Src != e.Dst {
		unlink(g.adj, e.Dst, e.Src, id)
	}
}

func link(a adjacency, from, to NodeID, id EdgeID) {
	m, ok := a[from]
	if !ok {
		m = make(map[NodeID]edgeSet)
		a[from] = m
	}
	s, ok := m[to]
	if !ok {
		s = make(edgeSet)
		m[to] = s
	}
	s[id] = struct{}{}
}

func unlink(a adjacency, from, to NodeID, id EdgeID) {
	m, ok := a[from]
	if !ok {
		return
	}
	if s, ok := m[to]; ok {
		delete(s, id)
		if len(s) == 0 {
			delete(m, to)
		}
	}
	if len(m) == 0 {
		delete(a, from)
	}
}
