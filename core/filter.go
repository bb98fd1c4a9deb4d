// SPDX-License-Identifier: MIT
// Package: gravix/core
//
// filter.go — predicate filtering. Both filters build a brand-new,
// fully independent store: mutating the result never touches the
// source and vice versa. Identifiers are reassigned in ascending
// source order, so equal inputs always yield equal outputs.

package core

// FilterNodes builds a new graph containing the nodes for which pred
// returns true, plus every edge whose endpoints both survive.
func (g *Graph[A]) FilterNodes(pred func(Node[A]) bool) *Graph[A] {
	nodes := g.Nodes()
	edges := g.Edges()

	out := NewGraph[A](WithDirected(g.directed))
	remap := make(map[NodeID]NodeID, len(nodes))
	for _, n := range nodes {
		if pred(n) {
			remap[n.ID] = out.AddNode(n.Attr)
		}
	}
	for _, e := range edges {
		src, okSrc := remap[e.Src]
		dst, okDst := remap[e.Dst]
		if okSrc && okDst {
			out.mustAddEdge(src, dst, e.Weight)
		}
	}
	return out
}

// FilterEdges builds a new graph with every node of g and only the
// edges for which pred returns true.
func (g *Graph[A]) FilterEdges(pred func(Edge) bool) *Graph[A] {
	nodes := g.Nodes()
	edges := g.Edges()

	out := NewGraph[A](WithDirected(g.directed))
	remap := make(map[NodeID]NodeID, len(nodes))
	for _, n := range nodes {
		remap[n.ID] = out.AddNode(n.Attr)
	}
	for _, e := range edges {
		if pred(e) {
			out.mustAddEdge(remap[e.Src], remap[e.Dst], e.Weight)
		}
	}
	return out
}

// mustAddEdge inserts an edge already known to be valid: endpoints come
// from the remap table and the weight from a stored edge.
func (g *Graph[A]) mustAddEdge(src, dst NodeID, weight float64) {
	if _, err := g.AddEdge(src, dst, weight); err != nil {
		panic("gravix: internal edge transfer failed: " + err.Error())
	}
}
