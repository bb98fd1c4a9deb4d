// SPDX-License-Identifier: MIT
// Package: gravix/mst
//
// unionfind.go — disjoint-set forest over NodeIDs with path compression
// and union by rank. Operations are amortized near-constant.

package mst

import (
	"sort"

	"github.com/katalvlaran/gravix/core"
)

// UnionFind is a disjoint-set forest over node identifiers. The zero
// value is not usable; construct with NewUnionFind. Not safe for
// concurrent use.
type UnionFind struct {
	parent map[core.NodeID]core.NodeID
	rank   map[core.NodeID]int
}

// NewUnionFind returns an empty disjoint-set forest.
func NewUnionFind() *UnionFind {
	return &UnionFind{
		parent: make(map[core.NodeID]core.NodeID),
		rank:   make(map[core.NodeID]int),
	}
}

// Add registers id as a singleton set. Already-known ids are left alone.
func (uf *UnionFind) Add(id core.NodeID) {
	if _, ok := uf.parent[id]; !ok {
		uf.parent[id] = id
	}
}

// Find returns the representative of the set containing id, registering
// id as a singleton first if it is unknown. Paths are compressed on the
// way up.
func (uf *UnionFind) Find(id core.NodeID) core.NodeID {
	uf.Add(id)

	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for at := id; at != root; {
		next := uf.parent[at]
		uf.parent[at] = root
		at = next
	}
	return root
}

// Union merges the sets containing a and b and reports whether they
// were distinct beforehand.
func (uf *UnionFind) Union(a, b core.NodeID) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}

// Nodes returns every registered identifier in ascending order.
func (uf *UnionFind) Nodes() []core.NodeID {
	ids := make([]core.NodeID, 0, len(uf.parent))
	for id := range uf.parent {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
