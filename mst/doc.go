// SPDX-License-Identifier: MIT
// Package: gravix/mst
//
// Package mst computes minimum spanning forests of undirected stores
// with three classic algorithms: Prim, Kruskal and Borůvka.
//
// Forest semantics: a disconnected store is not an error. Each
// algorithm spans every component separately, so a store with n nodes
// and c weakly connected components always yields exactly n−c tree
// edges; a single-node store yields total weight 0 and no edges.
// Self-loops can never join two components and are skipped.
//
// Determinism: ties between equal-weight edges are broken by
// (weight, src, dst, edge id), so all three algorithms agree on the
// total weight and repeated runs agree on the exact edge set.
//
// Directed stores are rejected with ErrDirectedGraph.
//
// The package also exports the union–find structure the forest builders
// rely on; gravix/parallel reuses it for component labeling.
package mst
