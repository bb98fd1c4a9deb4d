// SPDX-License-Identifier: MIT
// Package: gravix/core
//
// Package core provides the fundamental graph store used by every other
// gravix package: a mutable, thread-safe graph whose nodes carry an
// arbitrary comparable attribute and whose edges carry a float64 weight.
//
// Identity model:
//   - Every node and edge receives a stable, opaque identifier (NodeID,
//     EdgeID) at insertion. Identifiers are allocated monotonically and
//     are never reused while the store lives; only Clear resets the
//     allocation counters.
//   - Removing a node purges every incident edge; the identifiers of the
//     surviving nodes and edges are untouched.
//
// Validation model:
//   - AddEdge rejects unknown endpoints (ErrNodeNotFound, with the wrap
//     message telling source and target apart) and non-finite weights
//     (ErrNonFiniteWeight). A rejected operation leaves the store exactly
//     as it was; AddEdgesFrom extends the same guarantee to whole batches.
//
// Concurrency:
//   - A single RWMutex guards the store: queries take the read lock,
//     mutations the write lock. Predicates passed to FilterNodes and
//     FilterEdges run on snapshots, so they may freely query the graph.
//
// Determinism:
//   - Every enumeration (Nodes, Edges, NodeIDs, EdgeIDs, Neighbors, …)
//     returns identifier-sorted snapshots, so equal stores always
//     enumerate equally.
//
// Self-loops and parallel edges are permitted; metrics defined on simple
// graphs (clustering, assortativity, …) work on the deduplicated
// undirected view and say so in their doc comments.
package core
