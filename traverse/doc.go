// SPDX-License-Identifier: MIT
// Package: gravix/traverse
//
// Package traverse implements the classic graph walks over a core.Graph:
//
//   - BFS / DFS        — full visit orders from a start node
//   - IDDFS            — iterative-deepening depth-first path search
//   - Bidirectional    — two-frontier shortest hop path search
//   - KHopNeighbors    — the nodes within k hops of a start, start excluded
//
// All walks expand neighbors in ascending NodeID order, so visit orders
// and discovered paths are deterministic for a given store. On directed
// stores every walk follows edge direction; Bidirectional grows its
// backward frontier along in-edges.
//
// Errors: an unknown start or goal wraps core.ErrNodeNotFound; searches
// that exhaust their space without reaching the goal return ErrNoPath.
package traverse
