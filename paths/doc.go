// SPDX-License-Identifier: MIT
// Package: gravix/paths
//
// Package paths implements weighted shortest-path solvers over a
// core.Graph:
//
//   - Dijkstra       — single-source distances, non-negative weights
//   - ShortestPath   — Dijkstra with path reconstruction to one goal
//   - BellmanFord    — single-source distances, negative weights allowed
//   - FloydWarshall  — all-pairs distances
//
// Distance maps contain only reachable nodes: an absent key means no
// path exists. Undirected edges are relaxed in both directions, which
// also means any negative undirected edge forms a negative cycle.
//
// Errors: an unknown endpoint wraps core.ErrNodeNotFound; Dijkstra
// refuses stores with negative weights (ErrNegativeWeight); BellmanFord
// and FloydWarshall report reachable negative cycles (ErrNegativeCycle);
// ShortestPath yields ErrNoPath for unreachable goals.
package paths
