// SPDX-License-Identifier: MIT
// Package: gravix/parallel
//
// Package parallel runs batch graph queries across a bounded worker
// pool:
//
//   - BFS                  — one traversal per start node, results
//     index-aligned with the input
//   - Degrees              — every node's degree in one call
//   - ConnectedComponents  — a dense component label per node
//
// The pool is an errgroup with SetLimit(workers); WithWorkers overrides
// the default of GOMAXPROCS. Inputs are validated eagerly before any
// worker starts, so a bad argument never produces partial output.
//
// Caller contract: the store must not be mutated concurrently with a
// call. The workers only read, so any number of parallel read-side
// calls is fine.
package parallel
