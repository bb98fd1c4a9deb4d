// SPDX-License-Identifier: MIT
// Package: gravix/gen
//
// Package gen constructs well-known topologies as ready-to-use stores:
// Complete, Path, Cycle, Star, RingLattice, RandomSparse and Bipartite.
//
// Every constructor yields a *core.Graph[int] whose node attributes are
// the construction indices 0..n-1 and whose edges carry unit weight.
// Node insertion order and edge trial order are fixed, so deterministic
// constructors always produce identical stores and RandomSparse is
// reproducible for a fixed seed.
//
// Directedness is an option (WithDirected); each constructor documents
// how it orients its arcs.
//
// Parameter validation is strict and sentinel-based: sizes below the
// topology's minimum return ErrTooFewNodes, probabilities outside [0,1]
// return ErrInvalidProbability, odd or oversized lattice degrees return
// ErrBadDegree, and stochastic constructors without an RNG return
// ErrNeedRand. Constructors never panic.
package gen
