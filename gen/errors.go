// SPDX-License-Identifier: MIT
// Package: gravix/gen
//
// errors.go — sentinel errors for parameter validation.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Constructors attach context with %w wrapping, never by
//     stringifying parameters into the sentinel itself.

package gen

import "errors"

// ErrTooFewNodes indicates a size parameter below the minimum the
// requested topology needs (for instance, a cycle of two nodes).
var ErrTooFewNodes = errors.New("gravix: too few nodes for this topology")

// ErrInvalidProbability indicates an edge probability outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("gravix: probability out of range")

// ErrBadDegree indicates a ring-lattice degree that is odd, negative,
// or not below the node count.
var ErrBadDegree = errors.New("gravix: invalid lattice degree")

// ErrNeedRand indicates that a stochastic constructor was called
// without a random source.
var ErrNeedRand = errors.New("gravix: rng is required")
