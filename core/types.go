// SPDX-License-Identifier: MIT
// Package: gravix/core
//
// types.go — identifiers, value types, sentinel errors and construction
// options for the graph store.

package core

import "errors"

// NodeID identifies a node within a single Graph. Values are allocated
// monotonically starting at zero and are never reused until Clear.
type NodeID int64

// EdgeID identifies an edge within a single Graph. Like NodeID, values
// are monotonic and stay stable across unrelated removals.
type EdgeID int64

// Node pairs a stable identifier with the attribute it carries.
type Node[A comparable] struct {
	ID   NodeID
	Attr A
}

// Edge describes one stored edge: identifier, endpoints and weight.
// On undirected graphs Src/Dst record insertion order but carry no
// orientation meaning.
type Edge struct {
	ID     EdgeID
	Src    NodeID
	Dst    NodeID
	Weight float64
}

// EdgeSpec describes one edge for batch insertion via AddEdgesFrom.
type EdgeSpec struct {
	Src    NodeID
	Dst    NodeID
	Weight float64
}

// Sentinel errors returned by Graph operations. Call sites attach context
// with %w wrapping; callers branch with errors.Is.
var (
	// ErrNodeNotFound indicates that an operation referenced a NodeID
	// that is not present in the store. AddEdge wraps it with a message
	// naming the offending role (source or target).
	ErrNodeNotFound = errors.New("gravix: node not found")

	// ErrEdgeNotFound indicates that an operation referenced an EdgeID
	// that is not present in the store.
	ErrEdgeNotFound = errors.New("gravix: edge not found")

	// ErrNonFiniteWeight indicates an edge weight of NaN, +Inf or -Inf.
	// Such weights never enter the store.
	ErrNonFiniteWeight = errors.New("gravix: edge weight must be finite")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
}

// WithDirected selects a directed store when directed is true.
// The default is an undirected store.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}
