// SPDX-License-Identifier: MIT
// Package: gravix/codec
//
// json.go — JSON interchange.
//
// Document shape:
//
//	{
//	  "directed": false,
//	  "nodes": [{"id": 0, "attr": …}, …],
//	  "edges": [{"source": 0, "target": 1, "weight": 2.5}, …]
//	}
//
// Edge source/target are positions into the nodes array, not raw
// identifiers; the id field records the writer's identifier for human
// readers and is ignored on read.

package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/gravix/core"
)

type jsonNode[A comparable] struct {
	ID   int64 `json:"id"`
	Attr A     `json:"attr"`
}

type jsonEdge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
}

type jsonGraph[A comparable] struct {
	Directed bool          `json:"directed"`
	Nodes    []jsonNode[A] `json:"nodes"`
	Edges    []jsonEdge    `json:"edges"`
}

// WriteJSON writes g as one JSON document. The attribute type must be
// marshalable by encoding/json.
func WriteJSON[A comparable](w io.Writer, g *core.Graph[A]) error {
	nodes := g.Nodes()
	position := make(map[core.NodeID]int, len(nodes))

	doc := jsonGraph[A]{
		Directed: g.IsDirected(),
		Nodes:    make([]jsonNode[A], len(nodes)),
		Edges:    make([]jsonEdge, 0, g.EdgeCount()),
	}
	for i, n := range nodes {
		position[n.ID] = i
		doc.Nodes[i] = jsonNode[A]{ID: int64(n.ID), Attr: n.Attr}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, jsonEdge{
			Source: position[e.Src],
			Target: position[e.Dst],
			Weight: e.Weight,
		})
	}

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("json write: %w", err)
	}
	return nil
}

// ReadJSON rebuilds a store from a document written by WriteJSON.
// Identifiers are reassigned; positions, attributes and weights are
// preserved.
func ReadJSON[A comparable](r io.Reader) (*core.Graph[A], error) {
	var doc jsonGraph[A]
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("json read: %w", err)
	}

	g := core.NewGraph[A](core.WithDirected(doc.Directed))
	ids := make([]core.NodeID, len(doc.Nodes))
	for i, n := range doc.Nodes {
		ids[i] = g.AddNode(n.Attr)
	}
	for i, e := range doc.Edges {
		if e.Source < 0 || e.Source >= len(ids) || e.Target < 0 || e.Target >= len(ids) {
			return nil, fmt.Errorf("json edge %d references node %d/%d: %w",
				i, e.Source, e.Target, ErrCorruptPayload)
		}
		if _, err := g.AddEdge(ids[e.Source], ids[e.Target], e.Weight); err != nil {
			return nil, fmt.Errorf("json edge %d: %w", i, err)
		}
	}
	return g, nil
}
