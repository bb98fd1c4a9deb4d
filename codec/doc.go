// SPDX-License-Identifier: MIT
// Package: gravix/codec
//
// Package codec persists core.Graph stores in three interchange formats:
//
//   - Edge list — one "src sep dst sep weight" text line per edge,
//     attribute-keyed node columns, '#' comments, default weight 1.0
//   - JSON      — {directed, nodes, edges} with positional edge indices
//   - Binary    — compact fixed-width records, optional zstd compression
//
// Round-trip contract: writing a store and reading it back preserves
// the node count, edge count, directedness, attributes, weights and the
// wiring between them. Identifier values are reassigned on read; the
// edge-list format additionally drops isolated nodes and collapses
// nodes whose attributes render identically, because the text form
// carries nothing else to tell them apart.
//
// Write order is deterministic (ascending identifiers), so equal stores
// serialize byte-for-byte equally.
package codec
