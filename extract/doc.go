// SPDX-License-Identifier: MIT
// Package: gravix/extract
//
// Package extract carves pieces out of a core.Graph:
//
//   - Subgraph / InducedSubgraph — the graph over a chosen node set
//   - EgoGraph                   — the ball of a given hop radius around a center
//   - ConnectedComponent         — the membership of one weak component
//   - ComponentSubgraph          — that component as a graph
//
// Every extraction returns a brand-new, fully independent store:
// mutations on either side never leak across. Node and edge identifiers
// are reassigned in the result; what is preserved is the attribute and
// weight payload and the wiring between them. Nodes are inserted in
// ascending source-identifier order, so equal inputs yield equal
// outputs.
//
// Unknown node identifiers wrap core.ErrNodeNotFound and leave nothing
// half-built.
package extract
