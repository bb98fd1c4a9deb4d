// Package gravix is your in-memory playground for building, exploring,
// and analyzing graphs — stable identifiers, rich metrics, classic
// algorithms and round-trip persistence.
//
// 🚀 What is gravix?
//
//	A modern, thread-safe graph engine that brings together:
//		• Core store: attribute-carrying nodes, weighted edges, safe mutation under locks
//		• Structural metrics: density, diameter, clustering, assortativity & friends
//		• Traversals: BFS, DFS, iterative-deepening DFS, bidirectional search, k-hop
//		• Shortest paths: Dijkstra, Bellman–Ford, Floyd–Warshall
//		• Spanning forests: Prim, Kruskal, Borůvka
//		• Extraction: subgraphs, ego graphs, connected components — always independent copies
//		• Parallel batch queries: multi-source BFS, degrees, component labels
//		• Codecs: edge-list, JSON and binary formats with faithful round trips
//
// ✨ Why choose gravix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, sentinel errors, deterministic ordering
//   - Honest validation – bad endpoints and non-finite weights never touch the store
//   - Extensible – generic attributes, pluggable attribute codecs
//
// Under the hood, everything is organized under per-concern subpackages:
//
//	core/     — the Graph store: nodes, edges, queries, filtering & metrics
//	traverse/ — BFS, DFS, IDDFS, bidirectional search, k-hop neighborhoods
//	paths/    — Dijkstra, Bellman–Ford, Floyd–Warshall
//	mst/      — Prim, Kruskal, Borůvka spanning forests + union–find
//	extract/  — subgraph, ego-graph and component extraction
//	parallel/ — worker-pool batch traversal, degrees and component labeling
//	codec/    — edge-list, JSON and binary persistence
//	gen/      — deterministic & random topology constructors
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four nodes and four unit-weight edges.
//
// Dive into the subpackage docs for contracts, complexity notes and examples.
//
//	go get github.com/katalvlaran/gravix
package gravix
