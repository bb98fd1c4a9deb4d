// SPDX-License-Identifier: MIT
// Package: gravix/gen
//
// generators.go — the topology constructors.
//
// Shared conventions:
//   - seed(n) inserts nodes 0..n-1 in ascending index order, so node
//     attributes double as construction indices.
//   - Edges carry unit weight; edge insertion order is fixed per
//     constructor, which keeps identifiers reproducible.
//   - addEdge never fails here: endpoints come from seed and the weight
//     is the constant 1.

package gen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gravix/core"
)

const unitWeight = 1.0

// Option configures a constructor.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected makes the constructed store directed.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// Complete returns the complete graph on n ≥ 1 nodes: every unordered
// pair is joined. Directed mode joins every ordered pair, so each pair
// carries both arcs.
func Complete(n int, opts ...Option) (*core.Graph[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("complete on %d nodes: %w", n, ErrTooFewNodes)
	}
	g, ids := seed(n, opts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			addEdge(g, ids[i], ids[j])
			if g.IsDirected() {
				addEdge(g, ids[j], ids[i])
			}
		}
	}
	return g, nil
}

// Path returns the path 0−1−…−(n−1) on n ≥ 1 nodes. Directed mode
// orients every arc forward.
func Path(n int, opts ...Option) (*core.Graph[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("path on %d nodes: %w", n, ErrTooFewNodes)
	}
	g, ids := seed(n, opts)
	for i := 0; i+1 < n; i++ {
		addEdge(g, ids[i], ids[i+1])
	}
	return g, nil
}

// Cycle returns the cycle on n ≥ 3 nodes. Directed mode orients the
// ring 0→1→…→0.
func Cycle(n int, opts ...Option) (*core.Graph[int], error) {
	if n < 3 {
		return nil, fmt.Errorf("cycle on %d nodes: %w", n, ErrTooFewNodes)
	}
	g, ids := seed(n, opts)
	for i := 0; i < n; i++ {
		addEdge(g, ids[i], ids[(i+1)%n])
	}
	return g, nil
}

// Star returns the star on n ≥ 1 nodes: node 0 is the hub, every other
// node a leaf. Directed mode points the arcs hub→leaf.
func Star(n int, opts ...Option) (*core.Graph[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("star on %d nodes: %w", n, ErrTooFewNodes)
	}
	g, ids := seed(n, opts)
	for i := 1; i < n; i++ {
		addEdge(g, ids[0], ids[i])
	}
	return g, nil
}

// RingLattice returns the ring lattice on n ≥ 3 nodes where every node
// joins its k/2 nearest neighbors on each side. k must be even,
// non-negative and below n. Directed mode orients arcs forward around
// the ring.
func RingLattice(n, k int, opts ...Option) (*core.Graph[int], error) {
	if n < 3 {
		return nil, fmt.Errorf("ring lattice on %d nodes: %w", n, ErrTooFewNodes)
	}
	if k < 0 || k%2 != 0 || k >= n {
		return nil, fmt.Errorf("ring lattice degree %d on %d nodes: %w", k, n, ErrBadDegree)
	}
	g, ids := seed(n, opts)
	for i := 0; i < n; i++ {
		for step := 1; step <= k/2; step++ {
			addEdge(g, ids[i], ids[(i+step)%n])
		}
	}
	return g, nil
}

// RandomSparse returns an Erdős–Rényi-like graph on n ≥ 1 nodes:
// every admissible pair is included independently with probability p.
// Undirected mode trials unordered pairs {i,j}, i<j; directed mode
// trials ordered pairs (i,j), i≠j. The trial order is fixed, so a fixed
// seed reproduces the exact store.
func RandomSparse(n int, p float64, rng *rand.Rand, opts ...Option) (*core.Graph[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("random sparse on %d nodes: %w", n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("random sparse p=%v: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("random sparse: %w", ErrNeedRand)
	}

	g, ids := seed(n, opts)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !g.IsDirected() && j <= i {
				continue
			}
			if rng.Float64() < p {
				addEdge(g, ids[i], ids[j])
			}
		}
	}
	return g, nil
}

// Bipartite returns the complete bipartite graph on m ≥ 1 left and
// n ≥ 1 right nodes: indices 0..m-1 form the left part, m..m+n-1 the
// right, and every left-right pair is joined. Directed mode points the
// arcs left→right.
func Bipartite(m, n int, opts ...Option) (*core.Graph[int], error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("bipartite on %d+%d nodes: %w", m, n, ErrTooFewNodes)
	}
	g, ids := seed(m+n, opts)
	for i := 0; i < m; i++ {
		for j := m; j < m+n; j++ {
			addEdge(g, ids[i], ids[j])
		}
	}
	return g, nil
}

// seed builds the empty store and inserts nodes 0..n-1.
func seed(n int, opts []Option) (*core.Graph[int], []core.NodeID) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph[int](core.WithDirected(cfg.directed))
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	return g, ids
}

// addEdge inserts a unit-weight edge between seeded nodes.
func addEdge(g *core.Graph[int], src, dst core.NodeID) {
	if _, err := g.AddEdge(src, dst, unitWeight); err != nil {
		panic("gravix: seeded edge insertion failed: " + err.Error())
	}
}
