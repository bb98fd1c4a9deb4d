// SPDX-License-Identifier: MIT
// Package: gravix/traverse
//
// bench_test.go — traversal throughput on a generated lattice.

package traverse_test

import (
	"testing"

	"github.com/katalvlaran/gravix/core"
	"github.com/katalvlaran/gravix/gen"
	"github.com/katalvlaran/gravix/traverse"
)

func benchLattice(b *testing.B) (*core.Graph[int], core.NodeID) {
	b.Helper()
	g, err := gen.RingLattice(2048, 8)
	if err != nil {
		b.Fatal(err)
	}
	return g, g.NodeIDs()[0]
}

func BenchmarkBFS(b *testing.B) {
	g, start := benchLattice(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.BFS(g, start); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDFS(b *testing.B) {
	g, start := benchLattice(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.DFS(g, start); err != nil {
			b.Fatal(err)
		}
	}
}
