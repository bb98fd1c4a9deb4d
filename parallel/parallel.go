// SPDX-License-Identifier: MIT
// Package: gravix/parallel
//
// parallel.go — batch BFS, degrees and component labeling over an
// errgroup worker pool.
//
// Partitioning:
//   - BFS fans out one task per start node.
//   - Degrees splits the identifier space into contiguous chunks.
//   - ConnectedComponents splits the edge list; each worker folds its
//     chunk into a private union–find, and the partial forests are
//     merged at the join barrier.

package parallel

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gravix/core"
	"github.com/katalvlaran/gravix/mst"
)

// BFS runs one breadth-first traversal per start node and returns the
// visit orders index-aligned with starts. Every start is validated up
// front: one unknown identifier aborts the whole batch with no partial
// results. Duplicate starts are allowed and traversed independently.
func BFS[A comparable](g *core.Graph[A], starts []core.NodeID, opts ...Option) ([][]core.NodeID, error) {
	for _, s := range starts {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("parallel bfs start %d: %w", s, core.ErrNodeNotFound)
		}
	}

	o := resolveOptions(opts)
	out := make([][]core.NodeID, len(starts))

	var eg errgroup.Group
	eg.SetLimit(o.Workers)
	for i, start := range starts {
		i, start := i, start
		eg.Go(func() error {
			order, err := bfsOrder(g, start)
			if err != nil {
				return err
			}
			out[i] = order
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// bfsOrder is one worker's traversal. The visited set is a roaring
// bitmap: node identifiers are dense non-negative integers, which is
// the shape bitmaps compress best.
func bfsOrder[A comparable](g *core.Graph[A], start core.NodeID) ([]core.NodeID, error) {
	visited := roaring64.New()
	visited.Add(uint64(start))

	order := []core.NodeID{start}
	queue := []core.NodeID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("parallel bfs expand %d: %w", u, err)
		}
		for _, v := range neighbors {
			if visited.CheckedAdd(uint64(v)) {
				order = append(order, v)
				queue = append(queue, v)
			}
		}
	}
	return order, nil
}

// Degrees returns the degree of every node, computed across the pool.
// The result agrees entry-for-entry with sequential core.Degree calls.
func Degrees[A comparable](g *core.Graph[A], opts ...Option) (map[core.NodeID]int, error) {
	ids := g.NodeIDs()
	o := resolveOptions(opts)
	chunks := partition(ids, o.Workers)
	partials := make([]map[core.NodeID]int, len(chunks))

	var eg errgroup.Group
	eg.SetLimit(o.Workers)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		eg.Go(func() error {
			m := make(map[core.NodeID]int, len(chunk))
			for _, id := range chunk {
				d, err := g.Degree(id)
				if err != nil {
					return fmt.Errorf("parallel degrees: %w", err)
				}
				m[id] = d
			}
			partials[i] = m
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[core.NodeID]int, len(ids))
	for _, m := range partials {
		for id, d := range m {
			merged[id] = d
		}
	}
	return merged, nil
}

// ConnectedComponents labels every node with its weakly connected
// component. Two nodes share a label iff they are connected; labels are
// dense integers from zero, assigned in order of each component's
// smallest node identifier.
func ConnectedComponents[A comparable](g *core.Graph[A], opts ...Option) (map[core.NodeID]int, error) {
	ids := g.NodeIDs()
	edges := g.Edges()
	o := resolveOptions(opts)

	chunks := partition(edges, o.Workers)
	forests := make([]*mst.UnionFind, len(chunks))

	var eg errgroup.Group
	eg.SetLimit(o.Workers)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		eg.Go(func() error {
			uf := mst.NewUnionFind()
			for _, e := range chunk {
				uf.Union(e.Src, e.Dst)
			}
			forests[i] = uf
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Fold the partial forests: re-unioning each member with its local
	// representative transfers every chunk's connectivity.
	merged := mst.NewUnionFind()
	for _, id := range ids {
		merged.Add(id)
	}
	for _, uf := range forests {
		for _, member := range uf.Nodes() {
			merged.Union(member, uf.Find(member))
		}
	}

	labels := make(map[core.NodeID]int, len(ids))
	labelOfRoot := make(map[core.NodeID]int)
	next := 0
	for _, id := range ids {
		root := merged.Find(id)
		label, ok := labelOfRoot[root]
		if !ok {
			label = next
			next++
			labelOfRoot[root] = label
		}
		labels[id] = label
	}
	return labels, nil
}

// partition splits items into at most n contiguous, near-equal chunks.
func partition[T any](items []T, n int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	chunks := make([][]T, 0, n)
	size := (len(items) + n - 1) / n
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
