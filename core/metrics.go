// SPDX-License-Identifier: MIT
// Package: gravix/core
//
// metrics.go — read-only structural metrics over the store.
//
// Conventions:
//   - Connectivity is weak: directed edges are walked both ways.
//   - Distance metrics (Diameter, Radius, AveragePathLength) count hops
//     and follow edge direction on directed stores; they report ok=false
//     when the required pairs are not all reachable (or the store is too
//     small to define the metric).
//   - Clustering, triangles, transitivity and assortativity use the
//     simple undirected view: distinct neighbors, self-loops ignored.

package core

import "math"

// IsEmpty reports whether the store has no nodes.
func (g *Graph[A]) IsEmpty() bool {
	return g.NodeCount() == 0
}

// IsConnected reports whether every node is reachable from every other
// node ignoring edge direction. An empty store is not connected.
func (g *Graph[A]) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return false
	}
	var start NodeID
	for id := range g.nodes {
		start = id
		break
	}
	return len(g.weakReachLocked(start)) == len(g.nodes)
}

// HasSelfLoops reports whether any edge joins a node to itself.
func (g *Graph[A]) HasSelfLoops() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Src == e.Dst {
			return true
		}
	}
	return false
}

// HasNegativeWeights reports whether any edge weight is below zero.
func (g *Graph[A]) HasNegativeWeights() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Weight < 0 {
			return true
		}
	}
	return false
}

// IsBipartite reports whether the nodes admit a 2-coloring such that
// every edge joins the two color classes, ignoring edge direction.
// A self-loop makes the store non-bipartite; an empty store is
// bipartite vacuously.
func (g *Graph[A]) IsBipartite() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Src == e.Dst {
			return false
		}
	}

	color := make(map[NodeID]bool, len(g.nodes))
	for _, root := range g.nodeIDsLocked() {
		if _, seen := color[root]; seen {
			continue
		}
		color[root] = false
		queue := []NodeID{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := range g.undirectedNeighborsLocked(u) {
				cv, seen := color[v]
				if !seen {
					color[v] = !color[u]
					queue = append(queue, v)
					continue
				}
				if cv == color[u] {
					return false
				}
			}
		}
	}
	return true
}

// CountComponents returns the number of weakly connected components.
func (g *Graph[A]) CountComponents() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := make(map[NodeID]struct{}, len(g.nodes))
	components := 0
	for id := range g.nodes {
		if _, seen := visited[id]; seen {
			continue
		}
		components++
		for v := range g.weakReachLocked(id) {
			visited[v] = struct{}{}
		}
	}
	return components
}

// Density returns the ratio of stored edges to the maximum possible in
// a simple graph on the same nodes: E/(n·(n−1)) directed, 2E/(n·(n−1))
// undirected. Stores with fewer than two nodes have density zero.
func (g *Graph[A]) Density() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodes)
	if n < 2 {
		return 0
	}
	d := float64(len(g.edges)) / (float64(n) * float64(n-1))
	if !g.directed {
		d *= 2
	}
	return d
}

// Diameter returns the largest eccentricity over all nodes, in hops.
// ok is false when the store is empty or some pair is unreachable.
func (g *Graph[A]) Diameter() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return 0, false
	}
	diameter := 0
	for id := range g.nodes {
		ecc, ok := g.eccentricityLocked(id)
		if !ok {
			return 0, false
		}
		if ecc > diameter {
			diameter = ecc
		}
	}
	return float64(diameter), true
}

// Radius returns the smallest eccentricity over all nodes, in hops.
// ok is false when the store is empty or some pair is unreachable.
func (g *Graph[A]) Radius() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return 0, false
	}
	radius := math.MaxInt
	for id := range g.nodes {
		ecc, ok := g.eccentricityLocked(id)
		if !ok {
			return 0, false
		}
		if ecc < radius {
			radius = ecc
		}
	}
	return float64(radius), true
}

// AveragePathLength returns the mean hop distance over all ordered
// pairs of distinct nodes. ok is false when the store has fewer than
// two nodes or any pair is unreachable.
func (g *Graph[A]) AveragePathLength() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) < 2 {
		return 0, false
	}
	total, pairs := 0, 0
	for id := range g.nodes {
		dist := g.hopDistancesLocked(id)
		if len(dist) < len(g.nodes) {
			return 0, false
		}
		for _, d := range dist {
			if d > 0 {
				total += d
				pairs++
			}
		}
	}
	return float64(total) / float64(pairs), true
}

// ClusteringOf returns the local clustering coefficient of id: the
// fraction of pairs of its distinct neighbors that are themselves
// adjacent. Nodes with fewer than two neighbors cluster at zero.
func (g *Graph[A]) ClusteringOf(id NodeID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, nodeNotFound(id)
	}
	return g.clusteringLocked(id), nil
}

// AverageClustering returns the mean local clustering coefficient over
// all nodes. An empty store averages to zero.
func (g *Graph[A]) AverageClustering() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return 0
	}
	sum := 0.0
	for id := range g.nodes {
		sum += g.clusteringLocked(id)
	}
	return sum / float64(len(g.nodes))
}

// TrianglesOf returns the number of triangles through id on the simple
// undirected view.
func (g *Graph[A]) TrianglesOf(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, nodeNotFound(id)
	}
	return g.trianglesLocked(id), nil
}

// Transitivity returns the global clustering coefficient: three times
// the triangle count divided by the number of connected triples. Stores
// without a connected triple transit at zero.
func (g *Graph[A]) Transitivity() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	closed, triples := 0, 0
	for id := range g.nodes {
		closed += g.trianglesLocked(id) // sums to 3× the triangle count
		k := len(g.undirectedNeighborsLocked(id))
		triples += k * (k - 1) / 2
	}
	if triples == 0 {
		return 0
	}
	return float64(closed) / float64(triples)
}

// Assortativity returns the Pearson correlation of the simple degrees
// at the two ends of every edge, evaluated on the undirected view with
// self-loops skipped. ok is false when the store has no qualifying edge
// or the degrees carry no variance.
func (g *Graph[A]) Assortativity() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	degree := make(map[NodeID]float64, len(g.nodes))
	for id := range g.nodes {
		degree[id] = float64(len(g.undirectedNeighborsLocked(id)))
	}

	// Each edge contributes both endpoint orders, which keeps the
	// estimator symmetric on undirected stores.
	var m, sj, sjk, sj2 float64
	for _, e := range g.edges {
		if e.Src == e.Dst {
			continue
		}
		j, k := degree[e.Src], degree[e.Dst]
		m += 2
		sj += j + k
		sjk += 2 * j * k
		sj2 += j*j + k*k
	}
	if m == 0 {
		return 0, false
	}

	mean := sj / m
	numerator := sjk/m - mean*mean
	denominator := sj2/m - mean*mean
	if denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}

// undirectedNeighborsLocked returns the distinct neighbors of id on the
// simple undirected view, excluding id itself. Caller holds a lock.
func (g *Graph[A]) undirectedNeighborsLocked(id NodeID) map[NodeID]struct{} {
	out := make(map[NodeID]struct{}, len(g.adj[id]))
	for v := range g.adj[id] {
		if v != id {
			out[v] = struct{}{}
		}
	}
	if g.directed {
		for v := range g.radj[id] {
			if v != id {
				out[v] = struct{}{}
			}
		}
	}
	return out
}

// weakReachLocked returns every node reachable from start ignoring edge
// direction, start included. Caller holds a lock.
func (g *Graph[A]) weakReachLocked(start NodeID) map[NodeID]struct{} {
	visited := map[NodeID]struct{}{start: {}}
	stack := []NodeID{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := range g.undirectedNeighborsLocked(u) {
			if _, seen := visited[v]; !seen {
				visited[v] = struct{}{}
				stack = append(stack, v)
			}
		}
	}
	return visited
}

// hopDistancesLocked returns BFS hop counts from start, following edge
// direction on directed stores. Caller holds a lock.
func (g *Graph[A]) hopDistancesLocked(start NodeID) map[NodeID]int {
	dist := map[NodeID]int{start: 0}
	queue := []NodeID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range g.adj[u] {
			if _, seen := dist[v]; !seen {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// eccentricityLocked returns the largest hop distance from id, with
// ok=false when some node is unreachable. Caller holds a lock.
func (g *Graph[A]) eccentricityLocked(id NodeID) (int, bool) {
	dist := g.hopDistancesLocked(id)
	if len(dist) < len(g.nodes) {
		return 0, false
	}
	ecc := 0
	for _, d := range dist {
		if d > ecc {
			ecc = d
		}
	}
	return ecc, true
}

// clusteringLocked computes the local clustering coefficient of id.
// Caller holds a lock.
func (g *Graph[A]) clusteringLocked(id NodeID) float64 {
	k := len(g.undirectedNeighborsLocked(id))
	if k < 2 {
		return 0
	}
	return 2 * float64(g.trianglesLocked(id)) / (float64(k) * float64(k-1))
}

// trianglesLocked counts triangles through id on the simple undirected
// view. Caller holds a lock.
func (g *Graph[A]) trianglesLocked(id NodeID) int {
	neighbors := g.undirectedNeighborsLocked(id)
	count := 0
	for u := range neighbors {
		adjacent := g.undirectedNeighborsLocked(u)
		for v := range neighbors {
			if u < v {
				if _, ok := adjacent[v]; ok {
					count++
				}
			}
		}
	}
	return count
}
