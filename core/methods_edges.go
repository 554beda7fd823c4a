// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge catalog queries.
// Determinism:
//   - Edges() is sorted by Edge.ID asc, i.e. insertion order.
// Concurrency:
//   - AddEdge ensures endpoints under muVert, then mutates under muEdgeAdj.

package core

import (
	"sort"
	"sync/atomic"
)

// AddEdge creates a new edge from 'from' to 'to' and returns its unique Edge.ID.
// Missing endpoints are added first. For undirected graphs the adjacency is
// mirrored so both endpoints see each other; for directed graphs the reverse
// index records predecessors.
//
// Returns ErrNegativeVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) (uint64, error) {
	// 1) Input validation
	if from < 0 || to < 0 {
		return 0, ErrNegativeVertexID
	}
	// 2) Loop constraint
	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	// 3) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return 0, err
	}
	if err := g.AddVertex(to); err != nil {
		return 0, err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 4) Multi-edge existence check; the mirror makes this symmetric for undirected graphs
	if !g.allowMulti {
		if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
			return 0, ErrMultiEdgeNotAllowed
		}
	}

	eid := atomic.AddUint64(&g.nextEdgeID, 1)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}

	link(g.adjacencyList, from, to, eid)
	switch {
	case g.directed:
		link(g.reverseList, to, from, eid)
	case from != to:
		// loops skip the mirror
		link(g.adjacencyList, to, from, eid)
	}

	return eid, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// In undirected graphs HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// EdgeMultiplicity returns the number of parallel edges from 'from' to 'to'.
// Complexity: O(1).
func (g *Graph) EdgeMultiplicity(from, to int) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to])
}

// Edges returns all edges sorted by their ID.
// The returned pointers are live catalog entries; treat them as read-only.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges. O(1).
// Undirected edges are counted once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// link records eid under index[a][b], creating nested maps lazily.
func link(index map[int]map[int]map[uint64]struct{}, a, b int, eid uint64) {
	inner, ok := index[a]
	if !ok {
		inner = make(map[int]map[uint64]struct{})
		index[a] = inner
	}
	bucket, ok := inner[b]
	if !ok {
		bucket = make(map[uint64]struct{})
		inner[b] = bucket
	}
	bucket[eid] = struct{}{}
}
