// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors, AdjacentIDs, OutEdges, Degree).
// Determinism:
//   - All ID slices are unique and sorted ascending.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Successors returns the unique IDs v such that an edge id→v exists, sorted ascending.
// For undirected graphs this is the full neighborhood of id.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Successors(id int) ([]int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.adjacencyList[id], nil), nil
}

// Predecessors returns the unique IDs u such that an edge u→id exists, sorted ascending.
// For undirected graphs this equals Successors(id).
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Predecessors(id int) ([]int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	if !g.directed {
		return sortedKeys(g.adjacencyList[id], nil), nil
	}

	return sortedKeys(g.reverseList[id], nil), nil
}

// AdjacentIDs returns the unique IDs joined to id by an edge in either direction,
// sorted ascending. This is the neighborhood of id in the undirected version of
// the graph, which is what snowball expansion walks.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), where d is in-degree plus out-degree.
func (g *Graph) AdjacentIDs(id int) ([]int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	if !g.directed {
		return sortedKeys(g.adjacencyList[id], nil), nil
	}

	return sortedKeys(g.adjacencyList[id], g.reverseList[id]), nil
}

// OutEdges returns the edges leaving id, sorted by Edge.ID. For undirected
// graphs every incident edge leaves id, so an edge u–v is listed for both u
// and v; a self-loop is listed once.
// The returned pointers are live catalog entries; treat them as read-only.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), independent of the size of the graph.
func (g *Graph) OutEdges(id int) ([]*Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Degree returns the in- and out-degree of id counting parallel edges.
// For undirected graphs in == out == number of incident edges, a self-loop
// counting once.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d).
func (g *Graph) Degree(id int) (in, out int, err error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	for _, bucket := range g.adjacencyList[id] {
		out += len(bucket)
	}
	if !g.directed {
		return out, out, nil
	}
	for _, bucket := range g.reverseList[id] {
		in += len(bucket)
	}

	return in, out, nil
}

// sortedKeys returns the union of the key sets of a and b, sorted ascending.
func sortedKeys(a, b map[int]map[uint64]struct{}) []int {
	ids := make([]int, 0, len(a)+len(b))
	for v := range a {
		ids = append(ids, v)
	}
	for v := range b {
		if _, dup := a[v]; !dup {
			ids = append(ids, v)
		}
	}
	sort.Ints(ids)

	return ids
}
