// SPDX-License-Identifier: MIT
//
// Package subgraph extracts the subgraph induced by a set of sampled nodes and
// fixes the node ordering that every per-sample output file refers to.
//
// The ordering is captured once, in Result.Order, and is the source graph's
// natural vertex order (ascending ID) restricted to the sample. Edges keep their
// original direction, multiplicity and self-loops, and appear in the source
// graph's edge order.
package subgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/snowball/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("subgraph: graph is nil")

	// ErrNodeNotFound is returned when a requested node is not in the source graph.
	ErrNodeNotFound = errors.New("subgraph: node not in graph")
)

// Result is an induced subgraph together with its fixed node order.
type Result struct {
	// Graph has the same directedness, loop and multi-edge policy as the source.
	Graph *core.Graph

	// Order lists every sampled node exactly once. Position k in Order is the
	// node's 0-based position in every file written for this sample.
	Order []int
}

// Induce builds the subgraph of g induced by nodes.
//
// Duplicate entries in nodes are ignored. An edge (u,v) of g is kept iff both
// endpoints are in nodes. The returned Order is ascending by node ID.
//
// Only the sampled nodes' own edges are visited, so the cost does not depend
// on the size of g.
//
// Complexity: O(V_s·log V_s + E_s·log E_s), E_s = edges leaving sampled nodes.
func Induce(g *core.Graph, nodes []int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	keep := make(map[int]struct{}, len(nodes))
	order := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if !g.HasVertex(n) {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, n)
		}
		if _, dup := keep[n]; !dup {
			keep[n] = struct{}{}
			order = append(order, n)
		}
	}
	sort.Ints(order)

	// undirected edges show up under both endpoints; seen keeps one copy
	seen := make(map[uint64]struct{})
	var kept []*core.Edge
	for _, u := range order {
		out, err := g.OutEdges(u)
		if err != nil {
			return nil, fmt.Errorf("subgraph: edges of %d: %w", u, err)
		}
		for _, e := range out {
			if _, ok := keep[e.From]; !ok {
				continue
			}
			if _, ok := keep[e.To]; !ok {
				continue
			}
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			kept = append(kept, e)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].ID < kept[j].ID })

	sub := core.NewGraph(g.Options()...)
	for _, v := range order {
		if err := sub.AddVertex(v); err != nil {
			return nil, fmt.Errorf("subgraph: add vertex %d: %w", v, err)
		}
	}
	for _, e := range kept {
		if _, err := sub.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("subgraph: copy edge %d->%d: %w", e.From, e.To, err)
		}
	}

	return &Result{Graph: sub, Order: order}, nil
}

// Len returns the number of nodes in the subgraph.
func (r *Result) Len() int { return len(r.Order) }

// Index returns node → 0-based position in Order.
func (r *Result) Index() map[int]int {
	idx := make(map[int]int, len(r.Order))
	for i, v := range r.Order {
		idx[v] = i
	}

	return idx
}
