// SPDX-License-Identifier: MIT
//
// Package dfs partitions a core.Graph into weakly connected components with an
// iterative depth-first search over the undirected view of the graph.
//
// Components tell how many disjoint regions a snowball run can reach: a sample
// never leaves the components of its seeds.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V) for the visited set and the explicit stack.
//
// Errors:
//
//   - ErrGraphNil if g is nil.
package dfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/snowball/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Components returns the weakly connected components of g. Each component is
// sorted ascending; components are ordered by their smallest vertex ID.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	visited := make(map[int]bool, len(vertices))
	var (
		comps [][]int
		stack []int
	)
	for _, root := range vertices {
		if visited[root] {
			continue
		}
		visited[root] = true
		comp := []int{root}
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nbrs, err := g.AdjacentIDs(u)
			if err != nil {
				return nil, fmt.Errorf("dfs: neighbors of %d: %w", u, err)
			}
			for _, v := range nbrs {
				if !visited[v] {
					visited[v] = true
					comp = append(comp, v)
					stack = append(stack, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// Largest returns the size of the biggest component, or 0 when comps is empty.
func Largest(comps [][]int) int {
	best := 0
	for _, c := range comps {
		if len(c) > best {
			best = len(c)
		}
	}

	return best
}
