// SPDX-License-Identifier: MIT

package pajek

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/snowball/core"
	"github.com/katalvlaran/snowball/subgraph"
)

// edgeKeyword returns the section keyword matching g's directedness.
func edgeKeyword(g *core.Graph) string {
	if g.Directed() {
		return "*arcs"
	}

	return "*edges"
}

// WriteSubgraph writes res with nodes renumbered to their 1-based position in
// res.Order:
//
//	*vertices N
//	*arcs            (or *edges when undirected)
//	i j              one line per edge, in edge order
func WriteSubgraph(w io.Writer, res *subgraph.Result) error {
	bw := bufio.NewWriter(w)
	pos := res.Index()

	fmt.Fprintf(bw, "*vertices %d\n", len(res.Order))
	fmt.Fprintln(bw, edgeKeyword(res.Graph))
	for _, e := range res.Graph.Edges() {
		from, okFrom := pos[e.From]
		to, okTo := pos[e.To]
		if !okFrom || !okTo {
			return fmt.Errorf("pajek: edge %d->%d leaves the node order", e.From, e.To)
		}
		fmt.Fprintf(bw, "%d %d\n", from+1, to+1)
	}

	return bw.Flush()
}

// WriteNetwork writes g with its own node IDs. Every vertex is listed so that
// isolated vertices and non-contiguous IDs survive a Read round trip.
func WriteNetwork(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	vs := g.Vertices()

	fmt.Fprintf(bw, "*vertices %d\n", len(vs))
	for _, v := range vs {
		fmt.Fprintf(bw, "%d\n", v)
	}
	fmt.Fprintln(bw, edgeKeyword(g))
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
	}

	return bw.Flush()
}
