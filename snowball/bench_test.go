package snowball_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/snowball/core"
	"github.com/katalvlaran/snowball/snowball"
)

// BenchmarkExpand_Chain expands three waves from the head of a long chain.
func BenchmarkExpand_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = snowball.Expand(g, []int{0}, 3)
	}
}

// BenchmarkExpand_Sparse runs a 2-wave, 10-seed sample on a random sparse
// directed graph with average degree ~8.
func BenchmarkExpand_Sparse(b *testing.B) {
	const V, E = 5000, 20000
	rng := rand.New(rand.NewPCG(1, 2))
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for v := 0; v < V; v++ {
		_ = g.AddVertex(v)
	}
	for e := 0; e < E; e++ {
		_, _ = g.AddEdge(rng.IntN(V), rng.IntN(V))
	}
	seeds := make([]int, 10)
	for i := range seeds {
		seeds[i] = i * (V / 10)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = snowball.Expand(g, seeds, 2)
	}
}
