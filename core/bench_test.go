package core_test

import (
	"testing"

	"github.com/katalvlaran/snowball/core"
)

// BenchmarkAddEdge measures edge insertion on a growing directed chain.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(i, i+1)
	}
}

// BenchmarkAdjacentIDs measures undirected neighborhood lookup on a star hub.
func BenchmarkAdjacentIDs(b *testing.B) {
	const leaves = 1000
	g := core.NewGraph(core.WithDirected(true))
	for i := 1; i <= leaves; i++ {
		if i%2 == 0 {
			_, _ = g.AddEdge(0, i)
		} else {
			_, _ = g.AddEdge(i, 0)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AdjacentIDs(0)
	}
}
