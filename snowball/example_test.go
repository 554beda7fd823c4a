package snowball_test

import (
	"fmt"

	"github.com/katalvlaran/snowball/builder"
	"github.com/katalvlaran/snowball/core"
	"github.com/katalvlaran/snowball/snowball"
)

// ExampleExpand samples two waves out of a 3×3 undirected grid from its corner.
// Zones follow Manhattan distance from the seed; the far corner stays outside.
func ExampleExpand() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithFirstID(0)}, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := snowball.Expand(g, []int{0}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(s.Nodes)
	fmt.Println(s.Zones.Counts())
	// Output:
	// [0 1 3 2 4 6]
	// [1 2 3]
}

// ExampleExpand_directed shows that arc direction is ignored while expanding:
// from the middle of 1→2→3→4→5 one wave reaches both 2 and 4.
func ExampleExpand_directed() {
	g := core.NewGraph(core.WithDirected(true))
	for i := 1; i < 5; i++ {
		_, _ = g.AddEdge(i, i+1)
	}

	s, _ := snowball.Expand(g, []int{3}, 1)
	for _, r := range s.Zones.Records() {
		fmt.Printf("%d:%d ", r.Node, r.Zone)
	}
	fmt.Println()
	// Output:
	// 3:0 2:1 4:1
}
