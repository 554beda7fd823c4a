package snowball_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snowball/core"
	"github.com/katalvlaran/snowball/snowball"
)

// buildChain creates the chain 1-2-3-4-5, directed 1→2→3→4→5 when directed is set.
func buildChain(t *testing.T, directed bool) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for i := 1; i < 5; i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}

	return g
}

func TestExpand_Errors(t *testing.T) {
	_, err := snowball.Expand(nil, []int{1}, 1)
	assert.ErrorIs(t, err, snowball.ErrGraphNil)

	g := buildChain(t, false)

	_, err = snowball.Expand(g, []int{1}, -1)
	assert.ErrorIs(t, err, snowball.ErrInvalidParameter)

	_, err = snowball.Expand(g, nil, 1)
	assert.ErrorIs(t, err, snowball.ErrInvalidParameter)

	_, err = snowball.Expand(g, []int{1, 99}, 1)
	assert.ErrorIs(t, err, snowball.ErrInvalidSeed)

	//nolint:staticcheck // nil context is the case under test
	_, err = snowball.Expand(g, []int{1}, 1, snowball.WithContext(nil))
	assert.ErrorIs(t, err, snowball.ErrOptionViolation)
}

func TestExpand_UndirectedChain(t *testing.T) {
	g := buildChain(t, false)

	s, err := snowball.Expand(g, []int{1}, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, s.Nodes)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 2}, s.Zones.Map())
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(5))
	assert.Equal(t, 2, s.WavesRun)
}

func TestExpand_DirectedIgnoresOrientation(t *testing.T) {
	g := buildChain(t, true)

	s, err := snowball.Expand(g, []int{3}, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 4}, s.Nodes)
	assert.Equal(t, map[int]int{3: 0, 2: 1, 4: 1}, s.Zones.Map())
}

func TestExpand_ZeroWaves(t *testing.T) {
	g := buildChain(t, false)

	s, err := snowball.Expand(g, []int{4, 2}, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 2}, s.Nodes)
	assert.Equal(t, map[int]int{4: 0, 2: 0}, s.Zones.Map())
	assert.Equal(t, 0, s.WavesRun)
}

func TestExpand_EarlyTermination(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(10, 11) // separate component

	s, err := snowball.Expand(g, []int{1}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Nodes)
	// wave 1 finds 2, wave 2 finds nothing and empties the frontier
	assert.Equal(t, 2, s.WavesRun)
}

func TestExpand_IsolatedSeed(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(7))

	s, err := snowball.Expand(g, []int{7}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, s.Nodes)
	assert.Equal(t, 1, s.WavesRun)
}

func TestExpand_MultiSeedAndDuplicates(t *testing.T) {
	g := buildChain(t, false)

	s, err := snowball.Expand(g, []int{1, 5, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 1}, s.Seeds)
	assert.Equal(t, []int{1, 5, 2, 4}, s.Nodes)
	assert.Equal(t, map[int]int{1: 0, 5: 0, 2: 1, 4: 1}, s.Zones.Map())

	// Node 3 is reachable from both 2 and 4 but recorded once.
	s, err = snowball.Expand(g, []int{1, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
	z, ok := s.Zone(3)
	require.True(t, ok)
	assert.Equal(t, 2, z)
}

func TestExpand_SelfLoopsAndParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge(1, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(1, 2)

	s, err := snowball.Expand(g, []int{1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Nodes)
}

func TestExpand_Hooks(t *testing.T) {
	g := buildChain(t, false)

	var discovered [][2]int
	var waves []int
	_, err := snowball.Expand(g, []int{3}, 2,
		snowball.WithOnDiscover(func(node, z int) { discovered = append(discovered, [2]int{node, z}) }),
		snowball.WithOnWave(func(w int, found []int) { waves = append(waves, w*100+len(found)) }),
	)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{2, 1}, {4, 1}, {1, 2}, {5, 2}}, discovered)
	assert.Equal(t, []int{102, 202}, waves)
}

func TestExpand_Cancellation(t *testing.T) {
	g := buildChain(t, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := snowball.Expand(g, []int{1}, 3, snowball.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, snowball.ErrOperationTimeout)

	dctx, dcancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer dcancel()
	_, err = snowball.Expand(g, []int{1}, 3, snowball.WithContext(dctx))
	assert.ErrorIs(t, err, snowball.ErrOperationTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// With no waves requested the context is never consulted.
	s, err := snowball.Expand(g, []int{1}, 0, snowball.WithContext(dctx))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

// TestExpand_ZonesEqualCappedDistance checks on random graphs that zones are
// exactly the multi-source undirected BFS distance, capped at the wave budget.
func TestExpand_ZonesEqualCappedDistance(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 25; trial++ {
		n := 30 + rng.IntN(30)
		directed := trial%2 == 0
		g := core.NewGraph(core.WithDirected(directed), core.WithMultiEdges(), core.WithLoops())
		for v := 0; v < n; v++ {
			require.NoError(t, g.AddVertex(v))
		}
		for e := 0; e < n; e++ {
			_, err := g.AddEdge(rng.IntN(n), rng.IntN(n))
			require.NoError(t, err)
		}
		seeds := []int{rng.IntN(n), rng.IntN(n)}
		waves := rng.IntN(4)

		s, err := snowball.Expand(g, seeds, waves)
		require.NoError(t, err)

		want := referenceDistances(t, g, seeds)
		for v := 0; v < n; v++ {
			d, reachable := want[v]
			z, sampled := s.Zone(v)
			if reachable && d <= waves {
				require.True(t, sampled, "trial %d: node %d at distance %d must be sampled", trial, v, d)
				require.Equal(t, d, z, "trial %d: zone of node %d", trial, v)
			} else {
				require.False(t, sampled, "trial %d: node %d must not be sampled", trial, v)
			}
		}
		require.Equal(t, s.Zones.Len(), s.Len())
	}
}

// referenceDistances is a plain queue-based multi-source BFS over AdjacentIDs.
func referenceDistances(t *testing.T, g *core.Graph, seeds []int) map[int]int {
	t.Helper()
	dist := make(map[int]int)
	var queue []int
	for _, s := range seeds {
		if _, ok := dist[s]; !ok {
			dist[s] = 0
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		adj, err := g.AdjacentIDs(u)
		require.NoError(t, err)
		for _, v := range adj {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}
