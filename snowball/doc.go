// SPDX-License-Identifier: MIT
//
// Package snowball performs snowball sampling over a core.Graph: wave-synchronous,
// multi-seed breadth-first expansion that ignores edge direction and records the
// wave ("zone") at which every node first enters the sample.
//
// What
//
//   - Seeds get zone 0.
//   - Wave w (1 ≤ w ≤ numWaves) reaches every predecessor or successor of the
//     current frontier that has no zone yet and tags it with zone w.
//   - The nodes found in wave w become the frontier of wave w+1; an empty
//     frontier ends expansion early without error.
//   - The result is a Sample: seeds, sampled nodes in discovery order, a
//     zone.Tracker, and the number of waves executed.
//
// Zones equal the undirected shortest-path distance from the seed set, capped
// at numWaves; nodes farther away, or in components without a seed, are not
// sampled.
//
// Determinism
//
//	core.Graph.AdjacentIDs returns neighbors sorted ascending, and frontier
//	nodes are expanded in discovery order, so Sample.Nodes is reproducible for
//	a given graph and seed order.
//
// Complexity (V_s, E_s = nodes/edges touched by the sample)
//
//   - Time:   O(V_s + E_s · log d)
//   - Memory: O(V_s)
//
// Usage
//
//	sample, err := snowball.Expand(g, []int{12, 40}, 2,
//	    snowball.WithContext(ctx),
//	    snowball.WithOnWave(func(w int, found []int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrOptionViolation   if an Option is invalid (e.g. nil context).
//   - ErrInvalidParameter  if numWaves < 0 or the seed set is empty.
//   - ErrInvalidSeed       if a seed is not a vertex of the graph.
//   - ErrOperationTimeout  if the context deadline passes mid-expansion
//     (plain cancellation returns the wrapped context.Canceled).
package snowball
