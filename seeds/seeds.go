// SPDX-License-Identifier: MIT
//
// Package seeds draws the seed sets of a sampling run.
//
// All seeds of a run come from one draw without replacement, so seed sets are
// pairwise disjoint and no node appears twice. Randomness comes only from the
// *rand.Rand passed in; NewRand is the single construction point, which keeps a
// run reproducible from its recorded seed.
package seeds

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/snowball/snowball"
)

// ErrInvalidParameter is the run-level invalid-parameter kind.
var ErrInvalidParameter = snowball.ErrInvalidParameter

// NewRand returns a PCG-backed generator seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Draw picks numSamples*numSeeds distinct nodes from pool and splits them, in
// draw order, into numSamples sets of numSeeds.
//
// pool is not modified; duplicate pool entries count once.
//
// Complexity: O(|pool| + numSamples·numSeeds).
func Draw(rng *rand.Rand, pool []int, numSamples, numSeeds int) ([][]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}
	if numSamples < 1 || numSeeds < 1 {
		return nil, fmt.Errorf("%w: num_samples=%d num_seeds=%d must be at least 1",
			ErrInvalidParameter, numSamples, numSeeds)
	}

	candidates := distinct(pool)
	total := numSamples * numSeeds
	if total/numSeeds != numSamples || total > len(candidates) {
		return nil, fmt.Errorf("%w: %d samples × %d seeds needs more than the %d available nodes",
			ErrInvalidParameter, numSamples, numSeeds, len(candidates))
	}

	// partial Fisher–Yates: the first total slots become the draw
	for i := 0; i < total; i++ {
		j := i + rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	sets := make([][]int, numSamples)
	for s := range sets {
		sets[s] = candidates[s*numSeeds : (s+1)*numSeeds : (s+1)*numSeeds]
	}

	return sets, nil
}

// distinct copies pool, dropping repeats and keeping first occurrences.
func distinct(pool []int) []int {
	seen := make(map[int]struct{}, len(pool))
	out := make([]int, 0, len(pool))
	for _, v := range pool {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
