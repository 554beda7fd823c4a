// SPDX-License-Identifier: MIT

package snowball

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/snowball/core"
	"github.com/katalvlaran/snowball/zone"
)

// walker encapsulates mutable expansion state for one sample.
type walker struct {
	graph    *core.Graph
	opts     Options
	ctx      context.Context
	frontier []int
	sample   *Sample
}

// Expand runs numWaves waves of snowball expansion on g from seeds.
//
// Wave w collects every undirected neighbor of the current frontier that has
// no zone yet, assigns it zone w, and makes those nodes the next frontier.
// Expansion stops early once a wave discovers nothing.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrInvalidParameter (negative
// numWaves, empty seed set), ErrInvalidSeed (seed missing from g), or
// ErrOperationTimeout / the context error when the context ends.
func Expand(g *core.Graph, seeds []int, numWaves int, opts ...Option) (*Sample, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if numWaves < 0 {
		return nil, fmt.Errorf("%w: num_waves=%d is negative", ErrInvalidParameter, numWaves)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: empty seed set", ErrInvalidParameter)
	}
	for _, s := range seeds {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSeed, s)
		}
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		sample: &Sample{
			Seeds: append([]int(nil), seeds...),
			Zones: zone.New(len(seeds)),
		},
	}
	w.plant(seeds)

	return w.sample, w.loop(numWaves)
}

// plant records the seeds at zone 0 and makes them the first frontier.
// Duplicate seeds collapse onto their first occurrence.
func (w *walker) plant(seeds []int) {
	w.sample.Zones.Initialize(seeds)
	for _, r := range w.sample.Zones.Records() {
		w.sample.Nodes = append(w.sample.Nodes, r.Node)
	}
	w.frontier = append([]int(nil), w.sample.Nodes...)
}

// loop runs waves until the budget is spent, the frontier empties, or the
// context ends.
func (w *walker) loop(numWaves int) error {
	for wave := 1; wave <= numWaves && len(w.frontier) > 0; wave++ {
		next, err := w.expand(wave)
		if err != nil {
			return err
		}
		w.sample.WavesRun = wave
		w.opts.OnWave(wave, next)
		w.frontier = next
	}

	return nil
}

// expand discovers the unseen undirected neighbors of the frontier and tags
// them with zone wave. Frontier nodes are processed in discovery order and
// neighbors in ascending ID order, so the result is deterministic.
func (w *walker) expand(wave int) ([]int, error) {
	var next []int
	for _, u := range w.frontier {
		if err := w.checkContext(wave); err != nil {
			return nil, err
		}
		nbrs, err := w.graph.AdjacentIDs(u)
		if err != nil {
			return nil, fmt.Errorf("snowball: neighbors of %d: %w", u, err)
		}
		for _, v := range nbrs {
			if w.sample.Zones.MarkIfUnseen(v, wave) {
				next = append(next, v)
				w.sample.Nodes = append(w.sample.Nodes, v)
				w.opts.OnDiscover(v, wave)
			}
		}
	}

	return next, nil
}

// checkContext maps a finished context onto the package error kinds.
func (w *walker) checkContext(wave int) error {
	select {
	case <-w.ctx.Done():
		err := w.ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: wave %d: %w", ErrOperationTimeout, wave, err)
		}
		return fmt.Errorf("snowball: wave %d: %w", wave, err)
	default:
		return nil
	}
}
