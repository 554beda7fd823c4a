// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, sentinel errors and the Sample result for Expand.

package snowball

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/snowball/zone"
)

// Sentinel errors for snowball expansion. They double as the run-level error
// kinds, so callers anywhere in the pipeline can branch with errors.Is.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("snowball: graph is nil")

	// ErrInvalidSeed is returned when a seed ID is absent from the graph.
	ErrInvalidSeed = errors.New("snowball: seed not in graph")

	// ErrInvalidParameter is returned for negative wave budgets, empty seed
	// sets, and impossible seed requests.
	ErrInvalidParameter = errors.New("snowball: invalid parameter")

	// ErrOperationTimeout is returned when the expansion context deadline passes.
	ErrOperationTimeout = errors.New("snowball: operation timed out")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("snowball: invalid option supplied")
)

// Option configures expansion behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Expand is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize expansion.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnDiscover is called once for every node reached in waves 1..n,
	// with the zone it was assigned.
	OnDiscover func(node, zone int)

	// OnWave is called after each completed wave with the nodes it discovered
	// (possibly empty on the final wave).
	OnWave func(wave int, discovered []int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnDiscover: func(int, int) {},
		OnWave:     func(int, []int) {},
	}
}

// WithContext sets a custom context for cancellation and deadlines.
// A nil context is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnDiscover registers a callback run when a node is first discovered.
func WithOnDiscover(fn func(node, zone int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnWave registers a callback run at the end of every wave.
func WithOnWave(fn func(wave int, discovered []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWave = fn
		}
	}
}

// Sample is the outcome of one snowball expansion:
//   - Seeds: the seed set as given.
//   - Nodes: every sampled node once, in discovery order (seeds first).
//   - Zones: node → first-discovery wave.
//   - WavesRun: waves actually executed before the frontier emptied.
type Sample struct {
	Seeds    []int
	Nodes    []int
	Zones    *zone.Tracker
	WavesRun int
}

// Len returns the number of sampled nodes.
func (s *Sample) Len() int { return len(s.Nodes) }

// Contains reports whether node was sampled.
func (s *Sample) Contains(node int) bool { return s.Zones.Contains(node) }

// Zone returns the zone of node and whether it was sampled.
func (s *Sample) Zone(node int) (int, bool) { return s.Zones.Zone(node) }
