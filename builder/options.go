// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: builder configuration and its functional options.
// Option constructors panic on meaningless input; constructors never panic.

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/snowball/seeds"
)

// defaultFirstID is the ID of the first generated vertex (Pajek numbering).
const defaultFirstID = 1

// builderConfig is passed by value to constructors.
type builderConfig struct {
	firstID int
	rng     *rand.Rand // nil means no randomness available
}

// id maps a constructor-local index to a vertex ID.
func (c builderConfig) id(i int) int { return c.firstID + i }

// BuilderOption customizes the builderConfig before construction begins.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{firstID: defaultFirstID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFirstID sets the ID of index 0. Panics on a negative ID.
func WithFirstID(id int) BuilderOption {
	if id < 0 {
		panic("builder: WithFirstID(id<0)")
	}
	return func(c *builderConfig) { c.firstID = id }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a reproducible RNG seeded with seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = seeds.NewRand(seed) }
}
