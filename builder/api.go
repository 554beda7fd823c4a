// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/snowball/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching the graph
// and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order. The first
// constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts IDs for indices 0..n-1.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.id(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w: %w", method, cfg.id(i), ErrConstructFailed, err)
		}
	}

	return nil
}

// addEdge inserts cfg.id(i)→cfg.id(j).
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	if _, err := g.AddEdge(cfg.id(i), cfg.id(j)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w: %w", method, cfg.id(i), cfg.id(j), ErrConstructFailed, err)
	}

	return nil
}
