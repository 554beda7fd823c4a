// SPDX-License-Identifier: MIT
//
// Package builder generates deterministic synthetic networks for tests,
// benchmarks and the `snowball generate` command.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves the builder configuration from functional options, and applies the
// constructors in order. Constructors share one ID range, so composing them
// overlays their edges on the same vertices (enable core.WithMultiEdges when
// the overlays repeat an edge).
//
// Vertex IDs are integers starting at WithFirstID (default 1, matching Pajek
// numbering); each constructor numbers its own vertices from that base. Use
// WithSeed or WithRand to freeze stochastic constructors.
//
// Errors (check with errors.Is):
//
//	ErrTooFewVertices     - size parameter below the constructor's minimum.
//	ErrInvalidProbability - probability outside [0,1].
//	ErrNeedRandSource     - stochastic constructor without an RNG.
//	ErrConstructFailed    - nil constructor or a core mutation failed.
package builder
