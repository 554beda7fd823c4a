// SPDX-License-Identifier: MIT

// Package snowball is a toolkit for repeated snowball sampling over networks.
//
// A run loads a Pajek network, draws disjoint seed sets from its vertices,
// grows each set for a fixed number of waves across edges of either
// direction, and writes every resulting sample to disk together with the
// zone (discovery wave) of each sampled node.
//
// Packages
//
//	core/       thread-safe in-memory graph with int vertex IDs
//	zone/       first-discovery zone bookkeeping
//	snowball/   wave-synchronous multi-seed expansion (Expand)
//	subgraph/   induced subgraph on a sampled node set
//	seeds/      reproducible PRNG and disjoint seed-set draws
//	pajek/      Pajek .net reader and writer
//	output/     atomic per-sample files and the sampledesc.txt manifest
//	sampler/    concurrent orchestration of a whole run
//	metrics/    Prometheus counters and histograms for runs
//	builder/    synthetic graph constructors (path, cycle, star, grid, ...)
//	dfs/        weakly connected components
//	cmd/snowball the command-line front end
//
// A square of four vertices, sampled from A for one wave:
//
//	A───B        zone(A)=0
//	│   │        zone(B)=1, zone(C)=1
//	C───D        D is not sampled
//
// Install the command with:
//
//	go install github.com/katalvlaran/snowball/cmd/snowball@latest
package snowball
