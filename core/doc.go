// SPDX-License-Identifier: MIT
//
// Package core provides a thread-safe in-memory Graph with non-negative
// integer vertex IDs, sized for loading a large network once and reading it
// from many sampling workers.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - A reverse index reverseList[to][from][edgeID] for directed graphs, so
//     predecessors are as cheap as successors
//   - Monotonic Edge.ID generation; Edges() in ID order is insertion order
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertices
//	AddVertex(id int) error              // O(1)
//	HasVertex(id int) bool               // O(1)
//	Vertices() []int                     // O(V·log V), ascending
//	VertexCount() int                    // O(1)
//
//	// Edges
//	AddEdge(from, to int) (uint64, error) // O(1)†
//	HasEdge(from, to int) bool            // O(1)
//	EdgeMultiplicity(from, to int) int    // O(1)
//	Edges() []*Edge                       // O(E·log E), insertion order
//	EdgeCount() int                       // O(1)
//
//	// Neighborhoods
//	Successors(id int) ([]int, error)     // out-neighbors, ascending
//	Predecessors(id int) ([]int, error)   // in-neighbors, ascending
//	AdjacentIDs(id int) ([]int, error)    // both directions, ascending
//	Degree(id int) (in, out int, err error)
//
//	// Configuration
//	Directed(), Looped(), Multigraph() bool
//	Options() []GraphOption               // reproduce flags on a new graph
//	Stats() *GraphStats
//
// † amortized: atomic ID generation + nested-map insertion.
//
// Errors:
//
//	ErrNegativeVertexID    – vertex ID below zero
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
