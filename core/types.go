// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types used by the sampler,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so one loaded graph can be read by many
// sampling workers at once.
//
// Errors:
//
//	ErrNegativeVertexID    - vertex ID is below zero.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates that the provided vertex ID is negative.
	ErrNegativeVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// ID is assigned from a monotonically increasing counter, so sorting edges by
// ID reproduces insertion order. For undirected graphs From/To keep the order
// in which the endpoints were supplied to AddEdge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID uint64

	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of every edge in the graph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected edges, parallel edges and self-loops.
// muVert protects vertices; muEdgeAdj protects edges, adjacencyList and reverseList.
// Lock order is always muVert before muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags (immutable after NewGraph)
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID uint64           // atomic edge ID generator
	vertices   map[int]struct{} // vertex ID set
	edges      map[uint64]*Edge // edge ID → Edge

	// adjacencyList[from][to][edgeID]; undirected edges are mirrored.
	adjacencyList map[int]map[int]map[uint64]struct{}

	// reverseList[to][from][edgeID]; populated for directed graphs only.
	reverseList map[int]map[int]map[uint64]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[int]struct{}),
		edges:         make(map[uint64]*Edge),
		adjacencyList: make(map[int]map[int]map[uint64]struct{}),
		reverseList:   make(map[int]map[int]map[uint64]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
