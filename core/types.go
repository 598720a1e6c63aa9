// This file declares Vertex identifiers, Arc, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Arc is one resolved outgoing adjacency entry: the neighbor reached from
// the queried vertex and the weight of the connecting edge.
//
// For unweighted graphs Weight is always 0; algorithms that need a unit
// cost substitute 1 themselves.
type Arc struct {
	// To is the neighbor vertex ID.
	To string

	// Weight is the cost of the edge leading to To.
	Weight float64
}

// Edge is one stored edge of the graph. For undirected graphs From and To
// are in canonical (lexicographic) order.
type Edge struct {
	// From is the source endpoint (or the smaller endpoint when undirected).
	From string

	// To is the destination endpoint (or the larger endpoint when undirected).
	To string

	// Weight is the cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// pairKey identifies one stored edge. For undirected graphs the endpoints
// are canonicalized (from <= to) so each edge is cataloged exactly once.
type pairKey struct {
	from, to string
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected and weighted vs. unweighted modes,
// plus optional self-loops. There is at most one edge per ordered vertex
// pair; re-adding an existing pair updates its weight in place.
// mu guards vertices, edges, and adjacency; mode flags are immutable
// after construction.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // edge orientation
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	vertices map[string]struct{}           // vertex catalog
	edges    map[pairKey]float64           // canonical edge catalog
	out      map[string]map[string]float64 // out[from][to] = weight; mirrored when undirected
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, and rejects loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[pairKey]float64),
		out:      make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph treats edge weights as meaningful.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
