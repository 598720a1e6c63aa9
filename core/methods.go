// Package core: Graph method implementations.
//
// This file provides thread-safe operations for vertex and edge management
// on the Graph type defined in types.go. Adjacency is stored as a nested
// map out[from][to] = weight, mirrored for undirected edges, which gives
// constant-time edge existence checks and lets Neighbors return resolved
// arcs without direction filtering.

package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id into the catalogs; caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]float64)
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge connects from and to with the given weight, creating missing
// endpoints implicitly. For undirected graphs the adjacency is mirrored
// both ways. Re-adding an existing pair updates the stored weight in
// place; the graph never holds parallel edges.
//
// Returns ErrEmptyVertexID, ErrBadWeight, or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.edges[g.pair(from, to)] = weight
	g.out[from][to] = weight
	if !g.directed && from != to {
		g.out[to][from] = weight
	}

	return nil
}

// pair returns the catalog key for an edge, canonicalizing the endpoint
// order for undirected graphs.
func (g *Graph) pair(from, to string) pairKey {
	if !g.directed && from > to {
		from, to = to, from
	}

	return pairKey{from: from, to: to}
}

// HasEdge reports whether an edge from 'from' to 'to' exists.
// For undirected graphs the direction of the query does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Neighbors returns the resolved outgoing arcs of vertex id, sorted by
// neighbor ID for determinism. Directed edges appear only in the source
// vertex's arcs; undirected edges appear in both endpoints' arcs.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	arcs := make([]Arc, 0, len(g.out[id]))
	for to, w := range g.out[id] {
		arcs = append(arcs, Arc{To: to, Weight: w})
	}
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })

	return arcs, nil
}

// Degree returns the number of distinct neighbors reachable from id in one
// hop (out-degree for directed graphs).
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.out[id]), nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all stored edges sorted by (From, To). Undirected edges
// are reported once, with canonical endpoint order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for k, w := range g.edges {
		out = append(out, Edge{From: k.from, To: k.to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of stored edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and adjacency. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.out[id] = make(map[string]float64, len(g.out[id]))
	}
	for k, w := range g.edges {
		clone.edges[k] = w
	}
	for from, tos := range g.out {
		for to, w := range tos {
			clone.out[from][to] = w
		}
	}

	return clone
}
