// Package core defines the Graph type consumed by the centrality engine,
// and provides thread-safe primitives for building and querying graphs.
//
// What:
//
//   - Graph: an in-memory vertex/edge container with construction-time
//     flags for directedness, weighted edges, and self-loops.
//   - Vertices are arbitrary non-empty string identifiers.
//   - Edge weights are float64; unweighted graphs reject non-zero weights.
//   - Neighbors(v) returns resolved outgoing arcs (to, weight); an
//     undirected edge {a,b} appears in both Neighbors(a) and Neighbors(b).
//
// Why:
//   - Centrality algorithms need a stable adjacency view that cannot be
//     walked backwards along directed edges, with every accessor returning
//     data in a deterministic (sorted) order.
//
// Concurrency:
//
//	All mutation takes a write lock; all queries take a read lock, so any
//	number of traversals may read the graph concurrently. Mode flags are
//	immutable after NewGraph and may be read without locking.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core
