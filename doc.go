// Package centrality is a small, thread-safe library for computing
// betweenness centrality on in-memory graphs.
//
// 🚀 What is centrality?
//
//	A focused implementation of Brandes' algorithm over a minimal graph
//	core, supporting:
//		• Directed and undirected graphs
//		• Unweighted (BFS) and non-negative-weighted (Dijkstra) shortest paths
//		• Vertex and edge betweenness scores
//		• Endpoint inclusion and [0,1] normalization
//		• Parallel source aggregation with a deterministic reduction order
//
// ✨ Why choose centrality?
//
//   - Minimal API — build a graph, call Betweenness, read a map
//   - Rock-solid guarantees — R/W locks on the graph, immutable snapshots
//     during computation, sentinel errors throughout
//   - Deterministic — identical output for identical input, including
//     parallel runs with a fixed worker count
//
// Everything is organized under three subpackages:
//
//	core/        — the Graph type and thread-safe construction primitives
//	betweenness/ — the computation engine (Betweenness, EdgeBetweenness)
//	builder/     — deterministic fixture factories (paths, cycles, K_n,
//	               Krackhardt kite, Florentine families, ...)
package centrality
