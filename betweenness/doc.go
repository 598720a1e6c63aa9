// Package betweenness computes betweenness centrality on a core.Graph
// using Brandes' algorithm.
//
// What:
//
//   - Betweenness: for every vertex, the (optionally normalized) count of
//     shortest paths between pairs of other vertices that pass through it.
//   - EdgeBetweenness: the same score attributed to edges instead of
//     intermediate vertices.
//   - Unweighted graphs use breadth-first search per source; weighted
//     graphs use Dijkstra with lazy-decrease-key and shortest-path-tie
//     accumulation. The strategy is chosen once, before traversal begins.
//   - Optional endpoint credit (a vertex also scores for being the source
//     or target of a pair) and [0,1] normalization.
//
// Why:
//   - Betweenness identifies brokers and bottlenecks: vertices whose
//     removal disconnects or lengthens many shortest paths.
//
// Semantics:
//
//   - The graph is snapshotted once per call; concurrent mutation of the
//     graph after the call starts does not affect the result.
//   - Unreachable pairs contribute nothing; disconnected graphs and
//     isolated vertices are valid inputs, not errors.
//   - Self-loops never lie on a shortest path between distinct vertices
//     and are ignored.
//   - Undirected graphs count each unordered pair in both directions and
//     halve the final scores, matching the reference numeric behavior.
//   - WithWorkers(n) parallelizes across source vertices; the reduction
//     order is fixed, so results are reproducible for a fixed n.
//
// Complexity:
//
//   - Unweighted: Time O(V·(V+E)), Memory O(V+E)
//   - Weighted:   Time O(V·(V+E) log V), Memory O(V+E)
//
// Errors:
//
//   - ErrNilGraph        graph pointer is nil
//   - ErrInvalidWeight   negative, NaN, or ±Inf edge weight (weighted mode)
//   - ErrOptionViolation invalid option value supplied
//   - context errors     propagated when the supplied context ends
package betweenness
