// Package builder provides deterministic graph constructors for tests,
// examples, and benchmarks.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a
// core.Graph, resolves the builder configuration, and applies each
// Constructor in order. Same inputs, options, and constructor order
// always produce identical graphs.
//
// Topologies:
//
//   - Path(n), Cycle(n), Complete(n), Star(n), Ladder(n): parametric
//     families with index-scheme vertex IDs (default: decimal indexes).
//   - KrackhardtKite(), FlorentineFamilies(): fixed named graphs commonly
//     used to validate centrality measures.
//
// Constructors validate parameters early and return sentinel errors
// (ErrTooFewVertices, ErrConstructFailed); they never panic. Weighted
// graphs receive edge weights from the configured weight function
// (default: constant 1); unweighted graphs receive weight 0.
package builder
