// Package betweenness: public entry points and the source aggregator.

package betweenness

import (
	"github.com/graphmetric/centrality/core"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Betweenness computes the betweenness centrality of every vertex of g.
//
// By default scores are normalized: divided by (n-1)(n-2) for directed
// graphs and (n-1)(n-2)/2 for undirected ones (endpoints excluded), or by
// n(n-1) resp. n(n-1)/2 with WithEndpoints. WithNormalization(false)
// returns raw dependency sums (halved for undirected graphs). Strategy
// selection follows g.Weighted() unless WithUnitWeight forces the
// breadth-first variant.
//
// Isolated and unreachable vertices score 0. An empty graph yields an
// empty map; a single-vertex graph yields {v: 0}.
//
// Returns ErrNilGraph, ErrOptionViolation, ErrInvalidWeight, or the
// context's error on cancellation.
func Betweenness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	v, err := newView(g, o.UnitWeight)
	if err != nil {
		return nil, err
	}

	total, err := v.runSources(o, v.order(), func(t *traversal, s int, acc []float64) {
		accumulate(t, s, o.Endpoints, acc)
	})
	if err != nil {
		return nil, err
	}
	rescale(total, v.order(), v.directed, o.Normalized, o.Endpoints)

	out := make(map[string]float64, v.order())
	for i, id := range v.ids {
		out[id] = total[i]
	}

	return out, nil
}

// EdgeBetweenness computes the betweenness centrality of every edge of g:
// the (optionally normalized) count of shortest paths that traverse it.
//
// Keys follow EdgeKey semantics: directed arcs keep their orientation,
// undirected edges are keyed with lexicographic endpoint order. Every
// non-loop edge of the graph appears in the result, scored 0 when no
// shortest path uses it; self-loops are omitted. Normalized scores divide
// by n(n-1) for directed graphs and n(n-1)/2 for undirected ones.
//
// Accepts the same options and returns the same errors as Betweenness;
// WithEndpoints has no effect on edge scores.
func EdgeBetweenness(g *core.Graph, opts ...Option) (map[EdgeKey]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	v, err := newView(g, o.UnitWeight)
	if err != nil {
		return nil, err
	}

	total, err := v.runSources(o, v.narcs, func(t *traversal, _ int, acc []float64) {
		accumulateArcs(v, t, acc)
	})
	if err != nil {
		return nil, err
	}
	rescaleArcs(total, v.order(), v.directed, o.Normalized)

	// Fold mirrored arcs onto canonical keys. For undirected graphs both
	// orientations of an edge land on one key, which is exactly the
	// double counting the rescale step accounts for.
	out := make(map[EdgeKey]float64, len(total))
	for u := range v.arcs {
		for _, a := range v.arcs[u] {
			k := EdgeKey{From: v.ids[u], To: v.ids[a.to]}
			if !v.directed && k.From > k.To {
				k.From, k.To = k.To, k.From
			}
			out[k] += total[a.idx]
		}
	}

	return out, nil
}

// runSources executes one traversal per source vertex and folds the
// per-source contributions into a fresh accumulator of the given width
// using visit. Sources run sequentially or, with Options.Workers > 1,
// split into contiguous chunks of the sorted vertex order; each worker
// owns a private partial accumulator and the partials merge in worker
// index order, keeping the floating-point reduction order fixed for a
// given worker count.
func (v *view) runSources(o Options, width int, visit func(t *traversal, s int, acc []float64)) ([]float64, error) {
	n := v.order()
	workers := o.Workers
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		acc := make([]float64, width)
		for s := 0; s < n; s++ {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
			visit(v.traverse(s, o.Tolerance), s, acc)
		}

		return acc, nil
	}

	parts := make([][]float64, workers)
	grp, ctx := errgroup.WithContext(o.Ctx)
	chunk := (n + workers - 1) / workers
	for k := 0; k < workers; k++ {
		lo := k * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		part := make([]float64, width)
		parts[k] = part
		grp.Go(func() error {
			for s := lo; s < hi; s++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				visit(v.traverse(s, o.Tolerance), s, part)
			}

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	acc := make([]float64, width)
	for _, part := range parts {
		if part != nil {
			floats.Add(acc, part)
		}
	}

	return acc, nil
}
