// Package betweenness: Brandes' dependency back-propagation.
//
// Processing the visit order from the farthest vertices inward guarantees
// every strictly farther successor of a vertex is handled before the
// vertex itself, so each vertex's dependency (delta) is complete when it
// is folded back onto its predecessors.

package betweenness

// fold computes per-vertex dependencies over the traversal's shortest-path
// structure and reports them through two callbacks: arcDep receives every
// dependency crossing a predecessor arc p→w, vertexDep receives each
// vertex's completed dependency.
//
// Vertices settled at the same distance form a plateau when zero-weight
// arcs tie them to one another; such an arc makes a vertex a predecessor
// of an equally distant one. Plateau contributions are computed from the
// dependencies accumulated so far and applied together, so the result does
// not depend on the settlement order inside the plateau. A plateau inflow
// extends toward the remaining predecessors only over the paths that did
// not arrive through the contributing partner; plateaus joined by chains
// of two or more zero-weight arcs are folded pairwise.
func (t *traversal) fold(arcDep func(p, w int, c float64), vertexDep func(w int, dep float64)) {
	n := len(t.sigma)
	delta := make([]float64, n)
	// plateau partners that folded onto each vertex, and the dependency
	// each one contributed
	crossFrom := make([][]int, n)
	crossAmt := make([][]float64, n)

	hi := len(t.order) - 1
	for hi >= 0 {
		lo := hi
		for lo > 0 && t.tied(t.dist[t.order[lo-1]], t.dist[t.order[lo]]) {
			lo--
		}
		level := t.order[lo : hi+1]

		for _, w := range level {
			for i, p := range t.pred[w] {
				if !t.tied(t.dist[p], t.dist[w]) {
					continue
				}
				c := t.tau[w][i] / t.sigma[w] * (1 + delta[w])
				arcDep(p, w, c)
				crossFrom[p] = append(crossFrom[p], w)
				crossAmt[p] = append(crossAmt[p], c)
			}
		}

		for _, w := range level {
			dep := delta[w]
			for _, c := range crossAmt[w] {
				dep += c
			}
			vertexDep(w, dep)

			for i, p := range t.pred[w] {
				if t.tied(t.dist[p], t.dist[w]) {
					continue
				}
				c := t.tau[w][i] / t.sigma[w] * (1 + delta[w])
				for j, x := range crossFrom[w] {
					c += crossAmt[w][j] * t.tau[w][i] / (t.sigma[w] - t.tauVia(w, x))
				}
				arcDep(p, w, c)
				delta[p] += c
			}
		}

		hi = lo - 1
	}
}

// accumulate folds one source's dependency contributions into the vertex
// totals. The source itself never receives relay credit; with endpoints
// enabled, the source additionally scores one per vertex it reaches and
// every reached vertex scores one for being a target.
func accumulate(t *traversal, s int, endpoints bool, total []float64) {
	t.fold(
		func(int, int, float64) {},
		func(w int, dep float64) {
			if w != s {
				total[w] += dep
			}
		},
	)

	if endpoints {
		total[s] += float64(len(t.order) - 1)
		for _, w := range t.order {
			if w != s {
				total[w]++
			}
		}
	}
}

// accumulateArcs is the edge-variant fold: the dependency crossing the arc
// p→w is attributed to that arc (flat arc numbering) rather than to w.
func accumulateArcs(v *view, t *traversal, total []float64) {
	t.fold(
		func(p, w int, c float64) {
			total[v.arcIndex(p, w)] += c
		},
		func(int, float64) {},
	)
}

// rescale applies the final normalization to vertex totals, in place.
//
// Factors (n = vertex count):
//
//	normalized, endpoints excluded: 1/((n-1)(n-2))
//	normalized, endpoints included: 1/(n(n-1))
//	unnormalized, undirected:       1/2 (each unordered pair was counted
//	                                from both directions)
//	unnormalized, directed:         1 (already final)
//
// Degenerate denominators (n < 3 excluding endpoints, n < 2 including
// them) skip rescaling entirely; all scores are 0 in those cases. For
// undirected graphs the double counting and the halved pair count cancel,
// so the normalized factors coincide with the directed ones.
func rescale(total []float64, n int, directed, normalized, endpoints bool) {
	var scale float64
	switch {
	case normalized && endpoints:
		if n < 2 {
			return
		}
		scale = 1 / float64(n*(n-1))
	case normalized:
		if n < 3 {
			return
		}
		scale = 1 / float64((n-1)*(n-2))
	case directed:
		return
	default:
		scale = 0.5
	}
	for i := range total {
		total[i] *= scale
	}
}

// rescaleArcs applies the edge-variant normalization: edges have n(n-1)
// ordered endpoint pairs regardless of endpoint mode, and the undirected
// halving rule is the same as for vertices.
func rescaleArcs(total []float64, n int, directed, normalized bool) {
	var scale float64
	switch {
	case normalized:
		if n < 2 {
			return
		}
		scale = 1 / float64(n*(n-1))
	case directed:
		return
	default:
		scale = 0.5
	}
	for i := range total {
		total[i] *= scale
	}
}
