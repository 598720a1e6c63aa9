// Package betweenness: single-source shortest-path accumulators.
//
// Both strategies produce the same contract per source s: the visit order
// (non-decreasing distance from s), shortest-path counts sigma, and the
// predecessor lists of each reached vertex with the path count carried by
// each predecessor arc. Vertices never reached stay at distance +Inf with
// sigma 0 and are absent from the order.

package betweenness

import (
	"container/heap"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// traversal is the result of one single-source pass. It is created fresh
// for each source, consumed by the accumulation step, and discarded.
type traversal struct {
	order []int       // vertices in visit order (non-decreasing distance)
	pred  [][]int     // pred[v]: immediate predecessors on some shortest path
	tau   [][]float64 // tau[v][i]: shortest paths whose last arc is pred[v][i]→v
	sigma []float64   // sigma[v]: count of distinct shortest paths from s
	dist  []float64   // dist[v]: shortest distance from s (+Inf if unreached)
	tol   float64     // distance-tie tolerance (0 for the exact unweighted strategy)
}

func newTraversal(n int, tol float64) *traversal {
	t := &traversal{
		order: make([]int, 0, n),
		pred:  make([][]int, n),
		tau:   make([][]float64, n),
		sigma: make([]float64, n),
		dist:  make([]float64, n),
		tol:   tol,
	}
	for i := range t.dist {
		t.dist[i] = math.Inf(1)
	}

	return t
}

// tied reports whether two distances count as equal under the traversal's
// tolerance.
func (t *traversal) tied(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, t.tol, t.tol)
}

// tauVia returns the path count that reached u through the arc w→u, or 0
// when w is not a predecessor of u. Predecessor lists are short; a linear
// scan suffices.
func (t *traversal) tauVia(u, w int) float64 {
	for i, p := range t.pred[u] {
		if p == w {
			return t.tau[u][i]
		}
	}

	return 0
}

// traverse dispatches to the strategy selected when the snapshot was
// built.
func (v *view) traverse(s int, tol float64) *traversal {
	if v.weighted {
		return v.shortestWeighted(s, tol)
	}

	return v.shortestUnweighted(s)
}

// shortestUnweighted runs breadth-first search from s, counting shortest
// paths level by level. A neighbor first reached at depth d+1 is enqueued;
// every arc that lands on a vertex at exactly depth d+1 contributes the
// current vertex's path count and a predecessor link.
func (v *view) shortestUnweighted(s int) *traversal {
	t := newTraversal(v.order(), 0)
	t.dist[s] = 0
	t.sigma[s] = 1

	queue := make([]int, 0, v.order())
	queue = append(queue, s)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		t.order = append(t.order, u)

		next := t.dist[u] + 1
		for _, a := range v.arcs[u] {
			w := a.to
			if math.IsInf(t.dist[w], 1) {
				t.dist[w] = next
				queue = append(queue, w)
			}
			if t.dist[w] == next {
				t.sigma[w] += t.sigma[u]
				t.pred[w] = append(t.pred[w], u)
				t.tau[w] = append(t.tau[w], t.sigma[u])
			}
		}
	}

	return t
}

// shortestWeighted runs Dijkstra from s with a lazy-decrease-key heap:
// improved tentative distances push duplicate entries, and stale pops are
// skipped once a vertex is settled. Unlike plain Dijkstra, relaxation
// distinguishes strict improvements (reset sigma and predecessors) from
// ties within tol (accumulate sigma and append a predecessor), which is
// required for correct path counting. Ties accumulated, never broken.
//
// A zero-weight arc can close a tie onto a vertex that settled earlier at
// the same distance. Those ties are accumulated too: only the paths that
// did not arrive through the target itself extend across the arc, so the
// back-flow the target already contributed is subtracted.
func (v *view) shortestWeighted(s int, tol float64) *traversal {
	t := newTraversal(v.order(), tol)
	t.sigma[s] = 1

	// seen holds the best tentative distance of not-yet-settled
	// vertices; dist is only written at settlement.
	seen := make([]float64, v.order())
	for i := range seen {
		seen[i] = math.Inf(1)
	}
	seen[s] = 0

	final := make([]bool, v.order())

	pq := &distHeap{{dist: 0, v: s}}
	heap.Init(pq)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		u := item.v
		if final[u] {
			continue // stale duplicate entry
		}
		final[u] = true
		t.dist[u] = item.dist
		t.order = append(t.order, u)

		for _, a := range v.arcs[u] {
			w := a.to
			cand := item.dist + a.weight
			if final[w] {
				if t.tied(cand, t.dist[w]) {
					if c := t.sigma[u] - t.tauVia(u, w); c > 0 {
						t.sigma[w] += c
						t.pred[w] = append(t.pred[w], u)
						t.tau[w] = append(t.tau[w], c)
					}
				}
				continue
			}
			switch {
			case t.tied(cand, seen[w]):
				// Tied shortest path: accumulate, never break.
				t.sigma[w] += t.sigma[u]
				t.pred[w] = append(t.pred[w], u)
				t.tau[w] = append(t.tau[w], t.sigma[u])
			case cand < seen[w]:
				seen[w] = cand
				t.sigma[w] = t.sigma[u]
				t.pred[w] = t.pred[w][:0]
				t.pred[w] = append(t.pred[w], u)
				t.tau[w] = t.tau[w][:0]
				t.tau[w] = append(t.tau[w], t.sigma[u])
				heap.Push(pq, distItem{dist: cand, v: w})
			}
		}
	}

	return t
}

// distItem pairs a vertex with a tentative distance from the source.
type distItem struct {
	dist float64
	v    int
}

// distHeap is a min-heap of distItem ordered by dist ascending, used in
// the lazy-decrease-key pattern: shorter rediscoveries push new entries
// and outdated ones are ignored when popped.
type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
