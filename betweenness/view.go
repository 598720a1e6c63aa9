// Package betweenness: read-only graph snapshot shared by all traversals.

package betweenness

import (
	"fmt"
	"math"

	"github.com/graphmetric/centrality/core"
)

// arc is one outgoing adjacency entry in the snapshot. Vertices are
// densified to indexes into view.ids so per-source state lives in slices
// rather than maps.
type arc struct {
	to     int     // neighbor index
	weight float64 // edge cost (unused by the unweighted strategy)
	idx    int     // position in the flat arc numbering (edge variant)
}

// view is the immutable adjacency snapshot taken once per computation.
// It is safe for concurrent use by any number of traversal workers; the
// source graph may be mutated freely after the snapshot is taken.
type view struct {
	ids      []string // sorted vertex IDs; slice index is the dense vertex number
	arcs     [][]arc  // outgoing arcs per vertex, mirrored for undirected edges
	narcs    int      // total arc count across all vertices
	weighted bool     // strategy tag: Dijkstra when true, BFS otherwise
	directed bool
}

// newView snapshots g into a dense adjacency structure. Self-loop arcs are
// dropped: they never lie on a shortest path between distinct vertices.
// When the weighted strategy is in effect, every edge weight is validated
// upfront; a negative or non-finite weight yields ErrInvalidWeight before
// any traversal runs.
func newView(g *core.Graph, unitWeight bool) (*view, error) {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	v := &view{
		ids:      ids,
		arcs:     make([][]arc, len(ids)),
		weighted: g.Weighted() && !unitWeight,
		directed: g.Directed(),
	}

	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			// Vertices came from the same graph moments ago; a lookup
			// failure means the caller mutated it mid-snapshot.
			return nil, fmt.Errorf("betweenness: snapshot of %q: %w", id, err)
		}
		out := make([]arc, 0, len(nbrs))
		for _, nb := range nbrs {
			if nb.To == id {
				continue // self-loop
			}
			if v.weighted && (nb.Weight < 0 || math.IsNaN(nb.Weight) || math.IsInf(nb.Weight, 0)) {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrInvalidWeight, id, nb.To, nb.Weight)
			}
			out = append(out, arc{to: index[nb.To], weight: nb.Weight, idx: v.narcs})
			v.narcs++
		}
		v.arcs[i] = out
	}

	return v, nil
}

// order returns the vertex count of the snapshot.
func (v *view) order() int { return len(v.ids) }

// arcIndex returns the flat arc number of the arc from→to.
// Arcs per vertex are sorted by neighbor ID, but the dense renumbering is
// also ID-ordered, so a linear scan stays cache-friendly and the arc lists
// are short; the edge variant calls this once per predecessor link.
func (v *view) arcIndex(from, to int) int {
	for _, a := range v.arcs[from] {
		if a.to == to {
			return a.idx
		}
	}
	// Unreachable: pred entries are only ever recorded while relaxing an
	// existing arc.
	panic(fmt.Sprintf("betweenness: no arc %d→%d in snapshot", from, to))
}
