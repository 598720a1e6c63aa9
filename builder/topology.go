// Package builder: parametric topology constructors.
//
// Contract (all constructors):
//   - Add vertices via cfg.idFn in ascending index order.
//   - Emit edges in a stable, documented order.
//   - Honor core mode flags without silent degrade.
//   - Return only sentinel errors; never panic at runtime.

package builder

import (
	"fmt"

	"github.com/graphmetric/centrality/core"
)

// Parameter minima per topology (no magic numbers).
const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minLadderRungs   = 2
)

// Path builds the simple path P_n: edges (0,1), (1,2), ..., (n-2,n-1).
// A single-vertex path is valid and has no edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, cfg, n)
		if err != nil {
			return fmt.Errorf("Path: %w", err)
		}
		for i := 0; i+1 < n; i++ {
			if err = edge(g, cfg, ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle builds the n-vertex cycle C_n: the path edges plus (n-1,0).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, cfg, n)
		if err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		for i := 0; i < n; i++ {
			if err = edge(g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Complete builds the complete simple graph K_n, emitting each unordered
// pair {i,j}, i<j, exactly once (mirrored j→i for directed graphs).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, cfg, n)
		if err != nil {
			return fmt.Errorf("Complete: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = edge(g, cfg, ids[i], ids[j]); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
				if g.Directed() {
					if err = edge(g, cfg, ids[j], ids[i]); err != nil {
						return fmt.Errorf("Complete: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// Star builds an n-vertex star: center index 0, leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, cfg, n)
		if err != nil {
			return fmt.Errorf("Star: %w", err)
		}
		for i := 1; i < n; i++ {
			if err = edge(g, cfg, ids[0], ids[i]); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// Ladder builds the ladder graph with n rungs: two parallel paths
// 0..n-1 and n..2n-1 joined by rungs (i, n+i).
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minLadderRungs {
			return fmt.Errorf("Ladder: n=%d < min=%d: %w", n, minLadderRungs, ErrTooFewVertices)
		}
		ids, err := addIndexed(g, cfg, 2*n)
		if err != nil {
			return fmt.Errorf("Ladder: %w", err)
		}
		for i := 0; i+1 < n; i++ {
			if err = edge(g, cfg, ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("Ladder: %w", err)
			}
			if err = edge(g, cfg, ids[n+i], ids[n+i+1]); err != nil {
				return fmt.Errorf("Ladder: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			if err = edge(g, cfg, ids[i], ids[n+i]); err != nil {
				return fmt.Errorf("Ladder: %w", err)
			}
		}

		return nil
	}
}

// addIndexed inserts n vertices via cfg.idFn and returns their IDs.
func addIndexed(g *core.Graph, cfg config, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("AddVertex(%s): %w", ids[i], err)
		}
	}

	return ids, nil
}
