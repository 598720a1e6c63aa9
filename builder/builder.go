// Package builder: orchestrator, configuration, and sentinel errors.

package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/graphmetric/centrality/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates a topology parameter below its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrConstructFailed indicates an invalid constructor or a failed
	// mutation of the target graph.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Option configures builder behavior via functional arguments.
type Option func(*config)

// config is the resolved, immutable builder configuration.
type config struct {
	// idFn maps a vertex index to its ID.
	idFn func(i int) string

	// weightFn yields the weight of edge from→to on weighted graphs.
	weightFn func(from, to string) float64
}

// WithIDFn overrides the vertex ID scheme for parametric topologies.
func WithIDFn(fn func(i int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightFn overrides the edge weight function used on weighted graphs.
func WithWeightFn(fn func(from, to string) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// newConfig resolves options over the defaults: decimal-index IDs and
// constant weight 1.
func newConfig(opts ...Option) config {
	c := config{
		idFn:     strconv.Itoa,
		weightFn: func(_, _ string) float64 { return 1 },
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Constructor applies a deterministic graph mutation using the resolved
// configuration. Constructors validate parameters early, emit vertices
// and edges in a stable documented order, and return sentinel errors.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// edge emits one edge honoring the graph's weight mode.
func edge(g *core.Graph, cfg config, from, to string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(from, to)
	}
	if err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("AddEdge(%s→%s): %w", from, to, err)
	}

	return nil
}
