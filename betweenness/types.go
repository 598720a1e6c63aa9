// Package betweenness: tunable options and error definitions for the
// centrality computation.

package betweenness

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for centrality execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("betweenness: graph is nil")

	// ErrInvalidWeight is returned when a weighted traversal encounters a
	// negative, NaN, or infinite edge weight. Weights are validated before
	// the first traversal begins; no partial result is produced.
	ErrInvalidWeight = errors.New("betweenness: invalid edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("betweenness: invalid option supplied")
)

// defaultTolerance is the absolute/relative tolerance used to recognize
// shortest-path ties between accumulated float64 distances.
const defaultTolerance = 1e-9

// Option configures centrality behavior via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when the computation is
// invoked.
type Option func(*Options)

// Options holds parameters controlling a centrality computation.
type Options struct {
	// Ctx allows cancellation and deadlines. The computation aborts
	// between source iterations; an interrupted source contributes
	// nothing to the result.
	Ctx context.Context

	// Normalized rescales scores into a range comparable across graph
	// sizes (see Betweenness for the exact factors). Enabled by default.
	Normalized bool

	// Endpoints additionally credits each vertex for the shortest paths
	// it starts or ends, not only those it relays.
	Endpoints bool

	// UnitWeight forces the unweighted strategy, treating every edge as
	// cost 1 regardless of stored weights.
	UnitWeight bool

	// Workers is the number of goroutines traversing sources in
	// parallel. 0 or 1 means sequential.
	Workers int

	// Tolerance bounds the distance difference under which two weighted
	// paths count as tied. Ties accumulate path counts; they are never
	// arbitrarily broken.
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - normalization enabled, endpoints excluded
//   - weight usage following the graph's weighted flag
//   - sequential execution
//   - tie tolerance 1e-9.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Normalized: true,
		Endpoints:  false,
		UnitWeight: false,
		Workers:    0,
		Tolerance:  defaultTolerance,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNormalization enables or disables rescaling of the final scores.
func WithNormalization(on bool) Option {
	return func(o *Options) { o.Normalized = on }
}

// WithEndpoints includes path endpoints in each vertex's score.
func WithEndpoints() Option {
	return func(o *Options) { o.Endpoints = true }
}

// WithUnitWeight ignores stored edge weights and uses the unweighted
// (breadth-first) strategy even on a weighted graph.
func WithUnitWeight() Option {
	return func(o *Options) { o.UnitWeight = true }
}

// WithWorkers sets the number of goroutines that traverse sources in
// parallel.
//
//	n > 1:  parallel across sources
//	n <= 1: sequential (n == 0 is the default)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTolerance sets the shortest-path tie tolerance for weighted
// traversals. Must be non-negative and finite.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Tolerance must be finite and non-negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Tolerance = eps
	}
}

// buildOptions resolves functional options and surfaces any recorded
// violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// EdgeKey identifies an edge in an EdgeBetweenness result. For directed
// graphs it is the arc From→To; for undirected graphs the endpoints are
// in canonical (lexicographic) order.
type EdgeKey struct {
	From string
	To   string
}
