package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphmetric/centrality/builder"
	"github.com/graphmetric/centrality/core"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_AppliesInOrder(t *testing.T) {
	// Path then Star over disjoint ID ranges composes into one graph.
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(3),
		builder.Star(3),
	)
	require.NoError(t, err)

	// Star reuses indexes 0..2: same vertices, extra edge 0-2.
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "1"))
	assert.True(t, g.HasEdge("3", "4"))
	assert.False(t, g.HasEdge("0", "4"))

	// single vertex is a valid path
	g, err = builder.BuildGraph(nil, nil, builder.Path(1))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	_, err = builder.BuildGraph(nil, nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("3", "0"))

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
	for _, id := range g.Vertices() {
		deg, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, 4, deg)
	}

	// directed K_n carries both orientations of every pair
	g, err = builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.Complete(3),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("2", "0"))

	_, err = builder.BuildGraph(nil, nil, builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	deg, err := g.Degree("0")
	require.NoError(t, err)
	assert.Equal(t, 5, deg)

	_, err = builder.BuildGraph(nil, nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestLadder(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Ladder(3))
	require.NoError(t, err)

	// two rails of 2 edges each plus 3 rungs
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.HasEdge("1", "4"))
	assert.False(t, g.HasEdge("0", "4"))

	_, err = builder.BuildGraph(nil, nil, builder.Ladder(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestKrackhardtKite(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.KrackhardtKite())
	require.NoError(t, err)

	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 18, g.EdgeCount())

	// the broker bridges the body to the tail
	assert.True(t, g.HasEdge("7", "8"))
	assert.True(t, g.HasEdge("8", "9"))
	assert.False(t, g.HasEdge("7", "9"))
}

func TestFlorentineFamilies(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.FlorentineFamilies())
	require.NoError(t, err)

	assert.Equal(t, 15, g.VertexCount())
	assert.Equal(t, 20, g.EdgeCount())

	deg, err := g.Degree("Medici")
	require.NoError(t, err)
	assert.Equal(t, 6, deg)
}

func TestLesMiserables(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.LesMiserables())
	require.NoError(t, err)

	assert.Equal(t, 77, g.VertexCount())
	assert.Equal(t, 254, g.EdgeCount())

	for id, want := range map[string]int{
		"Valjean":  36,
		"Gavroche": 22,
		"Myriel":   10,
		"Napoleon": 1,
	} {
		deg, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, want, deg, "degree of %s", id)
	}
}

func TestWithIDFn(t *testing.T) {
	g, err := builder.BuildGraph(
		nil,
		[]builder.Option{builder.WithIDFn(func(i int) string { return fmt.Sprintf("v%02d", i) })},
		builder.Path(3),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"v00", "v01", "v02"}, g.Vertices())
	assert.True(t, g.HasEdge("v00", "v01"))

	// nil override keeps the default scheme
	g, err = builder.BuildGraph(
		nil,
		[]builder.Option{builder.WithIDFn(nil)},
		builder.Path(2),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, g.Vertices())
}

func TestWithWeightFn(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.Option{builder.WithWeightFn(func(from, to string) float64 {
			return float64(len(from) + len(to))
		})},
		builder.Path(3),
	)
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.Equal(t, 2.0, e.Weight, "edge %s-%s", e.From, e.To)
	}

	// default weight on weighted graphs is a constant 1
	g, err = builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.Path(3),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, 1.0, e.Weight, "edge %s-%s", e.From, e.To)
	}

	// unweighted graphs ignore the weight function entirely
	g, err = builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Zero(t, e.Weight, "edge %s-%s", e.From, e.To)
	}
}

func TestBuildGraph_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil, nil, builder.KrackhardtKite())
		require.NoError(t, err)
		return g
	}

	a, b := build(), build()
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
}
