package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/bfs"
	"github.com/katalvlaran/algotrace/builder"
	"github.com/katalvlaran/algotrace/core"
)

var undirected = []core.GraphOption{core.WithDirected(false)}

// TestBuilders_Functional checks order, edge count and a sample edge for
// every deterministic topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		ctor    builder.Constructor
		wantE   int
		hasEdge [2]int
	}{
		{"Path(4)", 4, builder.Path(4), 3, [2]int{2, 3}},
		{"Cycle(5)", 5, builder.Cycle(5), 5, [2]int{4, 0}},
		{"Star(5)", 5, builder.Star(5), 4, [2]int{0, 4}},
		{"Wheel(5)", 5, builder.Wheel(5), 8, [2]int{4, 1}},
		{"Complete(5)", 5, builder.Complete(5), 10, [2]int{1, 3}},
		{"Grid(2,3)", 6, builder.Grid(2, 3), 7, [2]int{1, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, undirected, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.Order())
			assert.Equal(t, tc.wantE, len(g.UndirectedEdges()))
			assert.True(t, g.HasEdge(tc.hasEdge[0], tc.hasEdge[1]))
			assert.True(t, g.HasEdge(tc.hasEdge[1], tc.hasEdge[0]))
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestBuilders_TooSmall(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Path":     builder.Path(1),
		"Cycle":    builder.Cycle(2),
		"Star":     builder.Star(1),
		"Wheel":    builder.Wheel(3),
		"Complete": builder.Complete(0),
		"Grid":     builder.Grid(0, 3),
	} {
		_, err := builder.BuildGraph(10, undirected, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(3, undirected, nil, builder.Path(4))
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildGraph(3, undirected, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(-1, undirected, nil)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestBuildGraph_ComposesConstructors(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(4, undirected, []builder.BuilderOption{builder.WithConstantWeight(7)},
		builder.Path(4), builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, 6, len(g.UndirectedEdges()))
	for _, e := range g.Edges() {
		assert.Equal(t, 7, e.Weight)
	}
}

func TestRandomSparse(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(5, undirected, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(5, undirected, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.BuildGraph(5, undirected, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, len(full.UndirectedEdges()))

	empty, err := builder.BuildGraph(5, undirected, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Zero(t, len(empty.UndirectedEdges()))

	opts := []builder.BuilderOption{builder.WithSeed(3)}
	a, err := builder.BuildGraph(8, undirected, opts, builder.RandomSparse(8, 0.4))
	require.NoError(t, err)
	b, err := builder.BuildGraph(8, undirected, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(8, 0.4))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

// TestRandomConnected_Properties checks connectivity, edge bounds, weight
// range and the absence of loops and parallel edges over many seeds.
func TestRandomConnected_Properties(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 100; seed++ {
		r := rand.New(rand.NewSource(seed))
		n := 1 + r.Intn(12)
		g, err := builder.BuildGraph(n, undirected,
			[]builder.BuilderOption{builder.WithRand(r), builder.WithUniformWeight(1, 10)},
			builder.RandomConnected(n))
		require.NoError(t, err)

		res, err := bfs.BFS(g, 0)
		require.NoError(t, err)
		assert.Len(t, res.Order, n, "seed %d: graph must be connected", seed)

		m := len(g.UndirectedEdges())
		switch {
		case n == 1:
			assert.Zero(t, m)
		case n == 2:
			assert.Equal(t, 1, m)
		default:
			assert.GreaterOrEqual(t, m, n)
			assert.LessOrEqual(t, m, n*(n-1)/2)
		}

		seen := map[[2]int]bool{}
		for _, e := range g.UndirectedEdges() {
			assert.NotEqual(t, e.From, e.To)
			assert.GreaterOrEqual(t, e.Weight, 1)
			assert.LessOrEqual(t, e.Weight, 10)
			key := [2]int{e.From, e.To}
			assert.False(t, seen[key], "seed %d: parallel edge %v", seed, key)
			seen[key] = true
		}
	}
}

func TestRandomConnected_NeedsRand(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(5, undirected, nil, builder.RandomConnected(5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(builder.TopologyGrid, 10)
	require.NoError(t, err)
	assert.Equal(t, 9, g.Order())
	assert.False(t, g.Directed())

	g, err = builder.Generate("", 6, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())

	_, err = builder.Generate("hexagon", 6)
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)

	assert.Equal(t, builder.TopologyRandom, builder.Topologies()[0])
}

func TestRandomArray(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomArray(50, 1, 100, builder.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, a, 50)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 100)
	}

	b, err := builder.RandomArray(50, 1, 100, builder.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	constant, err := builder.RandomArray(3, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 4}, constant)

	// Ranges wider than the int span must not overflow.
	for _, rng := range [][2]int{
		{math.MinInt, math.MaxInt},
		{math.MinInt, 0},
		{-1, math.MaxInt},
		{math.MaxInt - 1, math.MaxInt},
	} {
		wide, err := builder.RandomArray(64, rng[0], rng[1], builder.WithSeed(5))
		require.NoError(t, err, "range %v", rng)
		require.Len(t, wide, 64)
		for _, v := range wide {
			assert.GreaterOrEqual(t, v, rng[0])
			assert.LessOrEqual(t, v, rng[1])
		}
	}

	_, err = builder.RandomArray(-1, 1, 2)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomArray(3, 5, 2)
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.RandomArray(3, 1, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.DefaultLength()
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 30; seed++ {
		size, err := builder.DefaultLength(builder.WithSeed(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, size, builder.DefaultArrayMinLen)
		assert.LessOrEqual(t, size, builder.DefaultArrayMaxLen)

		n, err := builder.DefaultOrder(builder.WithSeed(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, builder.DefaultGraphMinNodes)
		assert.LessOrEqual(t, n, builder.DefaultGraphMaxNodes)
	}
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	u := builder.UniformWeightFn(2, 4)
	for i := 0; i < 100; i++ {
		w := u(r)
		assert.GreaterOrEqual(t, w, 2)
		assert.LessOrEqual(t, w, 4)
	}
	assert.Equal(t, 2, u(nil))
	assert.Equal(t, 5, builder.ConstantWeightFn(5)(r))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(r))

	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
