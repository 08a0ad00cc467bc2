package bfs_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/bfs"
	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/snapshot"
)

func mustGraph(t *testing.T, adj [][]core.Neighbor) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)
	return g
}

// processed extracts the current node of every "Processing node" snapshot.
func processed(t *testing.T, tr snapshot.Trace) []int {
	t.Helper()
	var out []int
	for _, s := range tr {
		gs, ok := s.(snapshot.GraphSnapshot)
		require.True(t, ok, "bfs must record graph snapshots only")
		if !strings.HasPrefix(gs.Status, "Processing node") {
			continue
		}
		for _, n := range gs.Nodes {
			if n.State == snapshot.Current {
				out = append(out, n.ID)
			}
		}
	}
	return out
}

// TestBFS_Errors verifies that invalid inputs are rejected before recording.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph(2)
	for _, start := range []int{-1, 2, 100} {
		if _, err := bfs.BFS(g, start); !errors.Is(err, core.ErrInvalidNodeIndex) {
			t.Errorf("start %d: want ErrInvalidNodeIndex, got %v", start, err)
		}
	}
	if _, err := bfs.BFS(core.NewGraph(0), 0); !errors.Is(err, core.ErrInvalidNodeIndex) {
		t.Errorf("empty graph: want ErrInvalidNodeIndex, got %v", err)
	}
}

// TestBFS_ProcessingOrder covers the documented diamond-less tree example.
func TestBFS_ProcessingOrder(t *testing.T) {
	g := mustGraph(t, [][]core.Neighbor{
		{{To: 1, Weight: 1}, {To: 2, Weight: 1}},
		{{To: 3, Weight: 1}},
		{},
		{},
	})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3}, processed(t, res.Trace))
	assert.Equal(t, []int{0, 1, 1, 2}, res.Depth)
	assert.Equal(t, []int{-1, 0, 0, 1}, res.Parent)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)

	assert.Equal(t, []string{
		"Starting BFS from node 0",
		"Processing node 0",
		"Discovering edge 0 -> 1",
		"Discovered node 1",
		"Discovering edge 0 -> 2",
		"Discovered node 2",
		"Processing node 1",
		"Discovering edge 1 -> 3",
		"Discovered node 3",
		"Processing node 2",
		"Processing node 3",
		"BFS complete",
	}, res.Trace.Statuses())

	last := res.Trace.Last().(snapshot.GraphSnapshot)
	for _, n := range last.Nodes {
		assert.Equal(t, snapshot.Visited, n.State)
	}
}

// TestBFS_VisitOnce checks that on a dense cyclic graph every reachable node
// is processed exactly once and unreachable nodes never appear.
func TestBFS_VisitOnce(t *testing.T) {
	g := core.NewGraph(6, core.WithDirected(false))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	require.NoError(t, g.AddEdge(4, 5, 1))

	visits := map[int]int{}
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) { visits[id]++ }))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1, 2, 3}, processed(t, res.Trace))
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, visits)
	assert.Equal(t, -1, res.Depth[4])
	_, err = res.PathTo(5)
	assert.Error(t, err)
}

// TestBFS_VisitedNeverShrinks ensures a node once visited never reverts to unvisited.
func TestBFS_VisitedNeverShrinks(t *testing.T) {
	g := core.NewGraph(5, core.WithDirected(false))
	for i := 1; i < 5; i++ {
		require.NoError(t, g.AddEdge(0, i, 1))
	}
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, s := range res.Trace {
		for _, n := range s.(snapshot.GraphSnapshot).Nodes {
			if seen[n.ID] {
				assert.NotEqual(t, snapshot.Unvisited, n.State, "node %d un-visited", n.ID)
			}
			if n.State == snapshot.Visited {
				seen[n.ID] = true
			}
		}
	}
}

func TestBFS_SelfLoopAndParallelEdges(t *testing.T) {
	g := mustGraph(t, [][]core.Neighbor{
		{{To: 0, Weight: 1}, {To: 1, Weight: 2}, {To: 1, Weight: 3}},
		{},
	})
	enq := 0
	res, err := bfs.BFS(g, 0, bfs.WithOnEnqueue(func(int, int) { enq++ }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, 2, enq)
}
