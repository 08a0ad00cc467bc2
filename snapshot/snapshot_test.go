package snapshot_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/snapshot"
)

// TestNewArray_CopiesInput verifies that mutating the live array after
// recording is never observed through the snapshot.
func TestNewArray_CopiesInput(t *testing.T) {
	live := []int{3, 1, 2}
	s := snapshot.NewArray(live, "initial", 0, 1)
	live[0] = 99

	assert.Equal(t, []int{3, 1, 2}, s.Array)
	assert.Equal(t, []int{0, 1}, s.Highlights)
}

func TestNewArray_HighlightsAreValid(t *testing.T) {
	cases := []struct {
		name string
		n    int
		in   []int
		want []int
	}{
		{"none", 3, nil, []int{}},
		{"negative dropped", 3, []int{-1}, []int{}},
		{"out of range dropped", 3, []int{1, 3}, []int{1}},
		{"duplicates collapsed", 3, []int{2, 2}, []int{2}},
		{"capped at two", 5, []int{0, 1, 2}, []int{0, 1}},
		{"empty array", 0, []int{0}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := snapshot.NewArray(make([]int, tc.n), "", tc.in...)
			assert.Equal(t, tc.want, s.Highlights)
		})
	}
}

func TestRecorder_FinishOnce(t *testing.T) {
	rec := snapshot.NewRecorder(2)
	rec.Array([]int{1}, "a")
	rec.Heap([]int{2}, "b", 0)
	require.Equal(t, 2, rec.Len())

	tr := rec.Finish()
	require.Len(t, tr, 2)
	assert.Equal(t, []string{"a", "b"}, tr.Statuses())
	assert.Equal(t, snapshot.KindHeap, tr.Last().Kind())

	assert.PanicsWithValue(t, snapshot.ErrFinished, func() { rec.Record(snapshot.NewArray(nil, "late")) })
	assert.PanicsWithValue(t, snapshot.ErrFinished, func() { rec.Finish() })
}

func TestTrace_LastOfEmpty(t *testing.T) {
	var tr snapshot.Trace
	assert.Nil(t, tr.Last())
}

func TestTrace_Cells(t *testing.T) {
	tr := snapshot.Trace{
		snapshot.NewArray([]int{2, 1, 3}, "cmp", 0, 1),
		snapshot.NewHeap([]int{8, 3}, "built"),
		snapshot.NewGraph(
			[]snapshot.GraphNode{{ID: 0}, {ID: 1}},
			[]snapshot.GraphEdge{{Source: 0, Target: 1, Weight: 4}},
			"start",
		),
		snapshot.TreeSnapshot{Root: &snapshot.TreeNode{Value: 5, Right: &snapshot.TreeNode{Value: 7}}},
		snapshot.TreeSnapshot{Status: "empty"},
	}
	// 3+2 array, 2 heap, 2*2+3 graph, 2*3 tree
	assert.Equal(t, 5+2+7+6, tr.Cells())
	assert.Zero(t, snapshot.Trace(nil).Cells())
}

func TestMarshal_WireFields(t *testing.T) {
	tree := &snapshot.TreeNode{Value: 5, Left: &snapshot.TreeNode{Value: 3, IsHighlighted: true, IsFound: true}}
	tr := snapshot.Trace{
		snapshot.NewArray([]int{2, 1}, "cmp", 0, 1),
		snapshot.NewGraph(
			[]snapshot.GraphNode{{ID: 0, State: snapshot.Current}, {ID: 1, State: snapshot.Unvisited}},
			[]snapshot.GraphEdge{{Source: 0, Target: 1, Weight: 4}},
			"start",
		),
		snapshot.TreeSnapshot{Root: tree, Status: "found"},
		snapshot.TreeSnapshot{Status: "empty"},
		snapshot.NewHeap([]int{8, 3, 5}, "built"),
	}

	data, err := json.Marshal(tr)
	require.NoError(t, err)

	var generic []map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	require.Len(t, generic, 5)

	assert.Equal(t, "array", generic[0]["type"])
	assert.ElementsMatch(t, []string{"type", "array", "highlights", "status"}, keys(generic[0]))
	assert.ElementsMatch(t, []string{"type", "nodes", "edges", "status"}, keys(generic[1]))
	assert.ElementsMatch(t, []string{"type", "tree", "status"}, keys(generic[2]))
	assert.Nil(t, generic[3]["tree"], "empty tree must be encoded as null")
	assert.ElementsMatch(t, []string{"type", "heap", "highlights", "status"}, keys(generic[4]))
	assert.Equal(t, []any{}, generic[4]["highlights"])

	root := generic[2]["tree"].(map[string]any)
	assert.ElementsMatch(t, []string{"value", "isHighlighted", "isFound", "left", "right"}, keys(root))

	var back snapshot.Trace
	require.NoError(t, json.Unmarshal(data, &back))
	if diff := cmp.Diff(tr, back); diff != "" {
		t.Errorf("decoded trace mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := snapshot.Decode([]byte(`{"type":"matrix"}`))
	assert.True(t, errors.Is(err, snapshot.ErrUnknownKind))
}

func TestTreeNode_CloneAndInOrder(t *testing.T) {
	root := &snapshot.TreeNode{
		Value: 5,
		Left:  &snapshot.TreeNode{Value: 3},
		Right: &snapshot.TreeNode{Value: 8, Left: &snapshot.TreeNode{Value: 7}},
	}
	c := root.Clone()
	root.Left.Value = 100

	assert.Equal(t, []int{3, 5, 7, 8}, c.InOrder())
	assert.Equal(t, 7, c.Find(func(n *snapshot.TreeNode) bool { return n.Value == 7 }).Value)
	assert.Nil(t, c.Find(func(n *snapshot.TreeNode) bool { return n.Value == 42 }))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
