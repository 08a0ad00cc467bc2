package maxheap_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/maxheap"
	"github.com/katalvlaran/algotrace/snapshot"
)

func heapOf(t *testing.T, tr snapshot.Trace) snapshot.HeapSnapshot {
	t.Helper()
	hs, ok := tr.Last().(snapshot.HeapSnapshot)
	require.True(t, ok, "heap operations record heap snapshots")
	return hs
}

func TestCreate_Trace(t *testing.T) {
	h := maxheap.New()
	tr := h.Create([]int{5, 3, 8})

	assert.Equal(t, []int{8, 3, 5}, h.Values())
	assert.Equal(t, []string{
		"Creating new heap from array",
		"Copied array to heap, now building max heap",
		"Starting to build max heap from array",
		"Processing node at index 0",
		"Heapifying at index 0",
		"Comparing 5 with left child 3",
		"Comparing 5 with right child 8",
		"Right child is larger, updating largest to index 2",
		"Swapping 5 with 8",
		"Swapped elements, now heapifying the affected subtree",
		"Heapifying at index 2",
		"Node at index 2 is already a max heap",
		"Max heap built successfully",
	}, tr.Statuses())

	first := tr[0].(snapshot.HeapSnapshot)
	assert.Empty(t, first.Heap)
	swap := tr[8].(snapshot.HeapSnapshot)
	assert.Equal(t, []int{5, 3, 8}, swap.Heap, "swap snapshot is taken before the swap")
	assert.Equal(t, []int{0, 2}, swap.Highlights)
	assert.Equal(t, []int{8, 3, 5}, heapOf(t, tr).Heap)
}

func TestCreate_DoesNotAliasInput(t *testing.T) {
	in := []int{1, 2, 3}
	h := maxheap.New()
	h.Create(in)
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Equal(t, []int{3, 2, 1}, h.Values())
}

func TestCreate_Empty(t *testing.T) {
	h := maxheap.New()
	tr := h.Create(nil)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, []string{
		"Creating new heap from array",
		"Copied array to heap, now building max heap",
		"Starting to build max heap from array",
		"Max heap built successfully",
	}, tr.Statuses())
}

func TestInsert_SiftUp(t *testing.T) {
	h := maxheap.New()
	h.Create([]int{5, 3, 8})
	tr := h.Insert(9)

	assert.Equal(t, []int{9, 8, 5, 3}, h.Values())
	assert.Equal(t, []string{
		"Starting insertion of 9",
		"Inserted 9 at the end of heap",
		"Comparing 9 with parent 3",
		"Child is greater than parent, swapping",
		"Swapped 9 with 3",
		"Comparing 9 with parent 8",
		"Child is greater than parent, swapping",
		"Swapped 9 with 8",
		"Insertion complete, heap property restored",
	}, tr.Statuses())

	tr = h.Insert(1)
	assert.Equal(t, []string{
		"Starting insertion of 1",
		"Inserted 1 at the end of heap",
		"Comparing 1 with parent 8",
		"Heap property satisfied, stopping",
		"Insertion complete, heap property restored",
	}, tr.Statuses())
}

func TestInsert_IntoEmpty(t *testing.T) {
	h := maxheap.New()
	tr := h.Insert(4)
	assert.Equal(t, []int{4}, h.Values())
	assert.Equal(t, []string{
		"Starting insertion of 4",
		"Inserted 4 at the end of heap",
		"Insertion complete, heap property restored",
	}, tr.Statuses())
}

func TestExtractMax(t *testing.T) {
	h := maxheap.New()
	h.Create([]int{9, 8, 5, 3})
	got, tr := h.ExtractMax()

	require.NotNil(t, got)
	assert.Equal(t, 9, *got)
	assert.Equal(t, []int{8, 3, 5}, h.Values())
	assert.Equal(t, []string{
		"Starting extract max operation",
		"Maximum value is 9 (at root)",
		"Replaced root with last element 3",
		"Heapifying at index 0",
		"Comparing 3 with left child 8",
		"Left child is larger, updating largest to index 1",
		"Comparing 8 with right child 5",
		"Swapping 3 with 8",
		"Swapped elements, now heapifying the affected subtree",
		"Heapifying at index 1",
		"Node at index 1 is already a max heap",
		"Extracted 9, heap property restored",
	}, tr.Statuses())
}

func TestExtractMax_LastAndEmpty(t *testing.T) {
	h := maxheap.New()
	h.Insert(7)

	got, tr := h.ExtractMax()
	require.NotNil(t, got)
	assert.Equal(t, 7, *got)
	assert.Equal(t, []string{
		"Starting extract max operation",
		"Maximum value is 7 (at root)",
		"Heap is now empty",
		"Extracted 7, heap property restored",
	}, tr.Statuses())

	got, tr = h.ExtractMax()
	assert.Nil(t, got)
	assert.Equal(t, []string{
		"Starting extract max operation",
		"Heap is empty, nothing to extract",
	}, tr.Statuses())
	assert.Empty(t, heapOf(t, tr).Heap)
}

func TestHeapify(t *testing.T) {
	h := maxheap.New()
	_, err := h.Heapify(0)
	assert.ErrorIs(t, err, maxheap.ErrIndexOutOfRange)

	h.Create([]int{3, 2, 1})
	tr, err := h.Heapify(0)
	require.NoError(t, err)
	assert.Equal(t, "Node at index 0 is already a max heap", tr.Last().Text())
	_, err = h.Heapify(3)
	assert.ErrorIs(t, err, maxheap.ErrIndexOutOfRange)
}

func TestClear(t *testing.T) {
	h := maxheap.New()
	h.Create([]int{1, 2})
	tr := h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, []string{"Clearing the heap", "Heap cleared"}, tr.Statuses())
	_, ok := h.Peek()
	assert.False(t, ok)
}

// TestHeapProperty_RandomOps checks the invariant after every completed
// operation and that extraction yields values in non-increasing order.
func TestHeapProperty_RandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	h := maxheap.New()
	var model []int
	for step := 0; step < 500; step++ {
		switch op := rng.Intn(10); {
		case op == 0:
			vals := make([]int, rng.Intn(12))
			for i := range vals {
				vals[i] = rng.Intn(50) - 10
			}
			h.Create(vals)
			model = slices.Clone(vals)
		case op < 6:
			v := rng.Intn(50)
			h.Insert(v)
			model = append(model, v)
		default:
			got, _ := h.ExtractMax()
			if len(model) == 0 {
				assert.Nil(t, got)
				continue
			}
			require.NotNil(t, got)
			assert.Equal(t, slices.Max(model), *got)
			model = slices.Delete(model, slices.Index(model, *got), slices.Index(model, *got)+1)
		}
		require.True(t, maxheap.IsMaxHeap(h.Values()), "step %d: %v", step, h.Values())
		require.ElementsMatch(t, model, h.Values())
	}
}

func TestSiftDown_NilEmitter(t *testing.T) {
	a := []int{1, 5, 4, 3, 2}
	maxheap.SiftDown(a, len(a), 0, nil)
	assert.Equal(t, 5, a[0])
	assert.True(t, maxheap.IsMaxHeap(a))
}
