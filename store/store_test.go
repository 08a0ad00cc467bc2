package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algotrace/bst"
	"github.com/katalvlaran/algotrace/maxheap"
	"github.com/katalvlaran/algotrace/store"
)

// TestConcurrentMutation hammers both structures from many goroutines; run
// with -race to verify serialization.
func TestConcurrentMutation(t *testing.T) {
	s := store.New()
	const workers, perWorker = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				v := w*perWorker + i
				s.WithTree(func(tr *bst.Tree) { tr.Insert(v) })
				s.WithHeap(func(h *maxheap.Heap) { h.Insert(v) })
			}
		}(w)
	}
	wg.Wait()

	st := s.Stats()
	assert.Equal(t, workers*perWorker, st.TreeSize)
	assert.Equal(t, workers*perWorker, st.HeapSize)
	s.WithHeap(func(h *maxheap.Heap) {
		assert.True(t, maxheap.IsMaxHeap(h.Values()))
	})
	s.WithTree(func(tr *bst.Tree) {
		vals := tr.InOrder()
		for i := 1; i < len(vals); i++ {
			assert.LessOrEqual(t, vals[i-1], vals[i])
		}
	})
}

func TestZeroValue(t *testing.T) {
	var s store.Store
	assert.Equal(t, store.Stats{}, s.Stats())
}
