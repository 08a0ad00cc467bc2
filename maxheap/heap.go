// SPDX-License-Identifier: MIT

package maxheap

import (
	"fmt"

	"github.com/katalvlaran/algotrace/snapshot"
)

// recorderEmitter adapts a Recorder to an Emitter over the live heap slice.
func (h *Heap) recorderEmitter(rec *snapshot.Recorder) Emitter {
	return func(status string, highlights ...int) {
		rec.Heap(h.data, status, highlights...)
	}
}

// Create replaces the heap contents with a copy of values and builds a
// max-heap bottom-up.
func (h *Heap) Create(values []int) snapshot.Trace {
	rec := snapshot.NewRecorder(4 + 8*len(values))

	rec.Heap(nil, "Creating new heap from array")
	h.data = make([]int, len(values))
	copy(h.data, values)
	rec.Heap(h.data, "Copied array to heap, now building max heap")

	rec.Heap(h.data, "Starting to build max heap from array")
	Build(h.data, h.recorderEmitter(rec))
	rec.Heap(h.data, "Max heap built successfully")

	return rec.Finish()
}

// Insert appends v and sifts it up, comparing with the parent (i-1)/2 at
// each level until the root or the first parent that is not smaller.
func (h *Heap) Insert(v int) snapshot.Trace {
	rec := snapshot.NewRecorder(8)

	rec.Heap(h.data, fmt.Sprintf("Starting insertion of %d", v))
	h.data = append(h.data, v)
	i := len(h.data) - 1
	rec.Heap(h.data, fmt.Sprintf("Inserted %d at the end of heap", v), i)

	for i > 0 {
		parent := (i - 1) / 2
		rec.Heap(h.data, fmt.Sprintf("Comparing %d with parent %d", h.data[i], h.data[parent]), i, parent)
		if h.data[i] <= h.data[parent] {
			rec.Heap(h.data, "Heap property satisfied, stopping", i)
			break
		}
		rec.Heap(h.data, "Child is greater than parent, swapping", i, parent)
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		rec.Heap(h.data, fmt.Sprintf("Swapped %d with %d", h.data[parent], h.data[i]), parent)
		i = parent
	}
	rec.Heap(h.data, "Insertion complete, heap property restored")

	return rec.Finish()
}

// ExtractMax removes and returns the root. On an empty heap the returned
// pointer is nil and the trace reports that nothing was extracted.
func (h *Heap) ExtractMax() (*int, snapshot.Trace) {
	rec := snapshot.NewRecorder(8)

	rec.Heap(h.data, "Starting extract max operation")
	if len(h.data) == 0 {
		rec.Heap(nil, "Heap is empty, nothing to extract")
		return nil, rec.Finish()
	}

	max := h.data[0]
	rec.Heap(h.data, fmt.Sprintf("Maximum value is %d (at root)", max), 0)

	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]

	if len(h.data) > 0 {
		rec.Heap(h.data, fmt.Sprintf("Replaced root with last element %d", h.data[0]), 0)
		SiftDown(h.data, len(h.data), 0, h.recorderEmitter(rec))
	} else {
		rec.Heap(nil, "Heap is now empty")
	}
	rec.Heap(h.data, fmt.Sprintf("Extracted %d, heap property restored", max))

	return &max, rec.Finish()
}

// Heapify sifts down from index i over the whole heap.
func (h *Heap) Heapify(i int) (snapshot.Trace, error) {
	if i < 0 || i >= len(h.data) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(h.data))
	}
	rec := snapshot.NewRecorder(8)
	SiftDown(h.data, len(h.data), i, h.recorderEmitter(rec))
	return rec.Finish(), nil
}

// Clear empties the heap.
func (h *Heap) Clear() snapshot.Trace {
	rec := snapshot.NewRecorder(2)
	rec.Heap(h.data, "Clearing the heap")
	h.data = nil
	rec.Heap(nil, "Heap cleared")

	return rec.Finish()
}
