// SPDX-License-Identifier: MIT

package maxheap

import "errors"

// ErrIndexOutOfRange is returned by Heapify for an index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("maxheap: index out of range")

// Emitter receives one sift-down step: a status line and up to two
// highlighted positions. The callee snapshots the slice being sifted.
type Emitter func(status string, highlights ...int)

// Heap is an array-backed max-heap of ints.
type Heap struct {
	data []int
}

// New returns an empty Heap.
func New() *Heap { return &Heap{} }

// Len returns the number of elements.
func (h *Heap) Len() int { return len(h.data) }

// Values returns a copy of the backing array in heap order.
func (h *Heap) Values() []int {
	out := make([]int, len(h.data))
	copy(out, h.data)
	return out
}

// Peek returns the maximum without removing it; ok is false on an empty heap.
func (h *Heap) Peek() (max int, ok bool) {
	if len(h.data) == 0 {
		return 0, false
	}
	return h.data[0], true
}

// IsMaxHeap reports whether a satisfies the max-heap property.
func IsMaxHeap(a []int) bool {
	for i := range a {
		if l := 2*i + 1; l < len(a) && a[l] > a[i] {
			return false
		}
		if r := 2*i + 2; r < len(a) && a[r] > a[i] {
			return false
		}
	}
	return true
}
