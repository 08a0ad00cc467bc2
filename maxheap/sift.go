// SPDX-License-Identifier: MIT

package maxheap

import "fmt"

// SiftDown restores the max-heap property for the subtree rooted at i,
// considering only a[:n]. Each step is reported to emit, when non-nil:
//
//	"Heapifying at index i"                                      (i)
//	"Comparing x with left child y"                              (i, left)
//	"Left child is larger, updating largest to index l"          (l)
//	"Comparing x with right child y"                             (largest, right)
//	"Right child is larger, updating largest to index r"         (r)
//	"Swapping x with y"                                          (i, largest)
//	"Swapped elements, now heapifying the affected subtree"      (i, largest)
//	"Node at index i is already a max heap"                      (i)
//
// After a swap the walk continues at the former largest child.
// Complexity: O(log n) steps.
func SiftDown(a []int, n, i int, emit Emitter) {
	if emit == nil {
		emit = func(string, ...int) {}
	}
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		emit(fmt.Sprintf("Heapifying at index %d", i), i)

		if left < n {
			emit(fmt.Sprintf("Comparing %d with left child %d", a[i], a[left]), i, left)
			if a[left] > a[largest] {
				largest = left
				emit(fmt.Sprintf("Left child is larger, updating largest to index %d", largest), largest)
			}
		}
		if right < n {
			emit(fmt.Sprintf("Comparing %d with right child %d", a[largest], a[right]), largest, right)
			if a[right] > a[largest] {
				largest = right
				emit(fmt.Sprintf("Right child is larger, updating largest to index %d", largest), largest)
			}
		}

		if largest == i {
			emit(fmt.Sprintf("Node at index %d is already a max heap", i), i)
			return
		}

		emit(fmt.Sprintf("Swapping %d with %d", a[i], a[largest]), i, largest)
		a[i], a[largest] = a[largest], a[i]
		emit("Swapped elements, now heapifying the affected subtree", i, largest)
		i = largest
	}
}

// Build turns a[:len(a)] into a max-heap bottom-up, from the last non-leaf
// index down to 0. Before each sift-down emit receives
// "Processing node at index i".
// Complexity: O(n) swaps.
func Build(a []int, emit Emitter) {
	if emit == nil {
		emit = func(string, ...int) {}
	}
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		emit(fmt.Sprintf("Processing node at index %d", i), i)
		SiftDown(a, n, i, emit)
	}
}
