// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/algotrace/snapshot"
)

// BubbleSort repeatedly compares adjacent pairs (j, j+1) and swaps them when
// out of order. Each pass shrinks the unsorted prefix by one.
// Complexity: O(n²) comparisons.
func BubbleSort(values []int) snapshot.Trace {
	n := len(values)
	r := newRun(values, "bubble", n*n+2)
	a := r.a
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			r.emit(fmt.Sprintf("Comparing %d and %d", a[j], a[j+1]), j, j+1)
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				r.emit(fmt.Sprintf("Swapped %d and %d", a[j+1], a[j]), j, j+1)
			}
		}
	}
	return r.finish()
}

// InsertionSort shifts larger elements of the sorted prefix one slot right
// and drops the held key into the gap. Every evaluation of a[j] > key is a
// comparison, including the one that ends the shift.
// Complexity: O(n²) comparisons.
func InsertionSort(values []int) snapshot.Trace {
	n := len(values)
	r := newRun(values, "insertion", n*n+2)
	a := r.a
	for i := 1; i < n; i++ {
		key := a[i]
		j := i - 1
		for j >= 0 {
			r.emit(fmt.Sprintf("Comparing key %d with %d", key, a[j]), j, j+1)
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			r.emit(fmt.Sprintf("Shifted %d right to index %d", a[j+1], j+1), j+1)
			j--
		}
		a[j+1] = key
		r.emit(fmt.Sprintf("Inserted key %d at index %d", key, j+1), j+1)
	}
	return r.finish()
}

// SelectionSort finds the minimum of the unsorted suffix and swaps it into
// place. No swap is recorded when the minimum is already in position.
// Complexity: O(n²) comparisons, O(n) swaps.
func SelectionSort(values []int) snapshot.Trace {
	n := len(values)
	r := newRun(values, "selection", n*n/2+n+2)
	a := r.a
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			r.emit(fmt.Sprintf("Comparing %d with current minimum %d", a[j], a[minIdx]), minIdx, j)
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
			r.emit(fmt.Sprintf("Swapped %d into position %d", a[i], i), i, minIdx)
		}
	}
	return r.finish()
}
