// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/algotrace/maxheap"
	"github.com/katalvlaran/algotrace/snapshot"
)

// MergeSort splits [l, r] at l+(r-l)/2, sorts both halves and merges them
// through temporary copies. A bracket snapshot (l, r) precedes each split.
// Compares highlight the heads of both runs; each placement highlights the
// written index.
// Complexity: O(n log n) comparisons, O(n) extra memory.
func MergeSort(values []int) snapshot.Trace {
	n := len(values)
	r := newRun(values, "merge", 4*n*(bitLen(n)+1)+2)
	r.mergeSort(0, n-1)
	return r.finish()
}

func (r *run) mergeSort(l, h int) {
	if l >= h {
		return
	}
	mid := l + (h-l)/2
	r.emit(fmt.Sprintf("Dividing range [%d, %d]", l, h), l, h)
	r.mergeSort(l, mid)
	r.mergeSort(mid+1, h)
	r.merge(l, mid, h)
}

func (r *run) merge(l, mid, h int) {
	a := r.a
	left := append([]int(nil), a[l:mid+1]...)
	right := append([]int(nil), a[mid+1:h+1]...)

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		r.emit(fmt.Sprintf("Comparing %d and %d", left[i], right[j]), l+i, mid+1+j)
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		r.emit(fmt.Sprintf("Placed %d at index %d", a[k], k), k)
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		a[k] = left[i]
		r.emit(fmt.Sprintf("Placed %d at index %d", a[k], k), k)
	}
	for ; j < len(right); j, k = j+1, k+1 {
		a[k] = right[j]
		r.emit(fmt.Sprintf("Placed %d at index %d", a[k], k), k)
	}
}

// QuickSort partitions [low, high] Lomuto-style around the last element.
// A bracket snapshot naming the pivot precedes each partition.
// Complexity: O(n log n) expected, O(n²) worst case comparisons.
func QuickSort(values []int) snapshot.Trace {
	n := len(values)
	r := newRun(values, "quick", 2*n*(bitLen(n)+1)+2)
	r.quickSort(0, n-1)
	return r.finish()
}

func (r *run) quickSort(low, high int) {
	if low >= high {
		return
	}
	p := r.partition(low, high)
	r.quickSort(low, p-1)
	r.quickSort(p+1, high)
}

func (r *run) partition(low, high int) int {
	a := r.a
	pivot := a[high]
	r.emit(fmt.Sprintf("Partitioning range [%d, %d] with pivot %d", low, high, pivot), low, high)

	i := low - 1
	for j := low; j < high; j++ {
		r.emit(fmt.Sprintf("Comparing %d with pivot %d", a[j], pivot), j, high)
		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
			r.emit(fmt.Sprintf("Swapped %d and %d", a[i], a[j]), i, j)
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	r.emit(fmt.Sprintf("Placed pivot %d at index %d", pivot, i+1), i+1, high)

	return i + 1
}

// HeapSort builds a max-heap in place, then repeatedly moves the root to
// the end of the shrinking heap and sifts the new root down. Both phases
// record the maxheap.SiftDown step policy.
// Complexity: O(n log n) comparisons.
func HeapSort(values []int) snapshot.Trace {
	n := len(values)
	r := newRun(values, "heap", 8*n*(bitLen(n)+1)+2)
	a := r.a

	maxheap.Build(a, r.emit)
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		r.emit(fmt.Sprintf("Moved max %d to index %d", a[end], end), 0, end)
		maxheap.SiftDown(a, end, 0, r.emit)
	}
	return r.finish()
}

// bitLen is ⌊log2 n⌋+1, used only for capacity hints.
func bitLen(n int) int {
	b := 0
	for ; n > 0; n >>= 1 {
		b++
	}
	return b
}
