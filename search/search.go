// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algotrace/snapshot"
)

// ErrUnknownAlgorithm is returned by Run for a name other than Linear or Binary.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// NotFound is the index reported when the target is absent.
const NotFound = -1

// Algorithm names accepted by Run.
const (
	Linear = "linear"
	Binary = "binary"
)

// Algorithms returns the accepted names in catalog order.
func Algorithms() []string { return []string{Linear, Binary} }

// Run dispatches to LinearSearch or BinarySearch by name.
func Run(name string, values []int, target int) (int, snapshot.Trace, error) {
	switch name {
	case Linear:
		idx, tr := LinearSearch(values, target)
		return idx, tr, nil
	case Binary:
		idx, tr := BinarySearch(values, target)
		return idx, tr, nil
	default:
		return NotFound, nil, ErrUnknownAlgorithm
	}
}

// LinearSearch scans values left to right and returns the first index
// holding target, or NotFound.
// Complexity: O(n) comparisons.
func LinearSearch(values []int, target int) (int, snapshot.Trace) {
	rec := snapshot.NewRecorder(len(values) + 1)
	for i, v := range values {
		rec.Array(values, fmt.Sprintf("Checking element at index %d", i), i)
		if v == target {
			rec.Array(values, fmt.Sprintf("Found target at index %d", i), i)
			return i, rec.Finish()
		}
	}
	rec.Array(values, "Target not found in array")

	return NotFound, rec.Finish()
}

// BinarySearch halves [low, high] around target in ascending values and
// returns an index holding target, or NotFound.
// Complexity: O(log n) comparisons.
func BinarySearch(values []int, target int) (int, snapshot.Trace) {
	rec := snapshot.NewRecorder(2*bitLen(len(values)) + 2)
	low, high := 0, len(values)-1
	for low <= high {
		mid := low + (high-low)/2
		rec.Array(values, fmt.Sprintf("Checking mid element at index %d", mid), mid)

		switch {
		case values[mid] == target:
			rec.Array(values, fmt.Sprintf("Found target at index %d", mid), mid)
			return mid, rec.Finish()
		case values[mid] < target:
			rec.Array(values, "Target is greater, moving to right half", mid)
			low = mid + 1
		default:
			rec.Array(values, "Target is smaller, moving to left half", mid)
			high = mid - 1
		}
	}
	rec.Array(values, "Target not found in array")

	return NotFound, rec.Finish()
}

func bitLen(n int) int {
	b := 0
	for ; n > 0; n >>= 1 {
		b++
	}
	return b
}
