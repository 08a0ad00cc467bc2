// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"slices"

	"github.com/katalvlaran/algotrace/snapshot"
)

// ErrUnknownAlgorithm is returned by Run for a name not in Algorithms.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm names accepted by Run.
const (
	Bubble    = "bubble"
	Insertion = "insertion"
	Selection = "selection"
	Merge     = "merge"
	Quick     = "quick"
	Heap      = "heap"
)

// Func is the signature shared by every traced sort.
type Func func(values []int) snapshot.Trace

var registry = map[string]Func{
	Bubble:    BubbleSort,
	Insertion: InsertionSort,
	Selection: SelectionSort,
	Merge:     MergeSort,
	Quick:     QuickSort,
	Heap:      HeapSort,
}

// Algorithms returns the accepted names in catalog order.
func Algorithms() []string {
	return []string{Bubble, Insertion, Selection, Merge, Quick, Heap}
}

// Lookup returns the sort registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Run sorts a copy of values with the named algorithm.
func Run(name string, values []int) (snapshot.Trace, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}
	return fn(values), nil
}

// MaxSteps returns an upper bound on the length of the trace the named
// sort records for n values, or false for an unknown name. The bound
// holds for every input order.
func MaxSteps(name string, n int) (int, bool) {
	if n < 0 {
		n = 0
	}
	switch name {
	case Bubble, Insertion, Selection, Quick:
		// Quick sort's worst case is a sorted input; every partition of k
		// values records at most 2k steps.
		return n*n + n + 2, true
	case Merge:
		return 2*n*bitLen(n) + n + 2, true
	case Heap:
		return 11*n*(bitLen(n)+1) + 2, true
	}
	return 0, false
}

// Result extracts the sorted array from a trace: the array of its last
// snapshot, or nil when the trace does not end with an ArraySnapshot.
func Result(tr snapshot.Trace) []int {
	if as, ok := tr.Last().(snapshot.ArraySnapshot); ok {
		return slices.Clone(as.Array)
	}
	return nil
}

// run owns the working copy and the recorder of one sort.
type run struct {
	a   []int
	rec *snapshot.Recorder
}

func newRun(values []int, name string, hint int) *run {
	r := &run{a: slices.Clone(values), rec: snapshot.NewRecorder(hint)}
	if r.a == nil {
		r.a = []int{}
	}
	r.emit("Starting " + name + " sort")
	return r
}

// emit records the current state of the working copy.
func (r *run) emit(status string, highlights ...int) {
	r.rec.Array(r.a, status, highlights...)
}

func (r *run) finish() snapshot.Trace {
	r.emit("Array is sorted")
	return r.rec.Finish()
}
