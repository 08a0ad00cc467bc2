// SPDX-License-Identifier: MIT

// Package maxheap implements an array-backed max-heap whose mutating
// operations return the recorded trace of every comparison and swap.
//
// Layout: children of index i live at 2i+1 and 2i+2; the parent of i > 0 is
// (i-1)/2. After every completed operation heap[i] >= heap[2i+1] and
// heap[i] >= heap[2i+2] for all valid indices.
//
// SiftDown is exported with an emit callback so that heap sort (package
// sorting) records exactly the same step policy on an ArraySnapshot trace.
//
// A Heap is not safe for concurrent use. The persistent instance shared
// between requests lives in package store, which serializes access.
package maxheap
