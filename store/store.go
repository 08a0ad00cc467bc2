// SPDX-License-Identifier: MIT

// Package store owns the long-lived data structures that tree and heap
// operations mutate across independent requests.
//
// Each structure sits behind its own mutex and is reachable only through
// WithTree / WithHeap, so two operations on the same structure never
// interleave. Operations on different structures proceed in parallel.
package store

import (
	"sync"

	"github.com/katalvlaran/algotrace/bst"
	"github.com/katalvlaran/algotrace/maxheap"
)

// Store holds one persistent BST and one persistent max-heap.
// The zero value is ready to use.
type Store struct {
	treeMu sync.Mutex
	tree   *bst.Tree

	heapMu sync.Mutex
	heap   *maxheap.Heap
}

// New returns an empty Store.
func New() *Store { return &Store{} }

// WithTree runs fn with exclusive access to the persistent tree. fn must
// not retain the pointer after it returns.
func (s *Store) WithTree(fn func(t *bst.Tree)) {
	s.treeMu.Lock()
	defer s.treeMu.Unlock()

	if s.tree == nil {
		s.tree = bst.New()
	}
	fn(s.tree)
}

// WithHeap runs fn with exclusive access to the persistent heap. fn must
// not retain the pointer after it returns.
func (s *Store) WithHeap(fn func(h *maxheap.Heap)) {
	s.heapMu.Lock()
	defer s.heapMu.Unlock()

	if s.heap == nil {
		s.heap = maxheap.New()
	}
	fn(s.heap)
}

// Stats is a point-in-time summary of the persistent structures.
type Stats struct {
	TreeSize   int `json:"treeSize"`
	TreeHeight int `json:"treeHeight"`
	HeapSize   int `json:"heapSize"`
}

// Stats reads both structures, each under its own lock.
func (s *Store) Stats() Stats {
	var st Stats
	s.WithTree(func(t *bst.Tree) {
		st.TreeSize, st.TreeHeight = t.Len(), t.Height()
	})
	s.WithHeap(func(h *maxheap.Heap) {
		st.HeapSize = h.Len()
	})
	return st
}
