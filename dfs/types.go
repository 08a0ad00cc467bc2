// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"

	"github.com/katalvlaran/algotrace/snapshot"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds the hooks invoked during traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a node is first visited (pre-order).
	OnVisit func(id int)
}

// DefaultOptions returns a DFSOptions with no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{OnVisit: nil}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they were first visited (pre-order).
	Order []int

	// Parent maps each node to the node whose stack entry led to its visit;
	// -1 for the start node and unreached nodes.
	Parent []int

	// Trace is the recorded step sequence.
	Trace snapshot.Trace
}
