// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algotrace/snapshot"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds callbacks to observe BFS execution.
type BFSOptions struct {
	// OnEnqueue is called when a node is discovered and enqueued.
	OnEnqueue func(id, depth int)

	// OnVisit is called when a node is dequeued for processing.
	OnVisit func(id, depth int)
}

// DefaultOptions returns BFSOptions with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a node is processed.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
	Trace  snapshot.Trace
}

// PathTo reconstructs the path from the start node to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
