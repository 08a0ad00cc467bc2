// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/snapshot"
)

// ErrGraphNil indicates that a nil *core.Graph was passed in.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates an MSTOptions.Method that is neither MethodPrim
// nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from node 0 using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions selecting Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// MSTResult is the outcome of one traced MST run.
type MSTResult struct {
	// Edges are the accepted tree edges in acceptance order.
	Edges []core.Edge

	// Rejected are the edges skipped because they would close a cycle
	// (Kruskal) or lead to a node already in the tree (Prim), in order.
	Rejected []core.Edge

	// Total is the sum of the accepted edge weights.
	Total int64

	// Trace is the recorded step sequence.
	Trace snapshot.Trace
}

// Compute selects and runs the MST algorithm chosen by opts.
func Compute(graph *core.Graph, opts ...Option) (*MSTResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph)
	default:
		return nil, ErrUnknownMethod
	}
}
