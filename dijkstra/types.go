// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/algotrace/snapshot"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by Result.PathTo for a node without a finite distance.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Infinity is the distance of a node that was never reached.
const Infinity int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source          : starting node index (validated against the graph).
// MaxDistance     : nodes whose distance would exceed this are not explored.
// InfEdgeThreshold: edges with weight ≥ this threshold are impassable.
type Options struct {
	Source           int
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node index.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance caps exploration: nodes farther than max keep Infinity.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as absent.
// Such edges are never considered and produce no snapshot.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options starting at node 0 with no distance cap
// and no impassable edges.
func DefaultOptions() Options {
	return Options{
		Source:           0,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result holds the outcome of one traced run.
type Result struct {
	// Source is the start node of the run.
	Source int

	// Dist[v] is the shortest distance from Source, or Infinity.
	Dist []int64

	// Prev[v] is v's predecessor on a shortest path; -1 for Source and
	// unreached nodes.
	Prev []int

	// Order lists nodes in finalization order.
	Order []int

	// Trace is the recorded step sequence.
	Trace snapshot.Trace
}

// Reachable reports whether v received a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinity
}

// PathTo reconstructs the shortest path Source → dest using Prev.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reachable(dest) {
		return nil, ErrUnreachable
	}
	var path []int
	for cur := dest; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
