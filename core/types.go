// SPDX-License-Identifier: MIT

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeIndex indicates a node index outside [0, Order()).
	ErrInvalidNodeIndex = errors.New("core: node index out of range")

	// ErrBadNeighbor indicates an adjacency entry that is neither an object
	// {"target":t,"weight":w} nor a pair [t, w].
	ErrBadNeighbor = errors.New("core: malformed adjacency entry")

	// ErrWeightOverflow indicates edge weights whose total does not fit
	// below math.MaxInt64.
	ErrWeightOverflow = errors.New("core: total edge weight overflows int64")
)

// Neighbor is one (target, weight) entry of a node's adjacency list.
type Neighbor struct {
	To     int `json:"target"`
	Weight int `json:"weight"`
}

// UnmarshalJSON accepts both {"target":1,"weight":4} and [1,4].
func (n *Neighbor) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("%w: pair of length %d", ErrBadNeighbor, len(pair))
		}
		n.To, n.Weight = pair[0], pair[1]
		return nil
	}

	var obj struct {
		To     *int `json:"target"`
		Weight int  `json:"weight"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: %v", ErrBadNeighbor, err)
	}
	if obj.To == nil {
		return fmt.Errorf("%w: missing target", ErrBadNeighbor)
	}
	n.To, n.Weight = *obj.To, obj.Weight

	return nil
}

// Edge is a weighted connection From→To as stored in the adjacency list.
type Edge struct {
	From   int `json:"source"`
	To     int `json:"target"`
	Weight int `json:"weight"`
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge stores only from→to (true, the default)
// or mirrors the entry into to's list as well (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an indexed, weighted adjacency list.
// mu guards adj; node count is len(adj).
type Graph struct {
	mu       sync.RWMutex
	directed bool
	adj      [][]Neighbor
}

// NewGraph creates a Graph with n isolated nodes (n < 0 is treated as 0).
// By default the graph is directed.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{directed: true, adj: make([][]Neighbor, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
