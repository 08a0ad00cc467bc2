// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"slices"
)

// FromAdjacency adopts a copy of adj verbatim: node i owns adj[i] in the
// given order, and no entries are mirrored. Every target must be a valid
// node index, otherwise ErrInvalidNodeIndex is returned.
// Complexity: O(V + E)
func FromAdjacency(adj [][]Neighbor) (*Graph, error) {
	n := len(adj)
	g := NewGraph(n)
	for from, list := range adj {
		for k, nb := range list {
			if nb.To < 0 || nb.To >= n {
				return nil, fmt.Errorf("%w: edge #%d of node %d targets %d, graph has %d nodes",
					ErrInvalidNodeIndex, k, from, nb.To, n)
			}
		}
		g.adj[from] = slices.Clone(list)
	}

	return g, nil
}

// AddEdge appends (to, weight) to from's list. In an undirected graph a
// mirror entry (from, weight) is appended to to's list, except for loops.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(from, to, weight int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidNodeIndex, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidNodeIndex, to, n)
	}
	g.adj[from] = append(g.adj[from], Neighbor{To: to, Weight: weight})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Neighbor{To: from, Weight: weight})
	}

	return nil
}

// HasEdge reports whether from's list contains an entry targeting to.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.adj) {
		return false
	}
	return slices.ContainsFunc(g.adj[from], func(nb Neighbor) bool { return nb.To == to })
}

// Order returns the number of nodes.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Directed reports whether AddEdge stores one-way entries.
func (g *Graph) Directed() bool { return g.directed }

// HasNode reports whether i is a valid node index.
func (g *Graph) HasNode(i int) bool {
	return i >= 0 && i < g.Order()
}

// CheckNode returns nil when i is a valid node index and a wrapped
// ErrInvalidNodeIndex otherwise.
func (g *Graph) CheckNode(i int) error {
	if n := g.Order(); i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidNodeIndex, i, n)
	}
	return nil
}

// Neighbors returns a copy of i's adjacency list in stored order.
// Complexity: O(deg(i))
func (g *Graph) Neighbors(i int) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidNodeIndex, i, len(g.adj))
	}
	return slices.Clone(g.adj[i]), nil
}

// Edges returns every stored adjacency entry as an Edge, ordered by source
// node and then by stored position. Mirrored entries appear twice.
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for from, list := range g.adj {
		for _, nb := range list {
			out = append(out, Edge{From: from, To: nb.To, Weight: nb.Weight})
		}
	}
	return out
}

// UndirectedEdges returns the entries with From < To, which counts every
// mirrored undirected edge exactly once. Loops and entries pointing to a
// smaller index are ignored.
func (g *Graph) UndirectedEdges() []Edge {
	all := g.Edges()
	out := all[:0]
	for _, e := range all {
		if e.From < e.To {
			out = append(out, e)
		}
	}
	return out
}

// EdgeCount returns the number of stored adjacency entries.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, list := range g.adj {
		total += len(list)
	}
	return total
}

// WeightBound returns the sum of |weight| over every stored entry. Any path
// or tree cost in g lies within [-bound, bound]. When the sum reaches
// math.MaxInt64 a wrapped ErrWeightOverflow is returned instead.
// Complexity: O(V + E)
func (g *Graph) WeightBound() (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total int64
	for from, list := range g.adj {
		for _, nb := range list {
			w := int64(nb.Weight)
			if w == math.MinInt64 {
				return 0, fmt.Errorf("%w: edge %d→%d weight=%d", ErrWeightOverflow, from, nb.To, w)
			}
			if w < 0 {
				w = -w
			}
			if w >= math.MaxInt64-total {
				return 0, fmt.Errorf("%w: at edge %d→%d weight=%d", ErrWeightOverflow, from, nb.To, nb.Weight)
			}
			total += w
		}
	}
	return total, nil
}

// Adjacency returns a deep copy of the adjacency list.
func (g *Graph) Adjacency() [][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Neighbor, len(g.adj))
	for i, list := range g.adj {
		out[i] = slices.Clone(list)
		if out[i] == nil {
			out[i] = []Neighbor{}
		}
	}
	return out
}

// Clone returns an independent deep copy of g, preserving its flags.
func (g *Graph) Clone() *Graph {
	adj := g.Adjacency()
	return &Graph{directed: g.directed, adj: adj}
}
