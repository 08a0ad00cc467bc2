// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/snapshot"
)

// Kruskal computes a minimum spanning forest of graph and records every
// edge decision.
//
// Steps:
//  1. Collect graph.UndirectedEdges() (source < target).
//  2. Sort by (weight, source, target).
//  3. For each edge: record "considering", then accept it if its endpoints
//     lie in different union-find sets, otherwise reject it.
//  4. Record the total weight of accepted edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(graph *core.Graph) (*MSTResult, error) {
	// 1. Validate
	if graph == nil {
		return nil, ErrGraphNil
	}
	if _, err := graph.WeightBound(); err != nil {
		return nil, fmt.Errorf("prim_kruskal: %w", err)
	}

	// 2. Collect and sort edges
	edges := graph.UndirectedEdges()
	slices.SortFunc(edges, func(a, b core.Edge) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	// 3. Disjoint-set over node indices
	n := graph.Order()
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression (path halving).
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the roots of u and v by rank; reports false when they
	// already share a root.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 4. Process every edge in order
	view := core.NewView(graph)
	rec := snapshot.NewRecorder(2*len(edges) + 2)
	res := &MSTResult{Edges: make([]core.Edge, 0, n)}

	rec.Record(view.Snapshot(core.NoCurrent, "Starting Kruskal's MST algorithm"))
	for _, e := range edges {
		rec.Record(view.Snapshot(core.NoCurrent,
			fmt.Sprintf("Considering edge %d -> %d with weight %d", e.From, e.To, e.Weight)))

		if !union(e.From, e.To) {
			res.Rejected = append(res.Rejected, e)
			rec.Record(view.Snapshot(core.NoCurrent,
				fmt.Sprintf("Edge %d -> %d would create a cycle - skipping", e.From, e.To)))
			continue
		}

		res.Edges = append(res.Edges, e)
		res.Total += int64(e.Weight)
		view.Visit(e.From)
		view.Visit(e.To)
		rec.Record(view.Snapshot(core.NoCurrent,
			fmt.Sprintf("Added edge %d -> %d to MST (weight: %d)", e.From, e.To, e.Weight)))
	}
	rec.Record(view.Snapshot(core.NoCurrent,
		fmt.Sprintf("Kruskal's MST algorithm complete. Total MST weight: %d", res.Total)))

	res.Trace = rec.Finish()

	return res, nil
}
