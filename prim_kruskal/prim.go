// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/snapshot"
)

// primStart is the fixed root of Prim's algorithm.
const primStart = 0

// Prim grows a minimum spanning tree from node 0 and records each frontier
// expansion and edge decision.
//
// Steps:
//  1. Validate: graph != nil and node 0 exists.
//  2. Mark node 0 visited and push all of its adjacency entries.
//  3. While the heap is non-empty and not every node is visited:
//     a. Pop the minimum (weight, to, from) entry.
//     b. If to is already visited, record a skip.
//     c. Otherwise accept the edge, visit to, and push its entries to
//     unvisited neighbors.
//  4. Record the total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph) (*MSTResult, error) {
	// 1. Validate
	if graph == nil {
		return nil, ErrGraphNil
	}
	if err := graph.CheckNode(primStart); err != nil {
		return nil, fmt.Errorf("prim_kruskal: prim start: %w", err)
	}
	if _, err := graph.WeightBound(); err != nil {
		return nil, fmt.Errorf("prim_kruskal: %w", err)
	}

	n := graph.Order()
	view := core.NewView(graph)
	rec := snapshot.NewRecorder(2*n + graph.EdgeCount() + 2)
	res := &MSTResult{Edges: make([]core.Edge, 0, n)}
	pq := make(edgePQ, 0, graph.EdgeCount())
	heap.Init(&pq)

	// 2. Seed from the root. The root's own entries are pushed unfiltered.
	rec.Record(view.Snapshot(primStart, fmt.Sprintf("Starting Prim's MST algorithm from node %d", primStart)))
	view.Visit(primStart)
	nbs, _ := graph.Neighbors(primStart)
	for _, nb := range nbs {
		heap.Push(&pq, core.Edge{From: primStart, To: nb.To, Weight: nb.Weight})
	}
	rec.Record(view.Snapshot(primStart, fmt.Sprintf("Added all edges from node %d to priority queue", primStart)))

	// 3. Grow
	for pq.Len() > 0 && view.VisitedCount() < n {
		e := heap.Pop(&pq).(core.Edge)

		if view.Visited(e.To) {
			res.Rejected = append(res.Rejected, e)
			rec.Record(view.Snapshot(core.NoCurrent,
				fmt.Sprintf("Edge %d -> %d connects to already visited node - skipping", e.From, e.To)))
			continue
		}

		res.Edges = append(res.Edges, e)
		res.Total += int64(e.Weight)
		view.Visit(e.To)
		rec.Record(view.Snapshot(e.To,
			fmt.Sprintf("Added edge %d -> %d to MST (weight: %d)", e.From, e.To, e.Weight)))

		nbs, _ = graph.Neighbors(e.To)
		for _, nb := range nbs {
			if !view.Visited(nb.To) {
				heap.Push(&pq, core.Edge{From: e.To, To: nb.To, Weight: nb.Weight})
			}
		}
		rec.Record(view.Snapshot(e.To, fmt.Sprintf("Added all edges from node %d to priority queue", e.To)))
	}

	// 4. Finish
	rec.Record(view.Snapshot(core.NoCurrent,
		fmt.Sprintf("Prim's MST algorithm complete. Total MST weight: %d", res.Total)))
	res.Trace = rec.Finish()

	return res, nil
}

// edgePQ is a min-heap of candidate edges ordered by (Weight, To, From).
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then target, then source.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.To != b.To {
		return a.To < b.To
	}
	return a.From < b.From
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a core.Edge.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
