// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/snapshot"
)

// Dijkstra computes shortest distances from Options.Source to every node of
// g and records the trace of the run.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be a node of g (core.ErrInvalidNodeIndex).
//  3. MaxDistance ≥ 0 and InfEdgeThreshold > 0.
//  4. No stored edge may have a negative weight (ErrNegativeWeight).
//  5. The weights must sum below Infinity (core.ErrWeightOverflow), so
//     every finite distance is exact.
//
// Nothing is recorded when validation fails.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.CheckNode(cfg.Source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}
	if cfg.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}
	if cfg.InfEdgeThreshold <= 0 {
		return nil, ErrBadInfThreshold
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}
	if _, err := g.WeightBound(); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 3) Prepare runner
	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		view:    core.NewView(g),
		rec:     snapshot.NewRecorder(2*n + g.EdgeCount() + 2),
		dist:    make([]int64, n),
		prev:    make([]int, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Run
	r.init()
	r.process()
	r.rec.Record(r.view.Snapshot(core.NoCurrent, r.summary()))

	return &Result{
		Source: cfg.Source,
		Dist:   r.dist,
		Prev:   r.prev,
		Order:  r.order,
		Trace:  r.rec.Finish(),
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	view    *core.View // finalized set; a node is visited once popped
	rec     *snapshot.Recorder
	dist    []int64
	prev    []int
	order   []int
	pq      nodePQ
}

// init sets every distance to Infinity, the source to 0, and seeds the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = -1
	}
	src := r.options.Source
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})

	r.rec.Record(r.view.Snapshot(src, fmt.Sprintf("Starting Dijkstra's algorithm from node %d", src)))
}

// process pops the closest unfinalized node until the heap is exhausted or
// the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// stale entry
		if r.view.Visited(u) {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		r.view.Visit(u)
		r.order = append(r.order, u)
		r.rec.Record(r.view.Snapshot(u, fmt.Sprintf("Processing node %d with distance %d", u, d)))

		r.relax(u, d)
	}
}

// relax examines u's adjacency list in stored order.
func (r *runner) relax(u int, d int64) {
	nbs, _ := r.g.Neighbors(u)
	for _, nb := range nbs {
		v, w := nb.To, int64(nb.Weight)
		if r.view.Visited(v) {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		r.rec.Record(r.view.Snapshot(u, fmt.Sprintf("Considering edge %d -> %d with weight %d", u, v, w)))

		// d <= MaxDistance, so the subtraction cannot overflow
		if w > r.options.MaxDistance-d {
			continue
		}
		newDist := d + w
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		r.rec.Record(r.view.Snapshot(v, fmt.Sprintf("Updated distance to node %d = %d", v, newDist)))
	}
}

// summary renders the terminal status line.
func (r *runner) summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dijkstra complete. Shortest paths from %d:", r.options.Source)
	for v, d := range r.dist {
		if v == r.options.Source {
			continue
		}
		if d == Infinity {
			fmt.Fprintf(&sb, " %d(∞)", v)
		} else {
			fmt.Fprintf(&sb, " %d(%d)", v, d)
		}
	}
	return sb.String()
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id); the id tie-break
// keeps pop order deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
