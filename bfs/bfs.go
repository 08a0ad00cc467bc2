// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/snapshot"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	view  *core.View
	rec   *snapshot.Recorder
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start, recording a trace.
// Validation happens before any snapshot is recorded.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := g.CheckNode(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		view:  core.NewView(g),
		rec:   snapshot.NewRecorder(4*n + 2),
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}

	w.rec.Record(w.view.Snapshot(start, fmt.Sprintf("Starting BFS from node %d", start)))
	w.enqueue(start, 0, -1)
	w.loop()
	w.rec.Record(w.view.Snapshot(core.NoCurrent, "BFS complete"))
	w.res.Trace = w.rec.Finish()

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent and appends it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.view.Visit(id)
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		w.opts.OnVisit(item.id, item.depth)
		w.rec.Record(w.view.Snapshot(item.id, fmt.Sprintf("Processing node %d", item.id)))

		// id was validated on the way in, the error is unreachable
		nbs, _ := w.graph.Neighbors(item.id)
		for _, nb := range nbs {
			if w.view.Visited(nb.To) {
				continue
			}
			w.rec.Record(w.view.Snapshot(item.id, fmt.Sprintf("Discovering edge %d -> %d", item.id, nb.To)))
			w.enqueue(nb.To, item.depth+1, item.id)
			w.rec.Record(w.view.Snapshot(nb.To, fmt.Sprintf("Discovered node %d", nb.To)))
		}
	}
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
