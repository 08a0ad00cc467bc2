// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/snapshot"
)

// frame is a pending stack entry: node id reached from parent.
type frame struct {
	id     int
	parent int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	view  *core.View
	rec   *snapshot.Recorder
	stack []frame
	res   *DFSResult
}

// DFS performs an iterative depth-first search on g from start and returns
// the visit order together with the recorded trace.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input before recording anything
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := g.CheckNode(start); err != nil {
		return nil, fmt.Errorf("dfs: start: %w", err)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	n := g.Order()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		view:  core.NewView(g),
		rec:   snapshot.NewRecorder(3*n + 2),
		res:   &DFSResult{Order: make([]int, 0, n), Parent: parent},
	}

	// 4. Traverse
	w.rec.Record(w.view.Snapshot(start, fmt.Sprintf("Starting DFS from node %d", start)))
	w.stack = append(w.stack, frame{id: start, parent: -1})
	w.traverse()
	w.rec.Record(w.view.Snapshot(core.NoCurrent, "DFS complete"))
	w.res.Trace = w.rec.Finish()

	return w.res, nil
}

// traverse pops frames until the stack is empty.
func (w *dfsWalker) traverse() {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// stale entry: reached again through another path before being popped
		if w.view.Visited(top.id) {
			continue
		}

		w.view.Visit(top.id)
		w.res.Order = append(w.res.Order, top.id)
		w.res.Parent[top.id] = top.parent
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(top.id)
		}
		w.rec.Record(w.view.Snapshot(top.id, fmt.Sprintf("Processing node %d", top.id)))

		nbs, _ := w.graph.Neighbors(top.id)
		for i := len(nbs) - 1; i >= 0; i-- {
			nid := nbs[i].To
			if w.view.Visited(nid) {
				continue
			}
			w.rec.Record(w.view.Snapshot(top.id, fmt.Sprintf("Considering edge %d -> %d", top.id, nid)))
			w.stack = append(w.stack, frame{id: nid, parent: top.id})
		}
	}
}
