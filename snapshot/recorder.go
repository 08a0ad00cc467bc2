// SPDX-License-Identifier: MIT

package snapshot

// Trace is the ordered sequence of snapshots produced by one run.
// Order is exactly step order; nothing is reordered or deduplicated.
type Trace []Snapshot

// Last returns the final snapshot of the trace, or nil for an empty trace.
func (t Trace) Last() Snapshot {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1]
}

// Statuses returns the status line of every snapshot, in order.
func (t Trace) Statuses() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.Text()
	}
	return out
}

// Cells estimates the memory a trace holds, in machine words: one per
// array or heap slot and highlight, two per graph node, three per graph
// edge and three per tree node.
func (t Trace) Cells() int {
	total := 0
	for _, s := range t {
		switch v := s.(type) {
		case ArraySnapshot:
			total += len(v.Array) + len(v.Highlights)
		case HeapSnapshot:
			total += len(v.Heap) + len(v.Highlights)
		case GraphSnapshot:
			total += 2*len(v.Nodes) + 3*len(v.Edges)
		case TreeSnapshot:
			total += 3 * treeSize(v.Root)
		}
	}
	return total
}

func treeSize(n *TreeNode) int {
	if n == nil {
		return 0
	}
	return 1 + treeSize(n.Left) + treeSize(n.Right)
}

// Recorder accumulates snapshots for a single run.
// It is not safe for concurrent use; a run has one logical thread of control.
type Recorder struct {
	steps []Snapshot
	done  bool
}

// NewRecorder returns an empty Recorder. sizeHint pre-allocates capacity
// and may be zero.
func NewRecorder(sizeHint int) *Recorder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Recorder{steps: make([]Snapshot, 0, sizeHint)}
}

// Record appends s to the trace.
func (r *Recorder) Record(s Snapshot) {
	if r.done {
		panic(ErrFinished)
	}
	r.steps = append(r.steps, s)
}

// Array records NewArray(values, status, highlights...).
func (r *Recorder) Array(values []int, status string, highlights ...int) {
	r.Record(NewArray(values, status, highlights...))
}

// Heap records NewHeap(heap, status, highlights...).
func (r *Recorder) Heap(heap []int, status string, highlights ...int) {
	r.Record(NewHeap(heap, status, highlights...))
}

// Len reports how many snapshots have been recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Finish hands over the complete trace. It may be called once; the
// Recorder is unusable afterwards.
func (r *Recorder) Finish() Trace {
	if r.done {
		panic(ErrFinished)
	}
	r.done = true
	t := Trace(r.steps)
	r.steps = nil

	return t
}
