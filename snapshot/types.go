// SPDX-License-Identifier: MIT

package snapshot

import (
	"errors"
	"slices"
)

// ErrFinished is the panic value raised when a Recorder is used after Finish.
var ErrFinished = errors.New("snapshot: recorder already finished")

// ErrUnknownKind is returned when decoding a snapshot with an unrecognized type tag.
var ErrUnknownKind = errors.New("snapshot: unknown snapshot type")

// MaxHighlights is the upper bound of highlighted positions in array and heap snapshots.
const MaxHighlights = 2

// Kind discriminates the snapshot variants.
type Kind string

// Snapshot variant tags, used verbatim as the "type" field on the wire.
const (
	KindArray Kind = "array"
	KindGraph Kind = "graph"
	KindTree  Kind = "tree"
	KindHeap  Kind = "heap"
)

// Snapshot is one immutable rendering of algorithm state.
// The set of implementations is closed: ArraySnapshot, GraphSnapshot,
// TreeSnapshot and HeapSnapshot.
type Snapshot interface {
	Kind() Kind
	// Text returns the status line of the snapshot.
	Text() string

	sealed()
}

// NodeState is the visitation tag of a graph node.
type NodeState string

// Graph node states.
const (
	Unvisited NodeState = "unvisited"
	Current   NodeState = "current"
	Visited   NodeState = "visited"
)

// ArraySnapshot captures an integer sequence with up to two highlighted positions.
type ArraySnapshot struct {
	Array      []int
	Highlights []int
	Status     string
}

// GraphNode is a node of a GraphSnapshot.
type GraphNode struct {
	ID    int       `json:"id"`
	State NodeState `json:"state"`
}

// GraphEdge is a weighted edge of a GraphSnapshot.
type GraphEdge struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Weight int `json:"weight"`
}

// GraphSnapshot captures node states and the edge set of a graph.
// At most one node is Current.
type GraphSnapshot struct {
	Nodes  []GraphNode
	Edges  []GraphEdge
	Status string
}

// TreeNode mirrors one node of a binary tree. Absent children are nil.
type TreeNode struct {
	Value         int       `json:"value"`
	IsHighlighted bool      `json:"isHighlighted"`
	IsFound       bool      `json:"isFound"`
	Left          *TreeNode `json:"left"`
	Right         *TreeNode `json:"right"`
}

// TreeSnapshot captures a binary tree. A nil Root is the empty tree.
type TreeSnapshot struct {
	Root   *TreeNode
	Status string
}

// HeapSnapshot captures a heap array with up to two highlighted positions.
type HeapSnapshot struct {
	Heap       []int
	Highlights []int
	Status     string
}

func (ArraySnapshot) Kind() Kind { return KindArray }
func (GraphSnapshot) Kind() Kind { return KindGraph }
func (TreeSnapshot) Kind() Kind  { return KindTree }
func (HeapSnapshot) Kind() Kind  { return KindHeap }

func (s ArraySnapshot) Text() string { return s.Status }
func (s GraphSnapshot) Text() string { return s.Status }
func (s TreeSnapshot) Text() string  { return s.Status }
func (s HeapSnapshot) Text() string  { return s.Status }

func (ArraySnapshot) sealed() {}
func (GraphSnapshot) sealed() {}
func (TreeSnapshot) sealed()  {}
func (HeapSnapshot) sealed()  {}

// NewArray returns an ArraySnapshot holding a copy of values.
// Highlight indices outside [0, len(values)) are dropped, duplicates are
// collapsed and at most MaxHighlights are kept, so a snapshot never carries
// a stale index.
func NewArray(values []int, status string, highlights ...int) ArraySnapshot {
	return ArraySnapshot{
		Array:      cloneInts(values),
		Highlights: validHighlights(len(values), highlights),
		Status:     status,
	}
}

// NewHeap returns a HeapSnapshot holding a copy of heap, with the same
// highlight rules as NewArray.
func NewHeap(heap []int, status string, highlights ...int) HeapSnapshot {
	return HeapSnapshot{
		Heap:       cloneInts(heap),
		Highlights: validHighlights(len(heap), highlights),
		Status:     status,
	}
}

// NewGraph returns a GraphSnapshot owning copies of nodes and edges.
func NewGraph(nodes []GraphNode, edges []GraphEdge, status string) GraphSnapshot {
	return GraphSnapshot{
		Nodes:  slices.Clone(nodes),
		Edges:  slices.Clone(edges),
		Status: status,
	}
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *TreeNode) Clone() *TreeNode {
	if n == nil {
		return nil
	}
	return &TreeNode{
		Value:         n.Value,
		IsHighlighted: n.IsHighlighted,
		IsFound:       n.IsFound,
		Left:          n.Left.Clone(),
		Right:         n.Right.Clone(),
	}
}

// InOrder returns the node values of the subtree in in-order sequence.
func (n *TreeNode) InOrder() []int {
	var out []int
	var walk func(*TreeNode)
	walk = func(t *TreeNode) {
		if t == nil {
			return
		}
		walk(t.Left)
		out = append(out, t.Value)
		walk(t.Right)
	}
	walk(n)
	return out
}

// Find returns the first node in pre-order for which match reports true, or nil.
func (n *TreeNode) Find(match func(*TreeNode) bool) *TreeNode {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	if l := n.Left.Find(match); l != nil {
		return l
	}
	return n.Right.Find(match)
}

func cloneInts(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	return out
}

func validHighlights(n int, idx []int) []int {
	out := make([]int, 0, MaxHighlights)
	for _, i := range idx {
		if i < 0 || i >= n || slices.Contains(out, i) {
			continue
		}
		out = append(out, i)
		if len(out) == MaxHighlights {
			break
		}
	}
	return out
}
