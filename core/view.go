// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: per-run rendering of graph state into snapshot.GraphSnapshot.
// Invariants:
//   - the visited set only grows; there is no way to un-visit a node.
//   - at most one node is rendered as current.

package core

import "github.com/katalvlaran/algotrace/snapshot"

// NoCurrent passed to View.Snapshot renders no node as current.
const NoCurrent = -1

// View tracks which nodes a run has visited and renders snapshots of g.
// The edge list is captured once at NewView; the graph is read-only for
// the duration of a run.
type View struct {
	edges   []snapshot.GraphEdge
	visited []bool
	count   int
}

// NewView prepares a View over g with every node unvisited.
// Complexity: O(V + E)
func NewView(g *Graph) *View {
	all := g.Edges()
	edges := make([]snapshot.GraphEdge, len(all))
	for i, e := range all {
		edges[i] = snapshot.GraphEdge{Source: e.From, Target: e.To, Weight: e.Weight}
	}
	return &View{edges: edges, visited: make([]bool, g.Order())}
}

// Visit marks node i visited. Visiting twice is a no-op.
func (v *View) Visit(i int) {
	if !v.visited[i] {
		v.visited[i] = true
		v.count++
	}
}

// Visited reports whether node i has been visited.
func (v *View) Visited(i int) bool { return v.visited[i] }

// VisitedCount returns the number of visited nodes.
func (v *View) VisitedCount() int { return v.count }

// Order returns the number of nodes in the viewed graph.
func (v *View) Order() int { return len(v.visited) }

// Snapshot renders the current state. Node current (or none when current is
// NoCurrent or out of range) is tagged Current, other visited nodes Visited,
// the rest Unvisited.
// Complexity: O(V + E)
func (v *View) Snapshot(current int, status string) snapshot.GraphSnapshot {
	nodes := make([]snapshot.GraphNode, len(v.visited))
	for i, seen := range v.visited {
		state := snapshot.Unvisited
		switch {
		case i == current:
			state = snapshot.Current
		case seen:
			state = snapshot.Visited
		}
		nodes[i] = snapshot.GraphNode{ID: i, State: state}
	}
	return snapshot.GraphSnapshot{Nodes: nodes, Edges: append([]snapshot.GraphEdge(nil), v.edges...), Status: status}
}
