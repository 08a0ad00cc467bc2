// SPDX-License-Identifier: MIT

// Package core provides the indexed, weighted adjacency-list Graph consumed by
// the traversal, shortest-path and spanning-tree tracers, together with View,
// the helper that renders graph state into snapshot.GraphSnapshot values.
//
// Nodes are the integers 0..Order()-1; the node count is implicit in the
// length of the adjacency list. Each node owns an ordered list of Neighbor
// entries (target, weight). The stored order is significant: BFS, DFS and
// Dijkstra offer neighbors exactly in that order.
//
// Construction:
//
//	NewGraph(n, opts...)      // n isolated nodes
//	FromAdjacency(adj)        // adopt an adjacency list verbatim (validated)
//	g.AddEdge(from, to, w)    // mirrored into to's list when WithDirected(false)
//
// Every node index entering the package is validated; an index outside
// [0, Order()) yields ErrInvalidNodeIndex wrapped with the offending value.
//
// Concurrency:
//
//	Graph guards its adjacency with a sync.RWMutex; queries return copies, so
//	a Graph can be shared by concurrent read-only runs. View is per-run state
//	and is not safe for concurrent use.
//
// Complexity:
//
//	AddEdge O(1) amortized, Neighbors O(deg), Edges O(V+E), View.Snapshot O(V+E).
package core
