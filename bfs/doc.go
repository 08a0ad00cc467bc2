// SPDX-License-Identifier: MIT

// Package bfs provides an instrumented breadth-first search over a core.Graph
// that records every semantically significant step as a snapshot.GraphSnapshot.
//
// What
//
//   - Explore nodes in FIFO order from a start node; neighbors are offered in
//     their stored adjacency order, so the visit sequence is reproducible.
//   - Returns a BFSResult containing:
//   - Order: processing sequence
//   - Depth: distance in edges from the start (-1 when unreached)
//   - Parent: predecessor in the BFS tree (-1 for the start and unreached nodes)
//   - Trace: the recorded snapshots
//   - Hooks: OnEnqueue (node discovered) and OnVisit (node dequeued).
//
// Trace
//
//	"Starting BFS from node s"        start is current, nothing visited
//	"Processing node u"               once per dequeue, u is current
//	"Discovering edge u -> v"         per unvisited neighbor, u is current
//	"Discovered node v"               v marked visited and current
//	"BFS complete"                    no current node
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E) traversal, plus O(V + E) per recorded snapshot
//   - Memory: O(V) queue and marks, O(steps · (V + E)) trace
//
// Errors
//
//   - ErrGraphNil             graph pointer is nil
//   - core.ErrInvalidNodeIndex start outside [0, Order())
package bfs
