// SPDX-License-Identifier: MIT

// Package dfs implements an instrumented depth-first search on core.Graph.
//
// The traversal uses an explicit stack rather than recursion so that step
// emission stays linear in the input. Neighbors are pushed in reverse
// adjacency order, which makes them pop in their original order; a node that
// is already visited when popped is skipped silently.
//
// Trace:
//
//	"Starting DFS from node s"     start is current, nothing visited
//	"Processing node u"            on the first visit of u
//	"Considering edge u -> v"      when pushing an unvisited neighbor v
//	"DFS complete"                 no current node
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, O(V + E) per recorded snapshot.
//   - Memory: O(E) stack in the worst case, O(V) marks.
//
// Errors:
//
//   - ErrGraphNil                if g is nil.
//   - core.ErrInvalidNodeIndex   if start is outside [0, Order()).
package dfs
