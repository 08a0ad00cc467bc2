// SPDX-License-Identifier: MIT

// Package dijkstra implements an instrumented Dijkstra single-source
// shortest-path search on core.Graph.
//
// Dijkstra processes nodes in order of increasing tentative distance using a
// min-heap keyed by (distance, node index). Decrease-key is lazy: a shorter
// distance pushes a new entry and stale entries are skipped when popped.
//
// Trace:
//
//	"Starting Dijkstra's algorithm from node s"
//	"Processing node u with distance d"          u finalized, u current
//	"Considering edge u -> v with weight w"      v not yet finalized
//	"Updated distance to node v = d"             only on strict improvement, v current
//	"Dijkstra complete. Shortest paths from s: 1(3) 2(∞)"
//
// The terminal status lists every node except the source in index order,
// rendering unreachable nodes as ∞.
//
// Complexity:
//
//   - Time:  O((V + E) log V) plus O(V + E) per recorded snapshot.
//   - Space: O(V + E); the heap holds up to E entries under lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - core.ErrInvalidNodeIndex if the source is not a node of the graph.
//   - ErrNegativeWeight    if any stored edge weight is negative.
//   - ErrBadMaxDistance    if MaxDistance < 0.
//   - ErrBadInfThreshold   if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist[3], res.Trace.Last().Text())
package dijkstra
