// SPDX-License-Identifier: MIT

// Package prim_kruskal implements instrumented minimum-spanning-tree
// construction on core.Graph with Kruskal's and Prim's algorithms.
//
// Both algorithms read the graph as undirected: an undirected edge is expected
// to be stored in both endpoints' adjacency lists, as core.WithDirected(false)
// does.
//
// Kruskal:
//
//   - Edge list: every adjacency entry with source < target, so each mirrored
//     undirected edge counts once.
//   - Order: ascending weight, ties broken by (source, target).
//   - Union-find with path compression and union-by-rank rejects edges that
//     would close a cycle. Every edge is considered; there is no early stop.
//   - Trace: "Starting Kruskal's MST algorithm", then per edge a
//     "Considering edge u -> v with weight w" snapshot followed by either
//     "Added edge u -> v to MST (weight: w)" or
//     "Edge u -> v would create a cycle - skipping", then
//     "Kruskal's MST algorithm complete. Total MST weight: T".
//
// Prim:
//
//   - Starts at node 0; the start is not configurable.
//   - Min-heap of (weight, to, from) candidate edges; entries whose target is
//     already in the tree are skipped lazily.
//   - Stops when every node is in the tree or the heap empties, so a
//     disconnected graph yields the spanning tree of node 0's component.
//   - Trace: "Starting Prim's MST algorithm from node 0",
//     "Added all edges from node x to priority queue" after each frontier
//     expansion, "Added edge f -> t to MST (weight: w)" per accepted edge,
//     "Edge f -> t connects to already visited node - skipping" per stale
//     entry, then "Prim's MST algorithm complete. Total MST weight: T".
//
// Complexity:
//
//   - Kruskal: O(E log E + α(V)·E) time, O(V + E) memory.
//   - Prim:    O(E log E) time, O(V + E) memory.
//   - Each recorded snapshot adds O(V + E).
//
// Errors:
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - core.ErrInvalidNodeIndex Prim on an empty graph.
//   - ErrUnknownMethod         Compute with a method other than MethodPrim or MethodKruskal.
package prim_kruskal
