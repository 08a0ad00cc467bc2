// SPDX-License-Identifier: MIT

// Package algotrace records classic algorithms step by step, so that every
// run can be replayed frame by frame: sorting, searching, graph traversal,
// shortest paths, minimum spanning trees and two persistent data structures.
//
// What is algotrace?
//
//	An engine that runs an algorithm on caller input and returns its trace:
//		• Sorting: bubble, insertion, selection, merge, quick, heap
//		• Searching: linear, binary
//		• Graphs: BFS, DFS, Dijkstra, Kruskal, Prim
//		• Structures: a binary search tree and a max-heap that persist
//		  between operations
//
// Every step is an immutable snapshot (array, graph, tree or heap view plus
// a status line). A trace is an ordered list of snapshots; no snapshot ever
// changes after it is recorded, and no two snapshots share mutable state.
//
// Packages:
//
//	snapshot/      snapshot variants, the Recorder and their JSON encoding
//	core/          indexed weighted adjacency-list graph and its snapshot view
//	sorting/       the six sorting algorithms
//	search/        linear and binary search
//	bfs/ dfs/      traversals
//	dijkstra/      single-source shortest paths
//	prim_kruskal/  minimum spanning trees
//	bst/           persistent binary search tree
//	maxheap/       persistent max-heap and the sift-down shared with heap sort
//	store/         the single tree and heap shared across requests, each behind its own lock
//	builder/       random arrays and graph topologies for demos
//	engine/        typed requests, dispatch by name, limits, cache, metrics
//	server/        HTTP API (chi)
//	config/        YAML configuration
//	cmd/algotrace  CLI: serve, sort, search, graph, tree, heap, gen
//
// Quick example:
//
//	algotrace sort bubble 5 3 8 1
//
// prints the trace of bubble sort as JSON, one snapshot per comparison,
// swap and pass.
//
//	go install github.com/katalvlaran/algotrace/cmd/algotrace@latest
package algotrace
