// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/algotrace/search"
	"github.com/katalvlaran/algotrace/sorting"
)

// Graph algorithm names.
const (
	GraphBFS      = "bfs"
	GraphDFS      = "dfs"
	GraphDijkstra = "dijkstra"
	GraphKruskal  = "kruskal"
	GraphPrim     = "prim"
)

// AlgorithmInfo is the display metadata of one catalog entry.
// Operations is set for data structures only.
type AlgorithmInfo struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	TimeComplexity  string            `json:"timeComplexity,omitempty"`
	SpaceComplexity string            `json:"spaceComplexity,omitempty"`
	Operations      []string          `json:"operations,omitempty"`
	OperationTimes  map[string]string `json:"operationComplexity,omitempty"`
}

// Catalog enumerates every accepted name grouped by family, plus display
// metadata keyed by family and then by name.
type Catalog struct {
	Sorting        []string                            `json:"sorting"`
	Searching      []string                            `json:"searching"`
	Graph          []string                            `json:"graph"`
	DataStructures []string                            `json:"dataStructures"`
	Info           map[string]map[string]AlgorithmInfo `json:"info"`
}

var info = map[string]map[string]AlgorithmInfo{
	FamilySorting: {
		sorting.Bubble: {
			Name:            "Bubble Sort",
			Description:     "A simple sorting algorithm that repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order.",
			TimeComplexity:  "O(n²)",
			SpaceComplexity: "O(1)",
		},
		sorting.Insertion: {
			Name:            "Insertion Sort",
			Description:     "Builds the final sorted array one item at a time. It is much less efficient on large lists than more advanced algorithms.",
			TimeComplexity:  "O(n²)",
			SpaceComplexity: "O(1)",
		},
		sorting.Selection: {
			Name:            "Selection Sort",
			Description:     "Divides the input list into a sorted and an unsorted region, repeatedly selecting the smallest element from the unsorted region.",
			TimeComplexity:  "O(n²)",
			SpaceComplexity: "O(1)",
		},
		sorting.Merge: {
			Name:            "Merge Sort",
			Description:     "A divide and conquer algorithm that divides the input array into two halves, recursively sorts them, then merges the sorted halves.",
			TimeComplexity:  "O(n log n)",
			SpaceComplexity: "O(n)",
		},
		sorting.Quick: {
			Name:            "Quick Sort",
			Description:     "A divide and conquer algorithm that picks an element as a pivot and partitions the array around the pivot.",
			TimeComplexity:  "O(n log n) average, O(n²) worst case",
			SpaceComplexity: "O(log n)",
		},
		sorting.Heap: {
			Name:            "Heap Sort",
			Description:     "Builds a max heap from the input data, then repeatedly extracts the maximum element from the heap.",
			TimeComplexity:  "O(n log n)",
			SpaceComplexity: "O(1)",
		},
	},
	FamilySearching: {
		search.Linear: {
			Name:            "Linear Search",
			Description:     "A simple search algorithm that sequentially checks each element in the list until a match is found or the whole list has been searched.",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(1)",
		},
		search.Binary: {
			Name:            "Binary Search",
			Description:     "A faster search algorithm that works on sorted arrays by repeatedly dividing the search interval in half.",
			TimeComplexity:  "O(log n)",
			SpaceComplexity: "O(1)",
		},
	},
	FamilyGraph: {
		GraphBFS: {
			Name:            "Breadth-First Search",
			Description:     "Explores all the neighbors at the present depth prior to moving on to nodes at the next depth level.",
			TimeComplexity:  "O(V + E)",
			SpaceComplexity: "O(V)",
		},
		GraphDFS: {
			Name:            "Depth-First Search",
			Description:     "Explores as far as possible along each branch before backtracking.",
			TimeComplexity:  "O(V + E)",
			SpaceComplexity: "O(V)",
		},
		GraphDijkstra: {
			Name:            "Dijkstra's Algorithm",
			Description:     "Finds the shortest paths between nodes in a graph with non-negative edge weights.",
			TimeComplexity:  "O(E log V)",
			SpaceComplexity: "O(V)",
		},
		GraphKruskal: {
			Name:            "Kruskal's Algorithm",
			Description:     "Finds a minimum spanning tree for a connected weighted graph by considering edges in ascending order of weight.",
			TimeComplexity:  "O(E log E)",
			SpaceComplexity: "O(V)",
		},
		GraphPrim: {
			Name:            "Prim's Algorithm",
			Description:     "Finds a minimum spanning tree for a connected weighted graph by growing the tree one edge at a time from a starting vertex.",
			TimeComplexity:  "O(E log V)",
			SpaceComplexity: "O(V)",
		},
	},
	FamilyDataStructures: {
		StructureBST: {
			Name:        "Binary Search Tree",
			Description: "A tree data structure in which each node has at most two children, with all nodes to the left having values less than the node, and all nodes to the right having values greater than or equal to the node.",
			Operations:  treeOps,
			OperationTimes: map[string]string{
				OpInsert: "O(log n) average, O(n) worst",
				OpDelete: "O(log n) average, O(n) worst",
				OpSearch: "O(log n) average, O(n) worst",
			},
		},
		StructureHeap: {
			Name:        "Max Heap",
			Description: "A complete binary tree where the value in each internal node is greater than or equal to the values in the children of that node.",
			Operations:  heapOps,
			OperationTimes: map[string]string{
				OpCreate:     "O(n)",
				OpInsert:     "O(log n)",
				OpExtractMax: "O(log n)",
				OpHeapify:    "O(log n)",
			},
		},
	},
}

var (
	graphAlgorithms = []string{GraphBFS, GraphDFS, GraphDijkstra, GraphKruskal, GraphPrim}
	structures      = []string{StructureBST, StructureHeap}
	treeOps         = []string{OpInsert, OpSearch, OpDelete, OpClear}
	heapOps         = []string{OpCreate, OpInsert, OpExtractMax, OpHeapify, OpClear}
)

// Algorithms returns the static catalog. The result is a fresh value the
// caller may modify.
func Algorithms() Catalog {
	c := Catalog{
		Sorting:        sorting.Algorithms(),
		Searching:      search.Algorithms(),
		Graph:          append([]string(nil), graphAlgorithms...),
		DataStructures: append([]string(nil), structures...),
		Info:           make(map[string]map[string]AlgorithmInfo, len(info)),
	}
	for family, entries := range info {
		m := make(map[string]AlgorithmInfo, len(entries))
		for name, e := range entries {
			m[name] = e
		}
		c.Info[family] = m
	}
	return c
}
