// SPDX-License-Identifier: MIT

package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/snapshot"
)

// Family names used in the catalog, metrics and logs.
const (
	FamilySorting        = "sorting"
	FamilySearching      = "searching"
	FamilyGraph          = "graph"
	FamilyDataStructures = "dataStructures"
)

// Structure names of the persistent data structures.
const (
	StructureBST  = "bst"
	StructureHeap = "heap"
)

// Tree operations.
const (
	OpInsert = "insert"
	OpSearch = "search"
	OpDelete = "delete"
	OpClear  = "clear"
)

// Heap operations. OpInsert and OpClear are shared with the tree.
const (
	OpCreate     = "create"
	OpExtractMax = "extractMax"
	OpHeapify    = "heapify"
)

// IntList is an integer sequence that decodes from a JSON array or from a
// string holding either a JSON array ("[5,3,8]") or a comma-separated
// list ("5, 3, 8").
type IntList []int

// UnmarshalJSON implements the lenient decoding described on IntList.
func (l *IntList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return l.parseString(s)
	}

	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: array: %v", ErrInvalidArgument, err)
	}
	*l = v
	return nil
}

func (l *IntList) parseString(s string) error {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		var v []int
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return fmt.Errorf("%w: array: %v", ErrInvalidArgument, err)
		}
		*l = v
		return nil
	}

	out := IntList{}
	if s == "" {
		*l = out
		return nil
	}
	for i, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("%w: array element %d: %q is not an integer", ErrInvalidArgument, i, f)
		}
		out = append(out, n)
	}
	*l = out
	return nil
}

// Adjacency is a per-node list of (target, weight) entries. It decodes
// from a JSON array or from a string holding one; each entry may be
// {"target":t,"weight":w} or [t,w].
type Adjacency [][]core.Neighbor

// UnmarshalJSON implements the lenient decoding described on Adjacency.
func (a *Adjacency) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	var v [][]core.Neighbor
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: graph: %v", ErrInvalidArgument, err)
	}
	*a = v
	return nil
}

// edgeCount returns the number of stored adjacency entries.
func (a Adjacency) edgeCount() int {
	total := 0
	for _, list := range a {
		total += len(list)
	}
	return total
}

// SortRequest selects a sorting algorithm and its input.
type SortRequest struct {
	Algorithm string  `json:"algorithm" validate:"required"`
	Array     IntList `json:"array" validate:"required"`
}

// SortResponse carries the trace and the sorted array.
type SortResponse struct {
	RunID  string         `json:"runId"`
	Trace  snapshot.Trace `json:"trace"`
	Sorted []int          `json:"sorted"`
	Cached bool           `json:"cached,omitempty"`
}

// clone copies the slices of r. Snapshots are immutable and stay shared.
func (r SortResponse) clone() SortResponse {
	r.Trace = slices.Clone(r.Trace)
	r.Sorted = slices.Clone(r.Sorted)
	return r
}

// SearchRequest selects a search algorithm, its input and the target.
// Binary search runs over an ascending copy of Array.
type SearchRequest struct {
	Algorithm string  `json:"algorithm" validate:"required"`
	Array     IntList `json:"array" validate:"required"`
	Target    *int    `json:"target" validate:"required"`
}

// SearchResponse carries the trace and the found index, or -1.
type SearchResponse struct {
	RunID  string         `json:"runId"`
	Trace  snapshot.Trace `json:"trace"`
	Result int            `json:"result"`
	Cached bool           `json:"cached,omitempty"`
}

func (r SearchResponse) clone() SearchResponse {
	r.Trace = slices.Clone(r.Trace)
	return r
}

// GraphRequest selects a graph algorithm and its input. StartNode is
// ignored by kruskal and prim; EndNode, when set, must be a valid node and
// selects the path reported by dijkstra.
type GraphRequest struct {
	Algorithm string    `json:"algorithm" validate:"required"`
	Graph     Adjacency `json:"graph" validate:"required"`
	StartNode int       `json:"startNode"`
	EndNode   *int      `json:"endNode,omitempty"`
}

// GraphResponse carries the trace plus the algorithm-specific result.
//
//	bfs, dfs:       Order
//	dijkstra:       Order, Distances (null when unreachable), Path
//	kruskal, prim:  MSTEdges, TotalWeight
type GraphResponse struct {
	RunID       string         `json:"runId"`
	Trace       snapshot.Trace `json:"trace"`
	Order       []int          `json:"order,omitempty"`
	Distances   []*int64       `json:"distances,omitempty"`
	Path        []int          `json:"path,omitempty"`
	MSTEdges    []core.Edge    `json:"mstEdges,omitempty"`
	TotalWeight *int64         `json:"totalWeight,omitempty"`
	Cached      bool           `json:"cached,omitempty"`
}

func (r GraphResponse) clone() GraphResponse {
	r.Trace = slices.Clone(r.Trace)
	r.Order = slices.Clone(r.Order)
	r.Path = slices.Clone(r.Path)
	r.MSTEdges = slices.Clone(r.MSTEdges)
	if r.Distances != nil {
		dist := make([]*int64, len(r.Distances))
		for i, d := range r.Distances {
			if d != nil {
				v := *d
				dist[i] = &v
			}
		}
		r.Distances = dist
	}
	if r.TotalWeight != nil {
		total := *r.TotalWeight
		r.TotalWeight = &total
	}
	return r
}

// TreeRequest is one operation on the persistent BST.
type TreeRequest struct {
	Operation string `json:"operation" validate:"required"`
	Value     *int   `json:"value" validate:"required_unless=Operation clear"`
}

// TreeResponse carries the trace and the outcome of search or delete.
type TreeResponse struct {
	RunID string         `json:"runId"`
	Trace snapshot.Trace `json:"trace"`
	Found *bool          `json:"found,omitempty"`
	Size  int            `json:"size"`
}

// HeapRequest is one operation on the persistent max-heap.
type HeapRequest struct {
	Operation string  `json:"operation" validate:"required"`
	Value     *int    `json:"value" validate:"required_if=Operation insert"`
	Array     IntList `json:"array" validate:"required_if=Operation create"`
	Index     *int    `json:"index" validate:"required_if=Operation heapify"`
}

// HeapResponse carries the trace, the extracted maximum (null unless an
// extractMax removed one) and the heap contents after the operation.
type HeapResponse struct {
	RunID     string         `json:"runId"`
	Trace     snapshot.Trace `json:"trace"`
	Extracted *int           `json:"extracted"`
	Heap      []int          `json:"heap"`
}

// DataStructureRequest dispatches to TreeRequest or HeapRequest by
// Structure.
type DataStructureRequest struct {
	Structure string  `json:"structure" validate:"required"`
	Operation string  `json:"operation" validate:"required"`
	Value     *int    `json:"value,omitempty"`
	Array     IntList `json:"array,omitempty"`
	Index     *int    `json:"index,omitempty"`
}

// ArrayGenRequest configures GenerateArray. Nil fields take defaults:
// a random size in 5..15, values in 1..100, a time-based seed.
type ArrayGenRequest struct {
	Size *int   `json:"size" validate:"omitempty,gte=0"`
	Min  *int   `json:"min"`
	Max  *int   `json:"max"`
	Seed *int64 `json:"seed"`
}

// ArrayGenResponse carries a generated array and the seed that produced it.
type ArrayGenResponse struct {
	Array []int `json:"array"`
	Seed  int64 `json:"seed"`
}

// GraphGenRequest configures GenerateGraph. Nil fields take defaults:
// 5..10 nodes, the random topology, a time-based seed.
type GraphGenRequest struct {
	Nodes    *int   `json:"nodes" validate:"omitempty,gte=1"`
	Topology string `json:"topology"`
	Seed     *int64 `json:"seed"`
}

// GraphGenResponse carries a generated undirected graph as an adjacency
// list with every edge stored in both directions.
type GraphGenResponse struct {
	Graph    [][]core.Neighbor `json:"graph"`
	Nodes    int               `json:"nodes"`
	Edges    int               `json:"edges"`
	Topology string            `json:"topology"`
	Seed     int64             `json:"seed"`
	Status   string            `json:"status"`
}
