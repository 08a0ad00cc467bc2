// SPDX-License-Identifier: MIT

package snapshot

import (
	"encoding/json"
	"fmt"
)

type arrayWire struct {
	Type       Kind   `json:"type"`
	Array      []int  `json:"array"`
	Highlights []int  `json:"highlights"`
	Status     string `json:"status"`
}

type graphWire struct {
	Type   Kind        `json:"type"`
	Nodes  []GraphNode `json:"nodes"`
	Edges  []GraphEdge `json:"edges"`
	Status string      `json:"status"`
}

type treeWire struct {
	Type   Kind      `json:"type"`
	Tree   *TreeNode `json:"tree"`
	Status string    `json:"status"`
}

type heapWire struct {
	Type       Kind   `json:"type"`
	Heap       []int  `json:"heap"`
	Highlights []int  `json:"highlights"`
	Status     string `json:"status"`
}

// MarshalJSON encodes the snapshot with its "type" tag.
func (s ArraySnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(arrayWire{KindArray, orEmpty(s.Array), orEmpty(s.Highlights), s.Status})
}

// MarshalJSON encodes the snapshot with its "type" tag.
func (s GraphSnapshot) MarshalJSON() ([]byte, error) {
	nodes, edges := s.Nodes, s.Edges
	if nodes == nil {
		nodes = []GraphNode{}
	}
	if edges == nil {
		edges = []GraphEdge{}
	}
	return json.Marshal(graphWire{KindGraph, nodes, edges, s.Status})
}

// MarshalJSON encodes the snapshot with its "type" tag; the empty tree is null.
func (s TreeSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(treeWire{KindTree, s.Root, s.Status})
}

// MarshalJSON encodes the snapshot with its "type" tag.
func (s HeapSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(heapWire{KindHeap, orEmpty(s.Heap), orEmpty(s.Highlights), s.Status})
}

// UnmarshalJSON decodes a trace of tagged snapshots as produced by MarshalJSON.
func (t *Trace) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Trace, 0, len(raw))
	for i, msg := range raw {
		s, err := Decode(msg)
		if err != nil {
			return fmt.Errorf("snapshot %d: %w", i, err)
		}
		out = append(out, s)
	}
	*t = out

	return nil
}

// Decode parses one tagged snapshot.
func Decode(data []byte) (Snapshot, error) {
	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case KindArray:
		var w arrayWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return ArraySnapshot{Array: w.Array, Highlights: w.Highlights, Status: w.Status}, nil
	case KindGraph:
		var w graphWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return GraphSnapshot{Nodes: w.Nodes, Edges: w.Edges, Status: w.Status}, nil
	case KindTree:
		var w treeWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return TreeSnapshot{Root: w.Tree, Status: w.Status}, nil
	case KindHeap:
		var w heapWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return HeapSnapshot{Heap: w.Heap, Highlights: w.Highlights, Status: w.Status}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, head.Type)
	}
}

func orEmpty(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
