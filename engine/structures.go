// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/bst"
	"github.com/katalvlaran/algotrace/maxheap"
	"github.com/katalvlaran/algotrace/snapshot"
	"github.com/katalvlaran/algotrace/sorting"
)

// Tree applies one operation to the persistent BST.
func (e *Engine) Tree(ctx context.Context, req TreeRequest) (*TreeResponse, error) {
	if !slices.Contains(treeOps, req.Operation) {
		return nil, fmt.Errorf("%w: tree operation %q", ErrUnknownAlgorithm, req.Operation)
	}
	if err := e.check(req); err != nil {
		return nil, err
	}

	resp := TreeResponse{}
	id, err := e.track(ctx, FamilyDataStructures, StructureBST+"."+req.Operation, func() (snapshot.Trace, error) {
		var runErr error
		e.store.WithTree(func(t *bst.Tree) {
			runErr = e.treeOp(t, req, &resp)
			resp.Size = t.Len()
		})
		return resp.Trace, runErr
	})
	if err != nil {
		return nil, err
	}
	resp.RunID = id

	return &resp, nil
}

// treeOp runs under the tree lock.
func (e *Engine) treeOp(t *bst.Tree, req TreeRequest, resp *TreeResponse) error {
	switch req.Operation {
	case OpInsert:
		if t.Len() >= e.limits.MaxStructureSize {
			return tooLarge("tree", t.Len()+1, e.limits.MaxStructureSize)
		}
		resp.Trace = t.Insert(*req.Value)
	case OpSearch:
		found, tr := t.Search(*req.Value)
		resp.Found, resp.Trace = &found, tr
	case OpDelete:
		deleted, tr := t.Delete(*req.Value)
		resp.Found, resp.Trace = &deleted, tr
	case OpClear:
		resp.Trace = t.Clear()
	}
	return nil
}

// Heap applies one operation to the persistent max-heap.
func (e *Engine) Heap(ctx context.Context, req HeapRequest) (*HeapResponse, error) {
	if !slices.Contains(heapOps, req.Operation) {
		return nil, fmt.Errorf("%w: heap operation %q", ErrUnknownAlgorithm, req.Operation)
	}
	if err := e.check(req); err != nil {
		return nil, err
	}
	if req.Operation == OpCreate {
		n := len(req.Array)
		if n > e.limits.MaxStructureSize {
			return nil, tooLarge("heap", n, e.limits.MaxStructureSize)
		}
		// Building records no more steps than a heap sort of the same input.
		steps, _ := sorting.MaxSteps(sorting.Heap, n)
		if err := e.fitsTrace("heap create", steps, n+snapshot.MaxHighlights); err != nil {
			return nil, err
		}
	}

	resp := HeapResponse{}
	id, err := e.track(ctx, FamilyDataStructures, StructureHeap+"."+req.Operation, func() (snapshot.Trace, error) {
		var runErr error
		e.store.WithHeap(func(h *maxheap.Heap) {
			runErr = e.heapOp(h, req, &resp)
			resp.Heap = h.Values()
		})
		return resp.Trace, runErr
	})
	if err != nil {
		return nil, err
	}
	resp.RunID = id

	return &resp, nil
}

// heapOp runs under the heap lock.
func (e *Engine) heapOp(h *maxheap.Heap, req HeapRequest, resp *HeapResponse) error {
	switch req.Operation {
	case OpCreate:
		resp.Trace = h.Create(req.Array)
	case OpInsert:
		if h.Len() >= e.limits.MaxStructureSize {
			return tooLarge("heap", h.Len()+1, e.limits.MaxStructureSize)
		}
		resp.Trace = h.Insert(*req.Value)
	case OpExtractMax:
		resp.Extracted, resp.Trace = h.ExtractMax()
	case OpHeapify:
		tr, err := h.Heapify(*req.Index)
		if err != nil {
			return err
		}
		resp.Trace = tr
	case OpClear:
		resp.Trace = h.Clear()
	}
	return nil
}

// DataStructure dispatches the legacy combined request to Tree or Heap.
// The result is a *TreeResponse or a *HeapResponse.
func (e *Engine) DataStructure(ctx context.Context, req DataStructureRequest) (any, error) {
	if err := e.check(req); err != nil {
		return nil, err
	}
	switch req.Structure {
	case StructureBST:
		resp, err := e.Tree(ctx, TreeRequest{Operation: req.Operation, Value: req.Value})
		if err != nil {
			return nil, err
		}
		return resp, nil
	case StructureHeap:
		resp, err := e.Heap(ctx, HeapRequest{Operation: req.Operation, Value: req.Value, Array: req.Array, Index: req.Index})
		if err != nil {
			return nil, err
		}
		return resp, nil
	default:
		return nil, fmt.Errorf("%w: data structure %q", ErrUnknownAlgorithm, req.Structure)
	}
}
