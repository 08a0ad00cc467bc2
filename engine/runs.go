// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/bfs"
	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dfs"
	"github.com/katalvlaran/algotrace/dijkstra"
	"github.com/katalvlaran/algotrace/prim_kruskal"
	"github.com/katalvlaran/algotrace/search"
	"github.com/katalvlaran/algotrace/snapshot"
	"github.com/katalvlaran/algotrace/sorting"
)

// Sort runs the named sort over a copy of req.Array.
func (e *Engine) Sort(ctx context.Context, req SortRequest) (*SortResponse, error) {
	// 1) Validate.
	if err := e.check(req); err != nil {
		return nil, err
	}
	fn, ok := sorting.Lookup(req.Algorithm)
	if !ok {
		return nil, fmt.Errorf("%w: sort %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if len(req.Array) > e.limits.MaxArrayLen {
		return nil, tooLarge("array", len(req.Array), e.limits.MaxArrayLen)
	}
	n := len(req.Array)
	steps, _ := sorting.MaxSteps(req.Algorithm, n)
	if err := e.fitsTrace(req.Algorithm+" sort", steps, n+snapshot.MaxHighlights); err != nil {
		return nil, err
	}

	// 2) Serve from cache.
	key := fmt.Sprintf("%s|%s|%v", FamilySorting, req.Algorithm, []int(req.Array))
	if resp, ok := cached[SortResponse](e, key); ok {
		resp = resp.clone()
		resp.RunID, resp.Cached = e.hit(FamilySorting, req.Algorithm), true
		return &resp, nil
	}

	// 3) Run.
	resp := SortResponse{}
	id, err := e.track(ctx, FamilySorting, req.Algorithm, func() (snapshot.Trace, error) {
		resp.Trace = fn(req.Array)
		resp.Sorted = sorting.Result(resp.Trace)
		return resp.Trace, nil
	})
	if err != nil {
		return nil, err
	}
	e.remember(key, resp.clone(), resp.Trace.Cells())
	resp.RunID = id

	return &resp, nil
}

// Search runs the named search. Binary search receives an ascending copy
// of req.Array, so Result indexes into that sorted copy.
func (e *Engine) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	// 1) Validate.
	if err := e.check(req); err != nil {
		return nil, err
	}
	if !slices.Contains(search.Algorithms(), req.Algorithm) {
		return nil, fmt.Errorf("%w: search %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if len(req.Array) > e.limits.MaxArrayLen {
		return nil, tooLarge("array", len(req.Array), e.limits.MaxArrayLen)
	}
	// Linear search records at most one snapshot per element plus a verdict.
	if err := e.fitsTrace(req.Algorithm+" search", len(req.Array)+1, len(req.Array)+snapshot.MaxHighlights); err != nil {
		return nil, err
	}
	values := []int(req.Array)
	if req.Algorithm == search.Binary {
		values = slices.Clone(values)
		slices.Sort(values)
	}
	target := *req.Target

	// 2) Serve from cache.
	key := fmt.Sprintf("%s|%s|%d|%v", FamilySearching, req.Algorithm, target, values)
	if resp, ok := cached[SearchResponse](e, key); ok {
		resp = resp.clone()
		resp.RunID, resp.Cached = e.hit(FamilySearching, req.Algorithm), true
		return &resp, nil
	}

	// 3) Run.
	resp := SearchResponse{}
	id, err := e.track(ctx, FamilySearching, req.Algorithm, func() (snapshot.Trace, error) {
		idx, tr, err := search.Run(req.Algorithm, values, target)
		resp.Result, resp.Trace = idx, tr
		return tr, err
	})
	if err != nil {
		return nil, err
	}
	e.remember(key, resp.clone(), resp.Trace.Cells())
	resp.RunID = id

	return &resp, nil
}

// Graph runs the named graph algorithm over req.Graph, adopted verbatim
// as a directed adjacency list.
func (e *Engine) Graph(ctx context.Context, req GraphRequest) (*GraphResponse, error) {
	// 1) Validate names and sizes.
	if err := e.check(req); err != nil {
		return nil, err
	}
	if !slices.Contains(graphAlgorithms, req.Algorithm) {
		return nil, fmt.Errorf("%w: graph %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if len(req.Graph) > e.limits.MaxGraphNodes {
		return nil, tooLarge("graph nodes", len(req.Graph), e.limits.MaxGraphNodes)
	}
	m := req.Graph.edgeCount()
	if m > e.limits.MaxGraphEdges {
		return nil, tooLarge("graph edges", m, e.limits.MaxGraphEdges)
	}
	// Every graph algorithm records O(V + E) snapshots, each carrying all
	// nodes and edges.
	v := len(req.Graph)
	if err := e.fitsTrace(req.Algorithm, 3*m+2*v+4, 2*v+3*m); err != nil {
		return nil, err
	}

	// 2) Decode and check node indices.
	g, err := core.FromAdjacency(req.Graph)
	if err != nil {
		return nil, classify(err)
	}
	if _, err := g.WeightBound(); err != nil {
		return nil, classify(err)
	}
	switch req.Algorithm {
	case GraphBFS, GraphDFS, GraphDijkstra:
		if err := g.CheckNode(req.StartNode); err != nil {
			return nil, classify(fmt.Errorf("start node: %w", err))
		}
	}
	end := -1
	if req.EndNode != nil {
		if err := g.CheckNode(*req.EndNode); err != nil {
			return nil, classify(fmt.Errorf("end node: %w", err))
		}
		end = *req.EndNode
	}

	// 3) Serve from cache.
	key := fmt.Sprintf("%s|%s|%d|%d|%v", FamilyGraph, req.Algorithm, req.StartNode, end, req.Graph)
	if resp, ok := cached[GraphResponse](e, key); ok {
		resp = resp.clone()
		resp.RunID, resp.Cached = e.hit(FamilyGraph, req.Algorithm), true
		return &resp, nil
	}

	// 4) Run.
	resp := GraphResponse{}
	id, err := e.track(ctx, FamilyGraph, req.Algorithm, func() (snapshot.Trace, error) {
		return runGraph(g, req.Algorithm, req.StartNode, end, &resp)
	})
	if err != nil {
		return nil, err
	}
	e.remember(key, resp.clone(), resp.Trace.Cells())
	resp.RunID = id

	return &resp, nil
}

// runGraph dispatches one graph run and fills the algorithm result into
// resp. end < 0 means no end node.
func runGraph(g *core.Graph, algorithm string, start, end int, resp *GraphResponse) (snapshot.Trace, error) {
	switch algorithm {
	case GraphBFS:
		res, err := bfs.BFS(g, start)
		if err != nil {
			return nil, err
		}
		resp.Order, resp.Trace = res.Order, res.Trace

	case GraphDFS:
		res, err := dfs.DFS(g, start)
		if err != nil {
			return nil, err
		}
		resp.Order, resp.Trace = res.Order, res.Trace

	case GraphDijkstra:
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(start))
		if err != nil {
			return nil, err
		}
		resp.Order, resp.Trace = res.Order, res.Trace
		resp.Distances = make([]*int64, len(res.Dist))
		for v, d := range res.Dist {
			if d != dijkstra.Infinity {
				d := d
				resp.Distances[v] = &d
			}
		}
		if end >= 0 && res.Reachable(end) {
			path, err := res.PathTo(end)
			if err != nil {
				return nil, err
			}
			resp.Path = path
		}

	case GraphKruskal, GraphPrim:
		res, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(algorithm))
		if err != nil {
			return nil, err
		}
		total := res.Total
		resp.MSTEdges, resp.TotalWeight, resp.Trace = res.Edges, &total, res.Trace

	default:
		return nil, fmt.Errorf("%w: graph %q", ErrUnknownAlgorithm, algorithm)
	}

	return resp.Trace, nil
}
