package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/algotrace/engine"
	"github.com/katalvlaran/algotrace/server"
)

func newServer(t *testing.T, opts ...server.Option) *server.Server {
	t.Helper()
	e, err := engine.New()
	require.NoError(t, err)
	s, err := server.New(e, opts...)
	require.NoError(t, err)
	return s
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeInto[map[string]string](t, rec)
	require.Contains(t, body, "error")
	return body["error"]
}

func TestNew_Errors(t *testing.T) {
	_, err := server.New(nil)
	assert.Error(t, err)

	e, err := engine.New()
	require.NoError(t, err)
	_, err = server.New(e, server.WithMaxBodyBytes(0))
	assert.Error(t, err)
	_, err = server.New(e, server.WithRateLimit(5, 0))
	assert.Error(t, err)
	_, err = server.New(e, server.WithRateLimit(-1, 1))
	assert.Error(t, err)
}

func TestSort(t *testing.T) {
	h := newServer(t).Handler()

	for _, body := range []string{
		`{"algorithm":"bubble","array":[3,1,2]}`,
		`{"algorithm":"bubble","array":"[3,1,2]"}`,
		`{"algorithm":"bubble","array":"3, 1, 2"}`,
	} {
		rec := do(t, h, http.MethodPost, "/api/sort", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		resp := decodeInto[engine.SortResponse](t, rec)
		assert.Equal(t, []int{1, 2, 3}, resp.Sorted)
		assert.NotEmpty(t, resp.Trace)
		assert.NotEmpty(t, resp.RunID)
	}
}

func TestSearch(t *testing.T) {
	h := newServer(t).Handler()

	rec := do(t, h, http.MethodPost, "/api/search", `{"algorithm":"linear","array":[4,8,15],"target":8}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, decodeInto[engine.SearchResponse](t, rec).Result)

	rec = do(t, h, http.MethodPost, "/api/search", `{"algorithm":"binary","array":[1,3,5]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorOf(t, rec), "Target")
}

func TestGraph(t *testing.T) {
	h := newServer(t).Handler()
	graph := `[[{"target":1,"weight":4},[2,1]],[[0,4],[2,2]],[[0,1],[1,2]]]`

	rec := do(t, h, http.MethodPost, "/api/graph", `{"algorithm":"dijkstra","graph":`+graph+`,"startNode":0,"endNode":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeInto[engine.GraphResponse](t, rec)
	assert.Equal(t, []int{0, 2, 1}, resp.Path)
	require.Len(t, resp.Distances, 3)
	require.NotNil(t, resp.Distances[1])
	assert.Equal(t, int64(3), *resp.Distances[1])

	rec = do(t, h, http.MethodPost, "/api/graph", `{"algorithm":"kruskal","graph":`+graph+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp = decodeInto[engine.GraphResponse](t, rec)
	require.NotNil(t, resp.TotalWeight)
	assert.Equal(t, int64(3), *resp.TotalWeight)

	rec = do(t, h, http.MethodPost, "/api/graph", `{"algorithm":"bfs","graph":`+graph+`,"startNode":7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, errorOf(t, rec))

	rec = do(t, h, http.MethodPost, "/api/graph", `{"algorithm":"astar","graph":`+graph+`}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTreeAndHeap(t *testing.T) {
	h := newServer(t).Handler()

	for _, v := range []string{"50", "30", "70"} {
		rec := do(t, h, http.MethodPost, "/api/tree", `{"operation":"insert","value":`+v+`}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	rec := do(t, h, http.MethodPost, "/api/tree", `{"operation":"search","value":30}`)
	require.Equal(t, http.StatusOK, rec.Code)
	tree := decodeInto[engine.TreeResponse](t, rec)
	require.NotNil(t, tree.Found)
	assert.True(t, *tree.Found)
	assert.Equal(t, 3, tree.Size)

	rec = do(t, h, http.MethodPost, "/api/heap", `{"operation":"create","array":[3,9,4]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(t, h, http.MethodPost, "/api/heap", `{"operation":"extractMax"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	heap := decodeInto[engine.HeapResponse](t, rec)
	require.NotNil(t, heap.Extracted)
	assert.Equal(t, 9, *heap.Extracted)
	assert.Len(t, heap.Heap, 2)

	rec = do(t, h, http.MethodPost, "/api/data-structure", `{"structure":"heap","operation":"insert","value":11}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	heap = decodeInto[engine.HeapResponse](t, rec)
	assert.Equal(t, 11, heap.Heap[0])

	rec = do(t, h, http.MethodPost, "/api/data-structure", `{"structure":"trie","operation":"insert","value":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeInto[map[string]any](t, rec)
	assert.Equal(t, "ok", health["status"])
	stats := health["stats"].(map[string]any)
	assert.EqualValues(t, 3, stats["treeSize"])
	assert.EqualValues(t, 3, stats["heapSize"])
}

func TestBodyErrors(t *testing.T) {
	h := newServer(t, server.WithMaxBodyBytes(48)).Handler()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"empty", "", http.StatusBadRequest},
		{"malformed", `{"algorithm":`, http.StatusBadRequest},
		{"bad element", `{"algorithm":"bubble","array":"1,x"}`, http.StatusBadRequest},
		{"trailing", `{"algorithm":"bubble"} {}`, http.StatusBadRequest},
		{"too large", `{"algorithm":"bubble","array":[1,2,3,4,5,6,7,8,9]}`, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/sort", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, errorOf(t, rec))
		})
	}
}

func TestRouting(t *testing.T) {
	h := newServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/api/sort", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.NotEmpty(t, errorOf(t, rec))

	rec = do(t, h, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, errorOf(t, rec))

	rec = do(t, h, http.MethodPost, "/api/nowhere", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodOptions, "/api/sort", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/algorithms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	catalog := decodeInto[engine.Catalog](t, rec)
	assert.Contains(t, catalog.Sorting, "bubble")
	assert.Equal(t, []string{"linear", "binary"}, catalog.Searching)
	assert.Contains(t, catalog.DataStructures, "heap")
}

func TestGenerate(t *testing.T) {
	h := newServer(t).Handler()

	first := do(t, h, http.MethodGet, "/api/generate/array?size=6&min=1&max=9&seed=3", "")
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	arr := decodeInto[engine.ArrayGenResponse](t, first)
	assert.Len(t, arr.Array, 6)
	assert.Equal(t, int64(3), arr.Seed)

	second := do(t, h, http.MethodGet, "/api/generate/array?size=6&min=1&max=9&seed=3", "")
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	rec := do(t, h, http.MethodGet, "/api/generate/array?size=six", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/generate/array?seed=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/generate/graph?nodes=4&topology=cycle&seed=1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	g := decodeInto[engine.GraphGenResponse](t, rec)
	assert.Equal(t, 4, g.Nodes)
	assert.Equal(t, 4, g.Edges)
	assert.Equal(t, "cycle", g.Topology)

	rec = do(t, h, http.MethodGet, "/api/generate/graph?topology=hypercube", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := newServer(t, server.WithRateLimit(0.001, 1)).Handler()

	rec := do(t, h, http.MethodGet, "/api/algorithms", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/algorithms", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, server.ErrRateLimited.Error(), errorOf(t, rec))

	// Health checks bypass the limiter.
	rec = do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetrics(t *testing.T) {
	h := newServer(t).Handler()
	do(t, h, http.MethodPost, "/api/sort", `{"algorithm":"quick","array":[2,1]}`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "algotrace_http_requests_total")
	assert.Contains(t, rec.Body.String(), "algotrace_runs_total")

	rec = do(t, newServer(t, server.WithMetricsPath("")).Handler(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServe_Shutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	tr := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: tr, Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	tr.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServe_BadAddr(t *testing.T) {
	s := newServer(t, server.WithAddr("no-port"))
	err := s.ListenAndServe(context.Background())
	assert.Error(t, err)
}
