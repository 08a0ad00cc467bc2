// SPDX-License-Identifier: MIT

// Package server exposes the trace engine over HTTP.
//
// Routes (JSON in, JSON out):
//
//	POST /api/sort             engine.SortRequest          -> engine.SortResponse
//	POST /api/search           engine.SearchRequest        -> engine.SearchResponse
//	POST /api/graph            engine.GraphRequest         -> engine.GraphResponse
//	POST /api/tree             engine.TreeRequest          -> engine.TreeResponse
//	POST /api/heap             engine.HeapRequest          -> engine.HeapResponse
//	POST /api/data-structure   engine.DataStructureRequest -> tree or heap response
//	GET  /api/algorithms       catalog of every algorithm grouped by family
//	GET  /api/generate/array   ?size&min&max&seed
//	GET  /api/generate/graph   ?nodes&topology&seed
//	GET  /healthz              liveness plus structure sizes
//	GET  /metrics              Prometheus exposition (when enabled)
//
// Failures are rendered as {"error": "..."} with the status chosen by
// engine.StatusCode. Every response carries permissive CORS headers and
// OPTIONS preflights are answered with 200 before routing.
package server
