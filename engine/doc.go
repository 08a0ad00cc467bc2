// SPDX-License-Identifier: MIT

// Package engine is the request/response facade over the algorithm
// packages. It decodes nothing itself: callers hand it typed request
// bundles (SortRequest, GraphRequest, ...) and receive a response holding
// the complete trace plus the algorithm result.
//
// Every request is validated before a single snapshot is recorded:
// struct rules via go-playground/validator, names against the catalog,
// sizes against Limits and node indices against the decoded graph. Each
// run is also bounded in advance by the worst-case size of its trace
// (Limits.MaxTraceCells), so a quadratic sort of a long array is refused
// rather than recorded. Errors
// belong to the taxonomy in errors.go; StatusCode maps them to HTTP.
//
// Sort, search and graph runs are pure, so their responses are kept in an
// LRU cache keyed by the request and bounded by entry count and by the
// summed Trace.Cells of what it holds. Every caller receives its own copy
// of the result slices; the snapshots themselves are shared and must not
// be modified. Tree and heap operations mutate the
// persistent structures of a store.Store and are never cached.
//
// At most Limits.MaxConcurrent runs execute at once; a run that cannot get
// a slot within Limits.AcquireTimeout fails with ErrBusy.
package engine
