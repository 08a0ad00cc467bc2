// SPDX-License-Identifier: MIT

// Package snapshot defines the immutable state captures emitted by every
// instrumented algorithm and the append-only Recorder that collects them into
// a Trace.
//
// Four variants exist, one per domain:
//
//	ArraySnapshot: values, 0..2 highlighted positions, status text
//	GraphSnapshot: nodes tagged unvisited|current|visited, weighted edges, status text
//	TreeSnapshot : recursive binary tree (nil root ⇒ empty tree), status text
//	HeapSnapshot : heap array, 0..2 highlighted positions, status text
//
// Every constructor copies the live structure it is given, so later
// mutations of the algorithm state are never observed through a recorded
// snapshot.
//
// Wire format (encoding/json):
//
//	{"type":"array","array":[3,1],"highlights":[0,1],"status":"..."}
//	{"type":"graph","nodes":[{"id":0,"state":"current"}],"edges":[{"source":0,"target":1,"weight":4}],"status":"..."}
//	{"type":"tree","tree":{"value":5,"isHighlighted":true,"isFound":false,"left":null,"right":null},"status":"..."}
//	{"type":"heap","heap":[8,3,5],"highlights":[],"status":"..."}
//
// A Recorder is used by exactly one run on one goroutine: Record appends,
// Finish hands the Trace over once. Recording after Finish is a programmer
// error and panics with ErrFinished.
package snapshot
