// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// errors.go - sentinel errors shared by all constructors and generators.
//
// Callers branch with errors.Is; messages carry a method token as prefix.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor invoked without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph mutation failure.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates a negative length or a size exceeding the graph order.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates an inverted value range.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownTopology indicates a topology name Generate does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
