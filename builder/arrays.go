// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// arrays.go - random integer arrays for the sorting and searching
// algorithms.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// RandomArray returns size values drawn uniformly from [lo, hi] with the
// configured rng. size == 0 yields an empty, non-nil slice.
func RandomArray(size, lo, hi int, opts ...BuilderOption) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", MethodRandomArray, size, ErrBadSize)
	}
	if hi < lo {
		return nil, fmt.Errorf("%s: lo=%d > hi=%d: %w", MethodRandomArray, lo, hi, ErrOptionViolation)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && size > 0 && hi > lo {
		return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomArray, ErrNeedRandSource)
	}

	out := make([]int, size)
	if hi == lo {
		for i := range out {
			out[i] = lo
		}
		return out, nil
	}
	span := uint64(hi) - uint64(lo) // exact even when hi-lo overflows int
	for i := range out {
		out[i] = int(uint64(lo) + drawUpTo(cfg.rng, span))
	}
	return out, nil
}

// drawUpTo returns a uniform value in [0, span]. Spans that fit Intn use it,
// wider ones reject Uint64 draws above span.
func drawUpTo(r *rand.Rand, span uint64) uint64 {
	if span < math.MaxInt {
		return uint64(r.Intn(int(span) + 1))
	}
	for {
		if v := r.Uint64(); v <= span {
			return v
		}
	}
}

// DefaultLength draws an array length in DefaultArrayMinLen..DefaultArrayMaxLen.
func DefaultLength(opts ...BuilderOption) (int, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return 0, fmt.Errorf("DefaultLength: rng is required: %w", ErrNeedRandSource)
	}
	return DefaultArrayMinLen + cfg.rng.Intn(DefaultArrayMaxLen-DefaultArrayMinLen+1), nil
}

// DefaultOrder draws a node count in DefaultGraphMinNodes..DefaultGraphMaxNodes.
func DefaultOrder(opts ...BuilderOption) (int, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return 0, fmt.Errorf("DefaultOrder: rng is required: %w", ErrNeedRandSource)
	}
	return DefaultGraphMinNodes + cfg.rng.Intn(DefaultGraphMaxNodes-DefaultGraphMinNodes+1), nil
}
