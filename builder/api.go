// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g with
//     n nodes, resolves cfg, runs cons in order.
//   - Constructors operate on node indices [0,k) of the graph they receive;
//     k may not exceed g.Order().
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n nodes and graph options gopts,
// resolves the builder configuration from bopts and applies all
// constructors in order. A constructor error is wrapped as
// "BuildGraph: %w" and returned immediately.
//
// Complexity: O(n + len(bopts)) plus the cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrBadSize)
	}
	g := core.NewGraph(n, gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// checkSize validates min ≤ n ≤ g.Order() for the given method.
func checkSize(g *core.Graph, method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	if order := g.Order(); n > order {
		return fmt.Errorf("%s: n=%d exceeds graph order %d: %w", method, n, order, ErrBadSize)
	}
	return nil
}

// addEdge emits u—v with the next sampled weight.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.nextWeight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}
	return nil
}
