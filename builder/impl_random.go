// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// impl_random.go - stochastic topologies: RandomSparse and RandomConnected.
//
// Contract:
//   - cfg.rng must be non-nil unless the outcome is deterministic
//     (RandomSparse with p ∈ {0,1}); otherwise ErrNeedRandSource.
//   - Trial order is fixed (i asc, then j asc with j > i), so a fixed seed
//     reproduces the same graph.
//
// Complexity:
//   - RandomSparse: O(n²) Bernoulli trials.
//   - RandomConnected: O(n²) candidate pairs plus one shuffle.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
)

// RandomSparse returns a Constructor that includes each unordered pair
// {i,j}, i<j<n, independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters before any mutation.
		if err := checkSize(g, MethodRandomSparse, n, MinRandomVertices); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Trials in stable order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == MaxProbability
				if cfg.rng != nil && p > MinProbability && p < MaxProbability {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// RandomConnected returns a Constructor for a connected graph over n
// nodes: the ring 0—1—…—(n-1)—0 (just 0—1 when n == 2) plus random chords
// until a target edge count drawn uniformly from [n, n(n-1)/2] is met.
// Chords are distinct pairs not already on the ring.
func RandomConnected(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		if err := checkSize(g, MethodRandomConnected, n, MinRandomVertices); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomConnected, ErrNeedRandSource)
		}
		if n == 1 {
			return nil
		}
		if n == 2 {
			return addEdge(g, cfg, MethodRandomConnected, 0, 1)
		}

		// 2) Backbone ring keeps the graph connected.
		if err := ring(g, cfg, MethodRandomConnected, 0, n); err != nil {
			return err
		}

		// 3) Draw the target size and collect the remaining pairs.
		minEdges, maxEdges := n, n*(n-1)/2
		target := minEdges + cfg.rng.Intn(maxEdges-minEdges+1)

		type pair struct{ u, v int }
		candidates := make([]pair, 0, maxEdges-minEdges)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				onRing := j == i+1 || (i == 0 && j == n-1)
				if !onRing {
					candidates = append(candidates, pair{i, j})
				}
			}
		}
		cfg.rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})

		// 4) Add chords until the target is reached.
		for k := 0; k < target-minEdges && k < len(candidates); k++ {
			c := candidates[k]
			if err := addEdge(g, cfg, MethodRandomConnected, c.u, c.v); err != nil {
				return err
			}
		}
		return nil
	}
}
