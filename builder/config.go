// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// config.go - resolved, immutable builder configuration.
//
// Contract:
//   - newBuilderConfig applies options in order; the last writer wins.
//   - rng stays nil unless WithSeed/WithRand is given; deterministic
//     constructors never touch it.
//   - weightFn is never nil after resolution.

package builder

import "math/rand"

// builderConfig holds the knobs constructors read. It is passed by value
// so a constructor cannot leak changes into the next one.
type builderConfig struct {
	// rng drives stochastic constructors and weight sampling.
	rng *rand.Rand
	// weightFn returns the weight of the next emitted edge.
	weightFn WeightFn
}

// newBuilderConfig resolves opts over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nextWeight samples one edge weight.
func (c builderConfig) nextWeight() int {
	return c.weightFn(c.rng)
}
