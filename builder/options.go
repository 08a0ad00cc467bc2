// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// options.go - functional options resolved into builderConfig.
//
// Option constructors panic on programmer errors (nil arguments); runtime
// parameter errors are reported by the constructors themselves.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithRand installs r as the random source. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh random source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge-weight sampler. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
