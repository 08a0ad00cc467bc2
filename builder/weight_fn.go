// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// weight_fn.go - integer edge-weight distributions.
//
// Contract:
//   - Every WeightFn tolerates a nil rng and then returns a fixed value.
//   - Factories panic on invalid parameters (negative values, min > max).

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn returns the weight of one edge, drawing from rng when needed.
type WeightFn func(rng *rand.Rand) int

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformWeightFn returns a WeightFn drawing uniformly from [min, max]
// inclusive. With a nil rng it returns min.
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}
