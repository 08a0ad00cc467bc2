// SPDX-License-Identifier: MIT

// Package builder provides "functional-options"-style generators for the
// inputs the trace engine consumes: weighted undirected graphs and random
// integer arrays.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     BuilderOption:     a function that mutates builderConfig before use.
//     builderConfig:     holds the RNG and the edge-weight function.
//   - Graph constructors (Constructor implementations):
//     Path, Cycle, Star, Wheel, Complete, Grid.
//     RandomSparse:      independent edge trials with probability p.
//     RandomConnected:   a Hamiltonian ring plus random chords.
//   - Edge-weight distributions (WeightFn implementations):
//     DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     ConstantWeightFn:  fixed user-provided value.
//     UniformWeightFn:   uniform integer in [min,max].
//   - Named topologies: Generate(name, n, opts...) resolves a topology name
//     into a ready undirected graph.
//   - Arrays and sizes: RandomArray, DefaultLength and DefaultOrder.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed produce identical output.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Runtime parameter errors wrap sentinel errors with a method token
//     ("Cycle: n=2 < min=3: builder: parameter too small").
package builder
