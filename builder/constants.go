// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// constants.go - method tokens, size minima and generator defaults.

package builder

// Method tokens used as error-message prefixes.
const (
	MethodCycle           = "Cycle"
	MethodPath            = "Path"
	MethodStar            = "Star"
	MethodWheel           = "Wheel"
	MethodComplete        = "Complete"
	MethodGrid            = "Grid"
	MethodRandomSparse    = "RandomSparse"
	MethodRandomConnected = "RandomConnected"
	MethodRandomArray     = "RandomArray"
)

// Minimum sizes per topology.
const (
	MinCycleNodes     = 3
	MinPathNodes      = 2
	MinStarNodes      = 2
	MinWheelNodes     = 4
	MinCompleteNodes  = 1
	MinGridDim        = 1
	MinRandomVertices = 1
)

// DefaultEdgeWeight is the weight DefaultWeightFn returns.
const DefaultEdgeWeight = 1

// Generator defaults. Arrays hold 5..15 values in 1..100; random graphs
// hold 5..10 nodes with weights 1..10.
const (
	DefaultArrayMinLen   = 5
	DefaultArrayMaxLen   = 15
	DefaultValueMin      = 1
	DefaultValueMax      = 100
	DefaultGraphMinNodes = 5
	DefaultGraphMaxNodes = 10
	DefaultWeightMin     = 1
	DefaultWeightMax     = 10
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
