// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// topology.go - name-based graph generation for callers that receive a
// topology as a string (HTTP query, CLI flag).

package builder

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algotrace/core"
)

// Topology names accepted by Generate.
const (
	TopologyRandom   = "random"
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyWheel    = "wheel"
	TopologyComplete = "complete"
	TopologyGrid     = "grid"
	TopologySparse   = "sparse"
)

// SparseProbability is the edge probability of TopologySparse.
const SparseProbability = 0.3

var topologies = []string{
	TopologyRandom, TopologyPath, TopologyCycle, TopologyStar,
	TopologyWheel, TopologyComplete, TopologyGrid, TopologySparse,
}

// Topologies returns the names Generate accepts, random first.
func Topologies() []string { return slices.Clone(topologies) }

// Generate builds an undirected graph of the named topology over n nodes.
// An empty name means TopologyRandom. For TopologyGrid the lattice is the
// largest rows×cols ≤ n with rows = ⌊√n⌋, so the result may hold fewer
// than n nodes. TopologySparse may be disconnected.
func Generate(name string, n int, opts ...BuilderOption) (*core.Graph, error) {
	order := n
	var cons Constructor
	switch name {
	case "", TopologyRandom:
		cons = RandomConnected(n)
	case TopologyPath:
		cons = Path(n)
	case TopologyCycle:
		cons = Cycle(n)
	case TopologyStar:
		cons = Star(n)
	case TopologyWheel:
		cons = Wheel(n)
	case TopologyComplete:
		cons = Complete(n)
	case TopologyGrid:
		if n < MinGridDim {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodGrid, n, MinGridDim, ErrTooFewVertices)
		}
		rows := int(math.Sqrt(float64(n)))
		cols := n / rows
		order = rows * cols
		cons = Grid(rows, cols)
	case TopologySparse:
		cons = RandomSparse(n, SparseProbability)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
	if order < 0 {
		order = 0
	}

	return BuildGraph(order, []core.GraphOption{core.WithDirected(false)}, opts, cons)
}
