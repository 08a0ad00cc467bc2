// SPDX-License-Identifier: MIT
// Package: algotrace/builder
//
// impl_classic.go - deterministic topologies: Path, Cycle, Star, Wheel,
// Complete and Grid.
//
// Contract:
//   - Each constructor uses node indices [0,k) where k is its size.
//   - Edges are emitted in a stable, documented order; with an undirected
//     graph every edge appears in both endpoint lists.
//   - Weights come from cfg.weightFn, one draw per emitted edge.
//
// Complexity:
//   - Path/Cycle/Star: O(n). Wheel: O(n). Complete: O(n²). Grid: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
)

// Path returns a Constructor that builds the path 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(g, MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, i-1, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Constructor that builds the ring 0—1—…—(n-1)—0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(g, MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		return ring(g, cfg, MethodCycle, 0, n)
	}
}

// ring emits (off+i)—(off+(i+1)%n) for i = 0..n-1.
func ring(g *core.Graph, cfg builderConfig, method string, off, n int) error {
	for i := 0; i < n; i++ {
		if err := addEdge(g, cfg, method, off+i, off+(i+1)%n); err != nil {
			return err
		}
	}
	return nil
}

// Star returns a Constructor that connects hub 0 to every leaf 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(g, MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodStar, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel returns a Constructor for W_n: hub 0 joined to a rim cycle over
// nodes 1..n-1. Rim edges are emitted first, then spokes.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(g, MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := ring(g, cfg, MethodWheel, 1, n-1); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodWheel, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete returns a Constructor for K_n, emitting i—j for i<j in
// lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(g, MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbour lattice. Node
// (r,c) has index r*cols+c; for each cell the right edge precedes the
// down edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := checkSize(g, MethodGrid, rows*cols, MinGridDim); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, id, id+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
