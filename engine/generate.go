// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/algotrace/builder"
)

// seedOf returns *s, or a time-based seed when s is nil.
func seedOf(s *int64) int64 {
	if s != nil {
		return *s
	}
	return time.Now().UnixNano()
}

// GenerateArray returns a random array. The same seed, size and range
// always yield the same array.
func (e *Engine) GenerateArray(_ context.Context, req ArrayGenRequest) (*ArrayGenResponse, error) {
	if err := e.check(req); err != nil {
		return nil, err
	}
	seed := seedOf(req.Seed)
	r := rand.New(rand.NewSource(seed))

	lo, hi := builder.DefaultValueMin, builder.DefaultValueMax
	if req.Min != nil {
		lo = *req.Min
	}
	if req.Max != nil {
		hi = *req.Max
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrInvalidArgument, lo, hi)
	}

	size, err := builder.DefaultLength(builder.WithRand(r))
	if err != nil {
		return nil, err
	}
	if req.Size != nil {
		size = *req.Size
	}
	if size > e.limits.MaxArrayLen {
		return nil, tooLarge("array", size, e.limits.MaxArrayLen)
	}

	values, err := builder.RandomArray(size, lo, hi, builder.WithRand(r))
	if err != nil {
		return nil, classify(err)
	}
	e.log.Debug("array generated", zap.Int("size", size), zap.Int64("seed", seed))

	return &ArrayGenResponse{Array: values, Seed: seed}, nil
}

// GenerateGraph returns a random undirected graph of the requested
// topology with edge weights in 1..10.
func (e *Engine) GenerateGraph(_ context.Context, req GraphGenRequest) (*GraphGenResponse, error) {
	if err := e.check(req); err != nil {
		return nil, err
	}
	topology := req.Topology
	if topology == "" {
		topology = builder.TopologyRandom
	}
	seed := seedOf(req.Seed)
	r := rand.New(rand.NewSource(seed))

	n, err := builder.DefaultOrder(builder.WithRand(r))
	if err != nil {
		return nil, err
	}
	if req.Nodes != nil {
		n = *req.Nodes
	}
	if n > e.limits.MaxGraphNodes {
		return nil, tooLarge("graph nodes", n, e.limits.MaxGraphNodes)
	}

	g, err := builder.Generate(topology, n,
		builder.WithRand(r),
		builder.WithUniformWeight(builder.DefaultWeightMin, builder.DefaultWeightMax))
	if err != nil {
		return nil, classify(err)
	}
	edges := len(g.UndirectedEdges())
	e.log.Debug("graph generated",
		zap.String("topology", topology),
		zap.Int("nodes", g.Order()),
		zap.Int("edges", edges),
		zap.Int64("seed", seed))

	return &GraphGenResponse{
		Graph:    g.Adjacency(),
		Nodes:    g.Order(),
		Edges:    edges,
		Topology: topology,
		Seed:     seed,
		Status:   fmt.Sprintf("%s graph generated with %d nodes and %d edges", capitalize(topology), g.Order(), edges),
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
