// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/builder"
	"github.com/katalvlaran/algotrace/engine"
)

func (a *app) genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random inputs",
	}
	cmd.AddCommand(a.genArrayCmd(), a.genGraphCmd())
	return cmd
}

func (a *app) genArrayCmd() *cobra.Command {
	var (
		size, lo, hi int
		seed         int64
	)
	cmd := &cobra.Command{
		Use:   "array",
		Short: "Generate a random integer array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req engine.ArrayGenRequest
			f := cmd.Flags()
			if f.Changed("size") {
				req.Size = &size
			}
			if f.Changed("min") {
				req.Min = &lo
			}
			if f.Changed("max") {
				req.Max = &hi
			}
			if f.Changed("seed") {
				req.Seed = &seed
			}
			resp, err := a.eng.GenerateArray(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
	f := cmd.Flags()
	f.IntVar(&size, "size", 0, "array length (default random in 5..15)")
	f.IntVar(&lo, "min", builder.DefaultValueMin, "smallest value")
	f.IntVar(&hi, "max", builder.DefaultValueMax, "largest value")
	f.Int64Var(&seed, "seed", 0, "random seed (default time-based)")
	return cmd
}

func (a *app) genGraphCmd() *cobra.Command {
	var (
		nodes    int
		topology string
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a weighted undirected graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := engine.GraphGenRequest{Topology: topology}
			f := cmd.Flags()
			if f.Changed("nodes") {
				req.Nodes = &nodes
			}
			if f.Changed("seed") {
				req.Seed = &seed
			}
			resp, err := a.eng.GenerateGraph(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
	f := cmd.Flags()
	f.IntVar(&nodes, "nodes", 0, "node count (default random in 5..10)")
	f.StringVar(&topology, "topology", builder.TopologyRandom,
		"one of "+strings.Join(builder.Topologies(), ", "))
	f.Int64Var(&seed, "seed", 0, "random seed (default time-based)")
	return cmd
}
