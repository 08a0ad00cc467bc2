// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/engine"
)

func (a *app) algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List every algorithm grouped by family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(cmd.OutOrStdout(), engine.Algorithms())
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sort ALGORITHM VALUE...",
		Short:   "Trace a sorting algorithm",
		Example: "  algotrace sort merge 5 3 8 1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			resp, err := a.eng.Sort(cmd.Context(), engine.SortRequest{Algorithm: args[0], Array: values})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "search ALGORITHM TARGET VALUE...",
		Short:   "Trace a search algorithm",
		Example: "  algotrace search binary 8 1 3 5 8 13",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			target := nums[0]
			resp, err := a.eng.Search(cmd.Context(), engine.SearchRequest{
				Algorithm: args[0],
				Array:     nums[1:],
				Target:    &target,
			})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
}

func (a *app) graphCmd() *cobra.Command {
	var (
		graphJSON string
		file      string
		generate  string
		nodes     int
		seed      int64
		start     int
		end       int
	)
	cmd := &cobra.Command{
		Use:   "graph ALGORITHM",
		Short: "Trace a graph algorithm",
		Long: `Trace bfs, dfs, dijkstra, kruskal or prim.

The input graph is an adjacency list given inline (--graph), read from a
file (--file) or generated (--generate TOPOLOGY). Entries are
{"target":t,"weight":w} objects or [t,w] pairs.`,
		Example: `  algotrace graph bfs --graph '[[[1,1]],[[0,1],[2,1]],[[1,1]]]'
  algotrace graph prim --generate complete --nodes 5 --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := 0
			for _, set := range []bool{graphJSON != "", file != "", generate != ""} {
				if set {
					sources++
				}
			}
			if sources != 1 {
				return fmt.Errorf("%w: exactly one of --graph, --file or --generate is required", engine.ErrInvalidArgument)
			}

			var adj engine.Adjacency
			switch {
			case generate != "":
				req := engine.GraphGenRequest{Topology: generate}
				if cmd.Flags().Changed("nodes") {
					req.Nodes = &nodes
				}
				if cmd.Flags().Changed("seed") {
					req.Seed = &seed
				}
				gen, err := a.eng.GenerateGraph(cmd.Context(), req)
				if err != nil {
					return err
				}
				adj = gen.Graph
			default:
				data := []byte(graphJSON)
				if file != "" {
					var err error
					if data, err = os.ReadFile(file); err != nil {
						return err
					}
				}
				if err := json.Unmarshal(data, &adj); err != nil {
					return fmt.Errorf("%w: graph: %w", engine.ErrInvalidArgument, err)
				}
			}

			req := engine.GraphRequest{Algorithm: args[0], Graph: adj, StartNode: start}
			if cmd.Flags().Changed("end") {
				req.EndNode = &end
			}
			resp, err := a.eng.Graph(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}

	f := cmd.Flags()
	f.StringVar(&graphJSON, "graph", "", "adjacency list as JSON")
	f.StringVarP(&file, "file", "f", "", "read the adjacency list from a JSON file")
	f.StringVar(&generate, "generate", "", "generate a graph of this topology")
	f.IntVar(&nodes, "nodes", 0, "node count for --generate")
	f.Int64Var(&seed, "seed", 0, "seed for --generate")
	f.IntVarP(&start, "start", "s", 0, "start node (bfs, dfs, dijkstra)")
	f.IntVarP(&end, "end", "e", 0, "end node of the reported dijkstra path")
	return cmd
}

// parseInts converts command-line arguments to integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", engine.ErrInvalidArgument, s)
		}
		out[i] = v
	}
	return out, nil
}
