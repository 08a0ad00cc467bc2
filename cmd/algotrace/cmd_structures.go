// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/engine"
)

// step is one OP[:ARG] token of the tree and heap commands.
type step struct {
	op  string
	arg string
}

func parseSteps(args []string) []step {
	steps := make([]step, len(args))
	for i, tok := range args {
		op, arg, _ := strings.Cut(tok, ":")
		steps[i] = step{op: op, arg: arg}
	}
	return steps
}

// optionalInt parses arg as a single integer; "" yields nil.
func optionalInt(arg string) (*int, error) {
	if arg == "" {
		return nil, nil
	}
	v, err := parseInts([]string{arg})
	if err != nil {
		return nil, err
	}
	return &v[0], nil
}

func (a *app) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree OP[:VALUE]...",
		Short: "Apply operations to a binary search tree and print each trace",
		Long: `Apply insert, search, delete and clear to one binary search tree,
in order. The tree lives for the duration of the command.`,
		Example: "  algotrace tree insert:50 insert:30 insert:70 delete:50 search:70",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range parseSteps(args) {
				v, err := optionalInt(s.arg)
				if err != nil {
					return fmt.Errorf("%s: %w", s.op, err)
				}
				resp, err := a.eng.Tree(cmd.Context(), engine.TreeRequest{Operation: s.op, Value: v})
				if err != nil {
					return fmt.Errorf("%s: %w", s.op, err)
				}
				if err := a.print(cmd.OutOrStdout(), resp); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) heapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heap OP[:ARG]...",
		Short: "Apply operations to a max-heap and print each trace",
		Long: `Apply create:V1,V2,..., insert:V, extractMax, heapify:INDEX and clear to
one max-heap, in order. The heap lives for the duration of the command.`,
		Example: "  algotrace heap create:3,9,4,1 insert:12 extractMax",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range parseSteps(args) {
				req := engine.HeapRequest{Operation: s.op}
				var err error
				switch s.op {
				case engine.OpCreate:
					req.Array, err = parseInts(strings.Split(s.arg, ","))
					if s.arg == "" {
						req.Array, err = engine.IntList{}, nil
					}
				case engine.OpHeapify:
					req.Index, err = optionalInt(s.arg)
				default:
					req.Value, err = optionalInt(s.arg)
				}
				if err != nil {
					return fmt.Errorf("%s: %w", s.op, err)
				}

				resp, err := a.eng.Heap(cmd.Context(), req)
				if err != nil {
					return fmt.Errorf("%s: %w", s.op, err)
				}
				if err := a.print(cmd.OutOrStdout(), resp); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
