// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algotrace/config"
	"github.com/katalvlaran/algotrace/engine"
)

// app carries the global flags and what PersistentPreRunE builds from them.
type app struct {
	cfgPath  string
	logLevel string
	compact  bool

	cfg *config.Config
	log *zap.Logger
	eng *engine.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "algotrace",
		Short: "Step-by-step traces of classic algorithms",
		Long: `algotrace runs sorting, searching, graph and data-structure algorithms
and records every step as an immutable snapshot, ready for replay.

Use "serve" for the HTTP API or one of the run commands for a single trace.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")
	pf.BoolVar(&a.compact, "compact", false, "print JSON on a single line")

	root.AddCommand(
		a.serveCmd(),
		a.algorithmsCmd(),
		a.sortCmd(),
		a.searchCmd(),
		a.graphCmd(),
		a.treeCmd(),
		a.heapCmd(),
		a.genCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if cmd.Flags().Changed("addr") {
		addr, _ := cmd.Flags().GetString("addr")
		cfg.Server.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	eng, err := engine.New(cfg.EngineOptions(log)...)
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	a.cfg, a.log, a.eng = cfg, log, eng
	return nil
}

// print writes v as JSON to w.
func (a *app) print(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if !a.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
