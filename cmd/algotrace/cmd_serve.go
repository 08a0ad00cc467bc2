// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algotrace/server"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	cmd.Flags().String("addr", "", "override server.addr")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.New(a.eng, a.cfg.ServerOptions(a.log)...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			a.log.Info("shutdown requested", zap.Error(context.Cause(ctx)))
		}
		return nil
	})

	a.log.Info("algotrace starting",
		zap.String("addr", a.cfg.Server.Addr),
		zap.Int64("max_concurrent_runs", a.cfg.Limits.MaxConcurrentRuns),
		zap.Bool("cache", a.cfg.Cache.Enabled))
	return g.Wait()
}
