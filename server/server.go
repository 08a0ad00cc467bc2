// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/algotrace/engine"
)

// Server routes HTTP requests to an engine.Engine.
type Server struct {
	engine *engine.Engine
	opts   Options
	log    *zap.Logger
	router chi.Router
}

// New builds a Server around e.
func New(e *engine.Engine, opts ...Option) (*Server, error) {
	if e == nil {
		return nil, errors.New("server: nil engine")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("server: MaxBodyBytes must be > 0, got %d", o.MaxBodyBytes)
	}
	if o.RequestsPerSecond < 0 || (o.RequestsPerSecond > 0 && o.Burst < 1) {
		return nil, fmt.Errorf("server: bad rate limit %.2f/s burst %d", o.RequestsPerSecond, o.Burst)
	}

	s := &Server{engine: e, opts: o, log: o.Logger}
	s.router = s.routes()
	return s, nil
}

// Handler returns the root handler, for embedding and tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, fmt.Errorf("%w: %s", engine.ErrNotFound, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, fmt.Errorf("%w: %s %s", engine.ErrMethodNotAllowed, r.Method, r.URL.Path))
	})

	r.Get("/healthz", s.health)
	if s.opts.MetricsPath != "" {
		r.Method(http.MethodGet, s.opts.MetricsPath, promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		if s.opts.RequestsPerSecond > 0 {
			r.Use(s.limit(rate.NewLimiter(rate.Limit(s.opts.RequestsPerSecond), s.opts.Burst)))
		}
		r.Use(s.measure)

		r.Get("/algorithms", s.algorithms)
		r.Get("/generate/array", s.generateArray)
		r.Get("/generate/graph", s.generateGraph)

		r.Post("/sort", run(s, s.engine.Sort))
		r.Post("/search", run(s, s.engine.Search))
		r.Post("/graph", run(s, s.engine.Graph))
		r.Post("/tree", run(s, s.engine.Tree))
		r.Post("/heap", run(s, s.engine.Heap))
		r.Post("/data-structure", run(s, s.engine.DataStructure))
	})

	return r
}

// ListenAndServe listens on the configured address and serves until ctx
// is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within ShutdownTimeout. A nil return means a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		IdleTimeout:  s.opts.IdleTimeout,
		ErrorLog:     zap.NewStdLog(s.log),
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.log.Info("server shutting down")
	err := srv.Shutdown(shutdownCtx)
	<-errc
	if err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
