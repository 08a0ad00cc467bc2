// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/katalvlaran/algotrace/engine"
	"github.com/katalvlaran/algotrace/store"
)

// run adapts an engine operation to a POST handler.
func run[Req, Resp any](s *Server, op func(context.Context, Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := s.decode(w, r, &req); err != nil {
			s.fail(w, r, err)
			return
		}
		resp, err := op(r.Context(), req)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.render(w, r, http.StatusOK, resp)
	}
}

type healthBody struct {
	Status string      `json:"status"`
	Stats  store.Stats `json:"stats"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, healthBody{Status: "ok", Stats: s.engine.Stats()})
}

func (s *Server) algorithms(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, engine.Algorithms())
}

func (s *Server) generateArray(w http.ResponseWriter, r *http.Request) {
	var (
		req engine.ArrayGenRequest
		err error
	)
	q := r.URL.Query()
	if req.Size, err = queryInt(q.Get("size"), "size"); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Min, err = queryInt(q.Get("min"), "min"); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Max, err = queryInt(q.Get("max"), "max"); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Seed, err = querySeed(q.Get("seed")); err != nil {
		s.fail(w, r, err)
		return
	}

	resp, err := s.engine.GenerateArray(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, resp)
}

func (s *Server) generateGraph(w http.ResponseWriter, r *http.Request) {
	var (
		req engine.GraphGenRequest
		err error
	)
	q := r.URL.Query()
	if req.Nodes, err = queryInt(q.Get("nodes"), "nodes"); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Seed, err = querySeed(q.Get("seed")); err != nil {
		s.fail(w, r, err)
		return
	}
	req.Topology = q.Get("topology")

	resp, err := s.engine.GenerateGraph(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, resp)
}

// queryInt parses an optional integer query parameter; "" yields nil.
func queryInt(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", engine.ErrInvalidArgument, name, raw)
	}
	return &v, nil
}

func querySeed(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: seed=%q is not an integer", engine.ErrInvalidArgument, raw)
	}
	return &v, nil
}
