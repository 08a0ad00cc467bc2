// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/algotrace/engine"
)

// ErrRateLimited is returned when the request limiter rejects a request.
var ErrRateLimited = errors.New("server: rate limit exceeded")

type errorBody struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	if errors.Is(err, ErrRateLimited) {
		return http.StatusTooManyRequests
	}
	return engine.StatusCode(err)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
	}
	s.render(w, r, status, errorBody{Error: err.Error()})
}

// decode reads a JSON body into v. Unknown fields are ignored; an empty
// body, malformed JSON or trailing data is an invalid argument.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return fmt.Errorf("%w: body exceeds %d bytes", engine.ErrTooLarge, tooBig.Limit)
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: request body is required", engine.ErrInvalidArgument)
		case errors.Is(err, engine.ErrInvalidArgument):
			return err
		default:
			return fmt.Errorf("%w: %w", engine.ErrInvalidArgument, err)
		}
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON body", engine.ErrInvalidArgument)
	}
	return nil
}
