// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/algotrace/builder"
	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dijkstra"
	"github.com/katalvlaran/algotrace/maxheap"
	"github.com/katalvlaran/algotrace/prim_kruskal"
	"github.com/katalvlaran/algotrace/search"
	"github.com/katalvlaran/algotrace/sorting"
)

// Error taxonomy of the engine. Every error returned by an Engine method
// matches exactly one of these with errors.Is.
var (
	// ErrUnknownAlgorithm indicates an unrecognized algorithm, operation,
	// structure or topology name.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrInvalidArgument indicates a malformed or missing parameter.
	ErrInvalidArgument = errors.New("engine: invalid argument")

	// ErrInvalidNodeIndex indicates a start, end or edge-target node index
	// outside the graph.
	ErrInvalidNodeIndex = errors.New("engine: invalid node index")

	// ErrMethodNotAllowed indicates a wrong verb for an endpoint.
	ErrMethodNotAllowed = errors.New("engine: method not allowed")

	// ErrNotFound indicates that no route matched.
	ErrNotFound = errors.New("engine: not found")

	// ErrTooLarge indicates an input above the configured limits. It is an
	// ErrInvalidArgument as well.
	ErrTooLarge = fmt.Errorf("%w: input exceeds limits", ErrInvalidArgument)

	// ErrBusy indicates that no run slot became free within the acquire
	// timeout.
	ErrBusy = errors.New("engine: too many concurrent runs")
)

// StatusCode maps an error to the HTTP status the API boundary reports.
// nil maps to 200.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrUnknownAlgorithm),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrInvalidNodeIndex):
		return http.StatusBadRequest
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// classify wraps an error from an algorithm package with the matching
// taxonomy sentinel. Errors already in the taxonomy pass through.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrUnknownAlgorithm), errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrInvalidNodeIndex), errors.Is(err, ErrBusy):
		return err
	case errors.As(err, &verrs):
		return fmt.Errorf("%w: %s", ErrInvalidArgument, describe(verrs))
	case errors.Is(err, sorting.ErrUnknownAlgorithm),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, prim_kruskal.ErrUnknownMethod),
		errors.Is(err, builder.ErrUnknownTopology):
		return fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
	case errors.Is(err, core.ErrInvalidNodeIndex):
		return fmt.Errorf("%w: %w", ErrInvalidNodeIndex, err)
	case errors.Is(err, core.ErrBadNeighbor),
		errors.Is(err, core.ErrWeightOverflow),
		errors.Is(err, dijkstra.ErrNegativeWeight),
		errors.Is(err, maxheap.ErrIndexOutOfRange),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrBadSize),
		errors.Is(err, builder.ErrOptionViolation),
		errors.Is(err, builder.ErrInvalidProbability):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	default:
		return err
	}
}

// describe renders validation failures as "field: rule" pairs.
func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, ", ")
}
