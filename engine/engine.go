// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/algotrace/snapshot"
	"github.com/katalvlaran/algotrace/store"
)

// Limits caps input sizes and concurrency.
type Limits struct {
	// MaxArrayLen bounds sort/search arrays and generated arrays.
	MaxArrayLen int
	// MaxGraphNodes bounds graph inputs and generated graphs.
	MaxGraphNodes int
	// MaxGraphEdges bounds the stored adjacency entries of a graph input.
	MaxGraphEdges int
	// MaxStructureSize bounds the persistent tree and heap.
	MaxStructureSize int
	// MaxTraceCells bounds the estimated size of one trace in machine
	// words (see snapshot.Trace.Cells). Runs whose worst case exceeds it
	// are rejected before they start.
	MaxTraceCells int
	// MaxConcurrent is the number of runs that may execute at once.
	MaxConcurrent int64
	// AcquireTimeout is how long a run waits for a slot.
	AcquireTimeout time.Duration
}

// Options configures an Engine.
type Options struct {
	Logger    *zap.Logger
	Store     *store.Store
	Limits    Limits
	CacheSize int // 0 disables the trace cache
	// CacheCells bounds the summed Trace.Cells of cached responses;
	// 0 disables the trace cache.
	CacheCells int
}

// Option configures Options.
type Option func(*Options)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStore sets the store holding the persistent tree and heap.
func WithStore(s *store.Store) Option {
	return func(o *Options) { o.Store = s }
}

// WithLimits replaces the default limits.
func WithLimits(l Limits) Option {
	return func(o *Options) { o.Limits = l }
}

// WithCacheSize sets the number of cached responses; 0 disables caching.
func WithCacheSize(n int) Option {
	return func(o *Options) { o.CacheSize = n }
}

// WithCacheCells sets the cell budget of the cache; 0 disables caching.
func WithCacheCells(n int) Option {
	return func(o *Options) { o.CacheCells = n }
}

// DefaultLimits returns the limits used when none are given.
func DefaultLimits() Limits {
	return Limits{
		MaxArrayLen:      1000,
		MaxGraphNodes:    200,
		MaxGraphEdges:    5000,
		MaxStructureSize: 1000,
		MaxTraceCells:    1 << 24,
		MaxConcurrent:    8,
		AcquireTimeout:   2 * time.Second,
	}
}

// DefaultOptions returns a no-op logger, a fresh store, DefaultLimits and
// a cache of at most 256 entries holding at most 1<<25 cells.
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		Limits:     DefaultLimits(),
		CacheSize:  256,
		CacheCells: 1 << 25,
	}
}

// Engine executes requests against the algorithm packages.
// It is safe for concurrent use.
type Engine struct {
	log      *zap.Logger
	store    *store.Store
	limits   Limits
	sem      *semaphore.Weighted
	cache    *traceCache
	validate *validator.Validate
}

// New builds an Engine from opts.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Store == nil {
		o.Store = store.New()
	}
	if o.Limits.MaxConcurrent < 1 {
		return nil, fmt.Errorf("%w: max concurrent runs %d < 1", ErrInvalidArgument, o.Limits.MaxConcurrent)
	}
	if o.Limits.MaxTraceCells < 1 {
		return nil, fmt.Errorf("%w: max trace cells %d < 1", ErrInvalidArgument, o.Limits.MaxTraceCells)
	}
	if o.Limits.AcquireTimeout <= 0 {
		return nil, fmt.Errorf("%w: acquire timeout %s <= 0", ErrInvalidArgument, o.Limits.AcquireTimeout)
	}

	e := &Engine{
		log:      o.Logger,
		store:    o.Store,
		limits:   o.Limits,
		sem:      semaphore.NewWeighted(o.Limits.MaxConcurrent),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	if o.CacheSize > 0 && o.CacheCells > 0 {
		c, err := newTraceCache(o.CacheSize, o.CacheCells)
		if err != nil {
			return nil, fmt.Errorf("engine: cache: %w", err)
		}
		e.cache = c
	}

	return e, nil
}

// Limits returns the configured limits.
func (e *Engine) Limits() Limits { return e.limits }

// Stats reports the sizes of the persistent structures.
func (e *Engine) Stats() store.Stats { return e.store.Stats() }

// check runs the struct validation rules of req.
func (e *Engine) check(req any) error {
	if err := e.validate.Struct(req); err != nil {
		return classify(err)
	}
	return nil
}

// track runs fn inside a concurrency slot and records metrics and a debug
// log line. It returns the run id.
func (e *Engine) track(ctx context.Context, family, algorithm string, fn func() (snapshot.Trace, error)) (string, error) {
	// 1) Acquire a slot within the timeout.
	acquireCtx, cancel := context.WithTimeout(ctx, e.limits.AcquireTimeout)
	defer cancel()
	if err := e.sem.Acquire(acquireCtx, 1); err != nil {
		runsTotal.WithLabelValues(family, algorithm, outcomeBusy).Inc()
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: no slot within %s", ErrBusy, e.limits.AcquireTimeout)
	}
	defer e.sem.Release(1)
	runsInFlight.Inc()
	defer runsInFlight.Dec()

	// 2) Run.
	id := uuid.NewString()
	start := time.Now()
	tr, err := fn()
	elapsed := time.Since(start)

	// 3) Account.
	if err != nil {
		runsTotal.WithLabelValues(family, algorithm, outcomeError).Inc()
		e.log.Debug("run rejected",
			zap.String("run_id", id),
			zap.String("family", family),
			zap.String("algorithm", algorithm),
			zap.Error(err))
		return "", classify(err)
	}
	runsTotal.WithLabelValues(family, algorithm, outcomeOK).Inc()
	runDuration.WithLabelValues(family).Observe(elapsed.Seconds())
	runSteps.WithLabelValues(family).Observe(float64(len(tr)))
	e.log.Debug("run complete",
		zap.String("run_id", id),
		zap.String("family", family),
		zap.String("algorithm", algorithm),
		zap.Int("steps", len(tr)),
		zap.Duration("duration", elapsed))

	return id, nil
}

// cached returns the response stored under key, if any. The caller owns
// a shallow copy; snapshots inside its trace are shared and read-only.
func cached[T any](e *Engine, key string) (T, bool) {
	var zero T
	if e.cache == nil {
		return zero, false
	}
	v, ok := e.cache.get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// remember stores a response costing cells under key when caching is
// enabled.
func (e *Engine) remember(key string, v any, cells int) {
	if e.cache != nil {
		e.cache.add(key, v, cells)
	}
}

// CacheUsage reports the number of cached responses and their summed
// cells. Both are zero when caching is disabled.
func (e *Engine) CacheUsage() (entries, cells int) {
	if e.cache == nil {
		return 0, 0
	}
	return e.cache.usage()
}

// hit accounts for a response served from the cache and returns a fresh
// run id for it.
func (e *Engine) hit(family, algorithm string) string {
	runsTotal.WithLabelValues(family, algorithm, outcomeCached).Inc()
	id := uuid.NewString()
	e.log.Debug("run served from cache",
		zap.String("run_id", id),
		zap.String("family", family),
		zap.String("algorithm", algorithm))
	return id
}

// tooLarge reports an input above a limit.
func tooLarge(what string, got, max int) error {
	return fmt.Errorf("%w: %s has %d, limit %d", ErrTooLarge, what, got, max)
}

// fitsTrace rejects a run that may record up to steps snapshots of width
// cells each when that exceeds MaxTraceCells.
func (e *Engine) fitsTrace(what string, steps, width int) error {
	if width < 1 {
		width = 1
	}
	if steps > e.limits.MaxTraceCells/width {
		return fmt.Errorf("%w: %s trace may need %d snapshots of %d cells, limit %d cells",
			ErrTooLarge, what, steps, width, e.limits.MaxTraceCells)
	}
	return nil
}
