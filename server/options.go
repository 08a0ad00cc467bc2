// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"go.uber.org/zap"
)

// Options configures a Server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string
	// MaxBodyBytes caps a request body; larger bodies fail with 413.
	MaxBodyBytes int64

	// RequestsPerSecond limits /api/* requests; 0 disables the limiter.
	RequestsPerSecond float64
	Burst             int

	// MetricsPath serves promhttp when non-empty.
	MetricsPath string

	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		AllowedOrigin:   "*",
		MaxBodyBytes:    1 << 20,
		Burst:           1,
		MetricsPath:     "/metrics",
		Logger:          zap.NewNop(),
	}
}

// WithOptions replaces every option at once, keeping the default logger
// when o.Logger is nil.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		logger := dst.Logger
		*dst = o
		if dst.Logger == nil {
			dst.Logger = logger
		}
	}
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(o *Options) { o.Addr = addr }
}

// WithLogger sets the access logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRateLimit limits /api/* to rps requests per second with the given
// burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *Options) {
		o.RequestsPerSecond = rps
		o.Burst = burst
	}
}

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(o *Options) { o.MaxBodyBytes = n }
}

// WithMetricsPath sets the metrics route; "" disables it.
func WithMetricsPath(p string) Option {
	return func(o *Options) { o.MetricsPath = p }
}
