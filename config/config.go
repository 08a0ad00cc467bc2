// SPDX-License-Identifier: MIT

// Package config loads the algotrace configuration from YAML, applies
// environment overrides and converts the result into engine and server
// options.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algotrace/engine"
	"github.com/katalvlaran/algotrace/server"
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr          = "ALGOTRACE_ADDR"
	EnvLogLevel      = "ALGOTRACE_LOG_LEVEL"
	EnvMaxConcurrent = "ALGOTRACE_MAX_CONCURRENT"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the full configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Limits  LimitsConfig  `yaml:"limits"`
	Cache   CacheConfig   `yaml:"cache"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigin      string        `yaml:"cors_origin"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// LimitsConfig caps input sizes, concurrent runs and request rate.
type LimitsConfig struct {
	MaxArrayLen       int           `yaml:"max_array_len"`
	MaxGraphNodes     int           `yaml:"max_graph_nodes"`
	MaxGraphEdges     int           `yaml:"max_graph_edges"`
	MaxStructureSize  int           `yaml:"max_structure_size"`
	MaxTraceCells     int           `yaml:"max_trace_cells"`
	MaxConcurrentRuns int64         `yaml:"max_concurrent_runs"`
	AcquireTimeout    time.Duration `yaml:"acquire_timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"` // 0 = unlimited
	Burst             int           `yaml:"burst"`
}

// CacheConfig configures the trace cache of read-only runs.
type CacheConfig struct {
	Enabled  bool `yaml:"enabled"`
	Size     int  `yaml:"size"`
	MaxCells int  `yaml:"max_cells"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug | info | warn | error
	Development bool   `yaml:"development"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	srv := server.DefaultOptions()
	lim := engine.DefaultLimits()
	eng := engine.DefaultOptions()
	return &Config{
		Server: ServerConfig{
			Addr:            srv.Addr,
			ReadTimeout:     srv.ReadTimeout,
			WriteTimeout:    srv.WriteTimeout,
			IdleTimeout:     srv.IdleTimeout,
			ShutdownTimeout: srv.ShutdownTimeout,
			CORSOrigin:      srv.AllowedOrigin,
			MaxBodyBytes:    srv.MaxBodyBytes,
		},
		Limits: LimitsConfig{
			MaxArrayLen:       lim.MaxArrayLen,
			MaxGraphNodes:     lim.MaxGraphNodes,
			MaxGraphEdges:     lim.MaxGraphEdges,
			MaxStructureSize:  lim.MaxStructureSize,
			MaxTraceCells:     lim.MaxTraceCells,
			MaxConcurrentRuns: lim.MaxConcurrent,
			AcquireTimeout:    lim.AcquireTimeout,
			Burst:             srv.Burst,
		},
		Cache:   CacheConfig{Enabled: true, Size: eng.CacheSize, MaxCells: eng.CacheCells},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: srv.MetricsPath},
	}
}

// Load reads path over Default, applies the environment and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from the ALGOTRACE_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvMaxConcurrent); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMaxConcurrent, v, err)
		}
		c.Limits.MaxConcurrentRuns = n
	}
	return nil
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Server.Addr == "" {
		bad("server.addr is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		bad("server.max_body_bytes must be > 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		bad("server.shutdown_timeout must be > 0")
	}
	if c.Limits.MaxArrayLen <= 0 || c.Limits.MaxGraphNodes <= 0 ||
		c.Limits.MaxGraphEdges <= 0 || c.Limits.MaxStructureSize <= 0 ||
		c.Limits.MaxTraceCells <= 0 {
		bad("limits.max_* must be > 0")
	}
	if c.Limits.MaxConcurrentRuns < 1 {
		bad("limits.max_concurrent_runs must be >= 1, got %d", c.Limits.MaxConcurrentRuns)
	}
	if c.Limits.AcquireTimeout <= 0 {
		bad("limits.acquire_timeout must be > 0")
	}
	if c.Limits.RequestsPerSecond < 0 {
		bad("limits.requests_per_second must be >= 0")
	}
	if c.Limits.RequestsPerSecond > 0 && c.Limits.Burst < 1 {
		bad("limits.burst must be >= 1 when rate limiting")
	}
	if c.Cache.Enabled && c.Cache.Size <= 0 {
		bad("cache.size must be > 0 when the cache is enabled")
	}
	if c.Cache.Enabled && c.Cache.MaxCells <= 0 {
		bad("cache.max_cells must be > 0 when the cache is enabled")
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		bad("log.level %q: %v", c.Log.Level, err)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		bad("metrics.path %q must start with /", c.Metrics.Path)
	}

	return errors.Join(errs...)
}

// EngineLimits converts the limits section.
func (c *Config) EngineLimits() engine.Limits {
	return engine.Limits{
		MaxArrayLen:      c.Limits.MaxArrayLen,
		MaxGraphNodes:    c.Limits.MaxGraphNodes,
		MaxGraphEdges:    c.Limits.MaxGraphEdges,
		MaxStructureSize: c.Limits.MaxStructureSize,
		MaxTraceCells:    c.Limits.MaxTraceCells,
		MaxConcurrent:    c.Limits.MaxConcurrentRuns,
		AcquireTimeout:   c.Limits.AcquireTimeout,
	}
}

// EngineOptions returns the engine options for this configuration.
func (c *Config) EngineOptions(log *zap.Logger) []engine.Option {
	size, cells := 0, 0
	if c.Cache.Enabled {
		size, cells = c.Cache.Size, c.Cache.MaxCells
	}
	return []engine.Option{
		engine.WithLogger(log),
		engine.WithLimits(c.EngineLimits()),
		engine.WithCacheSize(size),
		engine.WithCacheCells(cells),
	}
}

// ServerOptions returns the server options for this configuration.
func (c *Config) ServerOptions(log *zap.Logger) []server.Option {
	path := ""
	if c.Metrics.Enabled {
		path = c.Metrics.Path
	}
	return []server.Option{server.WithOptions(server.Options{
		Addr:              c.Server.Addr,
		ReadTimeout:       c.Server.ReadTimeout,
		WriteTimeout:      c.Server.WriteTimeout,
		IdleTimeout:       c.Server.IdleTimeout,
		ShutdownTimeout:   c.Server.ShutdownTimeout,
		AllowedOrigin:     c.Server.CORSOrigin,
		MaxBodyBytes:      c.Server.MaxBodyBytes,
		RequestsPerSecond: c.Limits.RequestsPerSecond,
		Burst:             c.Limits.Burst,
		MetricsPath:       path,
		Logger:            log,
	})}
}

// NewLogger builds the zap logger described by the log section.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
