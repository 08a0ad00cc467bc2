package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/algotrace/config"
	"github.com/katalvlaran/algotrace/engine"
	"github.com/katalvlaran/algotrace/server"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "algotrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.Equal(t, engine.DefaultLimits(), cfg.EngineLimits())
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, engine.DefaultOptions().CacheCells, cfg.Cache.MaxCells)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
server:
  addr: "127.0.0.1:9000"
  read_timeout: 3s
  cors_origin: "http://localhost:3000"
limits:
  max_array_len: 50
  max_trace_cells: 4096
  acquire_timeout: 250ms
  requests_per_second: 20
  burst: 40
cache:
  enabled: false
log:
  level: debug
  development: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "http://localhost:3000", cfg.Server.CORSOrigin)
	assert.Equal(t, 50, cfg.Limits.MaxArrayLen)
	assert.Equal(t, 4096, cfg.EngineLimits().MaxTraceCells)
	assert.Equal(t, 250*time.Millisecond, cfg.Limits.AcquireTimeout)
	assert.Equal(t, 20.0, cfg.Limits.RequestsPerSecond)
	assert.Equal(t, 40, cfg.Limits.Burst)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)

	// Fields absent from the file keep their defaults.
	def := config.Default()
	assert.Equal(t, def.Server.WriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, def.Limits.MaxGraphNodes, cfg.Limits.MaxGraphNodes)
	assert.Equal(t, def.Metrics, cfg.Metrics)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(config.EnvAddr, ":7070")
	t.Setenv(config.EnvLogLevel, "WARN")
	t.Setenv(config.EnvMaxConcurrent, "3")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, int64(3), cfg.Limits.MaxConcurrentRuns)

	t.Setenv(config.EnvMaxConcurrent, "many")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "server: [unclosed"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "limits:\n  max_concurrent_runs: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty addr", func(c *config.Config) { c.Server.Addr = "" }},
		{"body", func(c *config.Config) { c.Server.MaxBodyBytes = 0 }},
		{"shutdown", func(c *config.Config) { c.Server.ShutdownTimeout = 0 }},
		{"array cap", func(c *config.Config) { c.Limits.MaxArrayLen = 0 }},
		{"trace cells", func(c *config.Config) { c.Limits.MaxTraceCells = 0 }},
		{"concurrency", func(c *config.Config) { c.Limits.MaxConcurrentRuns = 0 }},
		{"acquire", func(c *config.Config) { c.Limits.AcquireTimeout = -time.Second }},
		{"negative rate", func(c *config.Config) { c.Limits.RequestsPerSecond = -1 }},
		{"burst", func(c *config.Config) { c.Limits.RequestsPerSecond = 5; c.Limits.Burst = 0 }},
		{"cache size", func(c *config.Config) { c.Cache.Size = 0 }},
		{"cache cells", func(c *config.Config) { c.Cache.MaxCells = -1 }},
		{"log level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"metrics path", func(c *config.Config) { c.Metrics.Path = "metrics" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	cfg := config.Default()
	cfg.Cache = config.CacheConfig{Enabled: false}
	cfg.Metrics = config.MetricsConfig{Enabled: false}
	assert.NoError(t, cfg.Validate())
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Limits.MaxArrayLen = 4
	cfg.Metrics.Enabled = false

	e, err := engine.New(cfg.EngineOptions(zap.NewNop())...)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Limits().MaxArrayLen)

	_, err = server.New(e, cfg.ServerOptions(zap.NewNop())...)
	require.NoError(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	log, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
	assert.True(t, log.Core().Enabled(zap.InfoLevel))

	cfg.Log = config.LogConfig{Level: "debug", Development: true}
	log, err = cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	cfg.Log.Level = "shout"
	_, err = cfg.NewLogger()
	assert.ErrorIs(t, err, config.ErrInvalid)
}
