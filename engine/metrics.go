// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of runsTotal.
const (
	outcomeOK     = "ok"
	outcomeError  = "error"
	outcomeCached = "cached"
	outcomeBusy   = "busy"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algotrace_runs_total",
		Help: "Algorithm runs by family, algorithm and outcome",
	}, []string{"family", "algorithm", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algotrace_run_duration_seconds",
		Help:    "Wall time of one traced run",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"family"})

	runSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algotrace_run_steps",
		Help:    "Number of snapshots recorded per run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"family"})

	runsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "algotrace_runs_in_flight",
		Help: "Runs currently holding a slot",
	})

	cacheCells = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "algotrace_cache_cells",
		Help: "Summed trace cells held by the response cache",
	})
)
