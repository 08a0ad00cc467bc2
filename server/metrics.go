// SPDX-License-Identifier: MIT

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algotrace_http_requests_total",
		Help: "HTTP requests under /api by route, method and status code",
	}, []string{"route", "method", "code"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algotrace_http_request_duration_seconds",
		Help:    "HTTP request latency under /api by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)
