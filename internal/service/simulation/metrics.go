package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "baccarat_runs_total",
		Help: "Total simulation runs by status",
	}, []string{"status"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "baccarat_run_duration_seconds",
		Help:    "Duration of a full catalog run",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	})

	strategiesEvaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "baccarat_strategies_evaluated_total",
		Help: "Strategy evaluations by stake rule",
	}, []string{"rule"})
)
