// Package metrics exposes Prometheus instrumentation for the mqrserver
// HTTP handlers: one counter per operation and one latency histogram,
// registered against the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts completed tree operations by kind and
	// outcome (ok / caller_error / invariant_error).
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mqrtree_operations_total",
		Help: "Total number of insert/search/knn operations processed.",
	}, []string{"op", "outcome"})

	// OperationDuration records handler latency per operation kind.
	OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mqrtree_operation_duration_seconds",
		Help:    "Latency of insert/search/knn operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	// TreeSize reports the current number of indexed payloads.
	TreeSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mqrtree_indexed_points",
		Help: "Current number of payloads indexed in the tree.",
	})
)
