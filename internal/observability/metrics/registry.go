// Package metrics defines Prometheus collectors for business-level
// observability: dataset load outcomes, parse failures, and document proxy
// fetches. HTTP transport metrics live in the handler layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntitiesLoaded tracks the size of the most recently loaded entity
	// collection. Updated on every successful dataset load.
	EntitiesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "entities_loaded",
			Help: "Number of entities in the most recently loaded collection",
		},
	)

	// DatasetLoadsTotal counts dataset load attempts by outcome.
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"status"},
	)

	// DatasetLoadDuration tracks how long a full load and normalization
	// pass takes. Buckets cover small test fixtures up to large exports.
	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time taken to load and normalize the dataset file",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	// DatasetParseErrorsTotal counts malformed dataset lines that were
	// logged and skipped.
	DatasetParseErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_parse_errors_total",
			Help: "Total number of malformed dataset lines skipped",
		},
	)

	// DocumentFetchesTotal counts outbound document proxy fetches by
	// outcome (success, upstream_error, transport_error, rejected).
	DocumentFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_fetches_total",
			Help: "Total number of outbound document fetches",
		},
		[]string{"status"},
	)

	// DocumentFetchDuration tracks outbound document fetch latency.
	DocumentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_fetch_duration_seconds",
			Help:    "Outbound document fetch duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)
