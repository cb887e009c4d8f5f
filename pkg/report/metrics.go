package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sysmon_report_collection_duration_seconds",
			Help:    "Time taken to collect a complete host report",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	reportCollectionTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sysmon_report_collection_total",
			Help: "Total number of host report collections",
		},
	)
)
