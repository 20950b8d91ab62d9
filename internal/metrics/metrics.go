package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationDuration tracks the latency of admin operations by outcome
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "campaign_admin_operation_duration_seconds",
			Help: "Duration of campaign admin operations in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
			},
		},
		[]string{"operation", "status"},
	)

	// ReportRows tracks how many joined rows report queries return
	ReportRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campaign_admin_report_rows",
			Help:    "Number of rows returned by report queries",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// RecordOperation records the duration of one admin operation
func RecordOperation(operation, status string, seconds float64) {
	OperationDuration.WithLabelValues(operation, status).Observe(seconds)
}

func RecordReportRows(n int) {
	ReportRows.Observe(float64(n))
}
