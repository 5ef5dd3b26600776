package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	PicksRecorded      prometheus.Counter
	RarityLookups      prometheus.Counter
	GridsShared        prometheus.Counter
	PickEventsFailed   prometheus.Counter
	StoreDuration      *prometheus.HistogramVec
	StartupTimeSeconds prometheus.Gauge
}
