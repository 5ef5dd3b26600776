package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PicksRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchup_picks_recorded_total",
			Help: "The total number of picks recorded across all matchups.",
		}),
		RarityLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchup_rarity_lookups_total",
			Help: "The total number of rarity scores computed.",
		}),
		GridsShared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchup_grids_shared_total",
			Help: "The total number of grids persisted for sharing.",
		}),
		PickEventsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchup_pick_events_failed_total",
			Help: "The total number of pick events that could not be recorded.",
		}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "matchup_store_operation_duration_seconds",
			Help:    "The duration of statistics store operations.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchup_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PicksRecorded,
		s.RarityLookups,
		s.GridsShared,
		s.PickEventsFailed,
		s.StoreDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPicksRecorded() {
	s.PicksRecorded.Inc()
}

func (s *Service) IncRarityLookups() {
	s.RarityLookups.Inc()
}

func (s *Service) IncGridsShared() {
	s.GridsShared.Inc()
}

func (s *Service) IncPickEventsFailed() {
	s.PickEventsFailed.Inc()
}

func (s *Service) ObserveStoreDuration(operation string, seconds float64) {
	s.StoreDuration.WithLabelValues(operation).Observe(seconds)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
