package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	PlayersRegistered prometheus.Counter
	MatchesStarted    prometheus.Counter
	MatchesFinished   prometheus.Counter
	RoundsPlayed      *prometheus.CounterVec
	MatchActive       prometheus.Gauge
}

// NewMetrics creates a metrics set on its own registry so tests can
// instantiate servers without double-registration panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PlayersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "rpsarena_players_registered_total",
			Help: "Number of new players created in the registry.",
		}),
		MatchesStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "rpsarena_matches_started_total",
			Help: "Number of matches started.",
		}),
		MatchesFinished: factory.NewCounter(prometheus.CounterOpts{
			Name: "rpsarena_matches_finished_total",
			Help: "Number of matches played to the final round.",
		}),
		RoundsPlayed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rpsarena_rounds_played_total",
			Help: "Number of rounds resolved, by outcome.",
		}, []string{"outcome"}),
		MatchActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rpsarena_match_active",
			Help: "Whether a match is currently in progress.",
		}),
	}
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
