package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the process counters exposed at /metrics.
type Metrics struct {
	QuotesCalculated   prometheus.Counter
	QuotesRejected     prometheus.Counter
	SimulationsStarted prometheus.Counter
	ChoicesApplied     prometheus.Counter
	CalcDuration       prometheus.Histogram
}

// NewMetrics registers the calculator's metrics on a fresh registry and
// returns them with the HTTP handler that serves the registry.
func NewMetrics() (*Metrics, http.Handler) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		QuotesCalculated: factory.NewCounter(prometheus.CounterOpts{
			Name: "carfin_quotes_calculated_total",
			Help: "Finance quotes calculated successfully.",
		}),
		QuotesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "carfin_quotes_rejected_total",
			Help: "Quote requests rejected by validation.",
		}),
		SimulationsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "carfin_simulations_started_total",
			Help: "Scenario runs started.",
		}),
		ChoicesApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "carfin_choices_applied_total",
			Help: "Scenario choices applied.",
		}),
		CalcDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "carfin_calculation_duration_seconds",
			Help:    "Wall time of one quote calculation.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	return m, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
