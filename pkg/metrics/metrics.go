package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the lifecycle engine. A single
// instance is constructed in main and injected; nothing registers globals on
// import beyond the promauto default registry.
type Metrics struct {
	TransitionsTotal *prometheus.CounterVec
	SweepsTotal      prometheus.Counter
	SweepExpired     prometheus.Counter
	NotifyFailures   prometheus.Counter
	HTTPDuration     *prometheus.HistogramVec
}

// New creates the collectors on the given registerer
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_transitions_total",
			Help: "Lifecycle transition attempts by record kind and outcome",
		}, []string{"kind", "outcome"}),
		SweepsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "expiration_sweeps_total",
			Help: "Number of expiration sweeps executed",
		}),
		SweepExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "expiration_sweep_expired_total",
			Help: "Number of records marked EXPIRED by sweeps",
		}),
		NotifyFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "merchant_notify_failures_total",
			Help: "Best-effort merchant notifications that failed",
		}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method, path and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
