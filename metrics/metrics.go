// Package metrics holds the Prometheus collectors of the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the counters recorded by the handlers and stores.
type Metrics struct {
	EndPointCounter     *prometheus.CounterVec
	ErrorCounter        *prometheus.CounterVec
	PreferenceFallbacks prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EndPointCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskfilter_endpoint_calls_total",
			Help: "Total number of calls per endpoint.",
		}, []string{"endpoint"}),
		ErrorCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskfilter_errors_total",
			Help: "Total number of errors occurred in the application.",
		}, []string{"endpoint"}),
		PreferenceFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskfilter_preference_load_fallbacks_total",
			Help: "Number of preference loads answered with the empty document because the store could not be read.",
		}),
	}
	reg.MustRegister(m.EndPointCounter, m.ErrorCounter, m.PreferenceFallbacks)
	return m
}
