package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters/histograms for the model pipelines.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
}

// New registers pipeline metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "legalease",
			Subsystem: "pipeline",
			Name:      "requests_total",
			Help:      "Total pipeline requests by outcome",
		}, []string{"pipeline", "outcome"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "legalease",
			Subsystem: "pipeline",
			Name:      "provider_latency_seconds",
			Help:      "Latency of model provider calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"pipeline"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.providerLatency)
	return m
}

// ObserveRequest records a pipeline request outcome
// (outcome is one of ok, validation_error, provider_error, parse_error).
func (m *Metrics) ObserveRequest(pipeline, outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(pipeline, outcome).Inc()
}

// ObserveProviderLatency records the duration of one provider round-trip.
func (m *Metrics) ObserveProviderLatency(pipeline string, seconds float64) {
	if m == nil {
		return
	}
	m.providerLatency.WithLabelValues(pipeline).Observe(seconds)
}
