package direct

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts and times calls to the ad platform.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "direct_api_calls_total",
			Help: "Calls to the ad platform API by api version, method and outcome.",
		}, []string{"api", "method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "direct_api_call_duration_seconds",
			Help:    "Round-trip time of ad platform API calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"api", "method"}),
	}
	if reg != nil {
		reg.MustRegister(m.calls, m.duration)
	}
	return m
}
