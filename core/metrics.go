package core

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-operation request counts and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the SDK collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "watson_sdk",
			Name:      "requests_total",
			Help:      "Watson API calls by service, operation and HTTP status code.",
		}, []string{"service", "operation", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "watson_sdk",
			Name:      "request_duration_seconds",
			Help:      "Latency of Watson API calls, including authentication.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observe records one call. statusCode 0 means the call failed before a
// response was received.
func (m *Metrics) observe(service, operation string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "error"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	m.requests.WithLabelValues(service, operation, code).Inc()
	m.duration.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}
