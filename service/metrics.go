package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fahadshabir/poster/metric"
)

// serviceMetrics holds Prometheus metrics for the NATS surface.
type serviceMetrics struct {
	requests        *prometheus.CounterVec   // by subject
	requestDuration *prometheus.HistogramVec // by subject
}

// newServiceMetrics creates and registers service metrics with the
// provided registry.
func newServiceMetrics(registry *metric.Registry) (*serviceMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &serviceMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poster",
			Subsystem: "service",
			Name:      "requests_total",
			Help:      "Total number of NATS requests handled",
		}, []string{"subject"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "poster",
			Subsystem: "service",
			Name:      "request_duration_seconds",
			Help:      "NATS request handling duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"subject"}),
	}

	if err := registry.RegisterCounterVec("service", "requests", m.requests); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogramVec("service", "request_duration", m.requestDuration); err != nil {
		return nil, err
	}

	return m, nil
}

// recordRequest records one handled request.
func (m *serviceMetrics) recordRequest(subject string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(subject).Inc()
	m.requestDuration.WithLabelValues(subject).Observe(duration.Seconds())
}
