package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the core harness metrics shared by every batch surface.
type Metrics struct {
	BatchesTotal       *prometheus.CounterVec
	AddressesProcessed *prometheus.CounterVec
	EngineCalls        *prometheus.CounterVec
	BatchDuration      *prometheus.HistogramVec
	ErrorsTotal        *prometheus.CounterVec
	EngineReady        prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all core harness metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		BatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "poster",
				Subsystem: "batch",
				Name:      "total",
				Help:      "Total number of batch operations",
			},
			[]string{"operation", "status"},
		),

		AddressesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "poster",
				Subsystem: "batch",
				Name:      "addresses_total",
				Help:      "Total number of address elements processed",
			},
			[]string{"operation"},
		),

		EngineCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "poster",
				Subsystem: "engine",
				Name:      "calls_total",
				Help:      "Total number of calls into the address engine",
			},
			[]string{"operation"},
		),

		BatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "poster",
				Subsystem: "batch",
				Name:      "duration_seconds",
				Help:      "Batch operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "poster",
				Subsystem: "errors",
				Name:      "total",
				Help:      "Total number of errors",
			},
			[]string{"component", "type"},
		),

		EngineReady: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "poster",
				Subsystem: "engine",
				Name:      "ready",
				Help:      "Engine readiness (0=closed, 1=ready)",
			},
		),
	}
}

// RecordBatch increments the batch counter and records its duration.
func (c *Metrics) RecordBatch(operation, status string, duration time.Duration) {
	c.BatchesTotal.WithLabelValues(operation, status).Inc()
	c.BatchDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordAddresses adds to the processed-address counter.
func (c *Metrics) RecordAddresses(operation string, count int) {
	c.AddressesProcessed.WithLabelValues(operation).Add(float64(count))
}

// RecordEngineCall increments the engine call counter.
func (c *Metrics) RecordEngineCall(operation string) {
	c.EngineCalls.WithLabelValues(operation).Inc()
}

// RecordError increments the error counter.
func (c *Metrics) RecordError(component, errorType string) {
	c.ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// RecordEngineReady updates the engine readiness gauge.
func (c *Metrics) RecordEngineReady(ready bool) {
	value := 0.0
	if ready {
		value = 1.0
	}
	c.EngineReady.Set(value)
}
