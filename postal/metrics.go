package postal

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fahadshabir/poster/metric"
)

// processorMetrics holds Prometheus metrics for batch operations.
type processorMetrics struct {
	core *metric.Metrics

	unknownLabels     *prometheus.CounterVec // by label
	identityFallbacks prometheus.Counter
	canceled          *prometheus.CounterVec // by operation
}

// newProcessorMetrics creates and registers batch metrics with the
// provided registry.
func newProcessorMetrics(registry *metric.Registry) (*processorMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &processorMetrics{
		core: registry.CoreMetrics(),

		unknownLabels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poster",
			Subsystem: "parser",
			Name:      "unknown_labels_total",
			Help:      "Total number of engine labels dropped as unrecognized",
		}, []string{"label"}),

		identityFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "poster",
			Subsystem: "normalizer",
			Name:      "identity_fallbacks_total",
			Help:      "Total number of addresses returned verbatim after zero expansions",
		}),

		canceled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poster",
			Subsystem: "batch",
			Name:      "canceled_total",
			Help:      "Total number of batches aborted at a cancellation checkpoint",
		}, []string{"operation"}),
	}

	if err := registry.RegisterCounterVec("postal", "unknown_labels", m.unknownLabels); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter("postal", "identity_fallbacks", m.identityFallbacks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("postal", "canceled", m.canceled); err != nil {
		return nil, err
	}

	return m, nil
}

// recordBatch records a completed batch operation.
func (m *processorMetrics) recordBatch(operation string, size int, success bool, duration time.Duration) {
	if m == nil {
		return
	}

	status := "success"
	if !success {
		status = "failure"
	}

	m.core.RecordBatch(operation, status, duration)
	m.core.RecordAddresses(operation, size)
}

// recordEngineCall records one call into the engine.
func (m *processorMetrics) recordEngineCall(operation string) {
	if m == nil {
		return
	}
	m.core.RecordEngineCall(operation)
}

// recordUnknownLabel records a dropped engine label.
func (m *processorMetrics) recordUnknownLabel(label string) {
	if m == nil {
		return
	}
	m.unknownLabels.WithLabelValues(label).Inc()
}

// recordIdentityFallback records a zero-expansion identity fallback.
func (m *processorMetrics) recordIdentityFallback() {
	if m == nil {
		return
	}
	m.identityFallbacks.Inc()
}

// recordCanceled records a batch aborted at a checkpoint.
func (m *processorMetrics) recordCanceled(operation string) {
	if m == nil {
		return
	}
	m.canceled.WithLabelValues(operation).Inc()
}
