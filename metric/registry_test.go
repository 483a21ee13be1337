package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahadshabir/poster/errors"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NotNil(t, registry)
	assert.NotNil(t, registry.PrometheusRegistry())
	assert.NotNil(t, registry.CoreMetrics())
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "poster",
		Subsystem: "service",
		Name:      "requests_total",
		Help:      "Total requests",
	}, []string{"subject"})

	require.NoError(t, registry.RegisterCounterVec("service", "requests", counter))

	t.Run("duplicate key rejected", func(t *testing.T) {
		err := registry.RegisterCounterVec("service", "requests", counter)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("unregister", func(t *testing.T) {
		assert.True(t, registry.Unregister("service", "requests"))
		assert.False(t, registry.Unregister("service", "requests"))
	})
}

func TestCoreMetricsRecording(t *testing.T) {
	registry := NewRegistry()
	core := registry.CoreMetrics()

	// Recording must not panic and must be visible through the registry.
	core.RecordBatch("normalize", "success", 0)
	core.RecordAddresses("normalize", 100)
	core.RecordEngineCall("expand")
	core.RecordError("postal", "length_mismatch")
	core.RecordEngineReady(true)

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, fam := range families {
		names[fam.GetName()] = true
	}
	assert.True(t, names["poster_batch_total"])
	assert.True(t, names["poster_batch_addresses_total"])
	assert.True(t, names["poster_engine_calls_total"])
	assert.True(t, names["poster_errors_total"])
	assert.True(t, names["poster_engine_ready"])
}
