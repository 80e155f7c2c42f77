package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(Namespace, Subsystem, reg)

	m.CounterSamplesRecorded.Inc()
	m.GaugeCurrentWeight.Set(82.4)
	m.CounterRequests.WithLabelValues("GET", "200").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterSamplesRecorded))
	assert.Equal(t, 82.4, testutil.ToFloat64(m.GaugeCurrentWeight))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "weighttrend_server_samples_recorded")
	assert.Contains(t, names, "weighttrend_server_current_weight_kg")
	assert.Contains(t, names, "weighttrend_server_request")
}

func TestSetupPrometheus(t *testing.T) {
	reg := SetupPrometheus()

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
