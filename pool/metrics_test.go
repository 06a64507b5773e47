package pool

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("gametune", "pool", reg)

	p, err := New(2, WithMetrics(m), WithErrorSink(func(error) {}))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Submit(func() {}))
	}
	require.NoError(t, p.Submit(func() { panic("boom") }))
	p.Shutdown()

	assert.Equal(t, float64(4), testutil.ToFloat64(m.TasksSubmitted))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.TasksCompleted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TasksFailed))
	// Workers have all exited by now.
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ActiveWorkers))
}

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics("gametune", "pool", reg)

	// Re-registering the same names must panic: the registry owns them now.
	assert.Panics(t, func() { NewMetrics("gametune", "pool", reg) })
}
