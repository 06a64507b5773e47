package optimizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodeylol/gametune/pool"
)

func TestOptimize_AppliesClampedTarget(t *testing.T) {
	s := defaultSettings(t)

	Optimize(s, 60) // raw value 6

	resolution, _ := s.Get("Resolution")
	texture, _ := s.Get("Texture Quality")
	shadow, _ := s.Get("Shadow Quality")
	assert.Equal(t, 720, resolution.Value) // clamped up to min
	assert.Equal(t, 5, texture.Value)      // clamped down to max
	assert.Equal(t, 4, shadow.Value)       // clamped down to max
}

func TestParallelOptimize_MatchesSequential(t *testing.T) {
	for _, workers := range []int{1, 4, 16} {
		p, err := pool.New(workers)
		require.NoError(t, err)

		sequential := defaultSettings(t)
		Optimize(sequential, 80)

		parallel := defaultSettings(t)
		elapsed, err := ParallelOptimize(p, parallel, 80)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed.Seconds(), 0.0)

		assert.Equal(t, sequential.Snapshot(), parallel.Snapshot())
		p.Shutdown()
	}
}

func TestParallelOptimize_ManySettings(t *testing.T) {
	s := NewSettings()
	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, s.Add(fmt.Sprintf("setting-%03d", i), 0, 0, 1000))
	}

	p, err := pool.New(8)
	require.NoError(t, err)
	defer p.Shutdown()

	_, err = ParallelOptimize(p, s, 500)
	require.NoError(t, err)

	for _, setting := range s.Snapshot() {
		assert.Equal(t, 50, setting.Value)
	}
}

func TestParallelOptimize_PoolShutdown(t *testing.T) {
	p, err := pool.New(2)
	require.NoError(t, err)
	p.Shutdown()

	s := defaultSettings(t)
	_, err = ParallelOptimize(p, s, 60)
	assert.ErrorIs(t, err, pool.ErrPoolShutdown)
}
