// Package profile samples simulated runtime performance figures used to
// pick an optimization target.
package profile

import (
	"math/rand"
	"time"
)

// Sample is one basic performance measurement.
type Sample struct {
	FPS        int
	CPUPercent int
	GPUPercent int
}

// AdvancedSample extends a basic Sample with hardware details.
type AdvancedSample struct {
	Sample
	GPUModel          string
	AvailableMemoryMB int
}

// Profiler produces basic performance samples. Not safe for concurrent
// use; each goroutine should own its own Profiler.
type Profiler struct {
	rng *rand.Rand
}

// NewProfiler returns a profiler seeded from the current time.
func NewProfiler() *Profiler {
	return NewProfilerWithSeed(time.Now().UnixNano())
}

// NewProfilerWithSeed returns a deterministic profiler for tests.
func NewProfilerWithSeed(seed int64) *Profiler {
	return &Profiler{rng: rand.New(rand.NewSource(seed))}
}

// Analyze takes one measurement. FPS lands in [50, 70], CPU usage in
// [40, 60] percent, GPU usage in [50, 70] percent.
func (p *Profiler) Analyze() Sample {
	return Sample{
		FPS:        60 + p.rng.Intn(21) - 10,
		CPUPercent: 40 + p.rng.Intn(21),
		GPUPercent: 50 + p.rng.Intn(21),
	}
}

// AdvancedProfiler composes a Profiler with hardware detection. There is
// exactly one extension point, so this is plain embedding: Analyze calls
// the base measurement and then fills in its own extra fields.
type AdvancedProfiler struct {
	*Profiler
}

// NewAdvancedProfiler returns an advanced profiler seeded from the
// current time.
func NewAdvancedProfiler() *AdvancedProfiler {
	return &AdvancedProfiler{Profiler: NewProfiler()}
}

// NewAdvancedProfilerWithSeed returns a deterministic advanced profiler
// for tests.
func NewAdvancedProfilerWithSeed(seed int64) *AdvancedProfiler {
	return &AdvancedProfiler{Profiler: NewProfilerWithSeed(seed)}
}

// Analyze takes a basic measurement and augments it with GPU model and
// available memory, the latter in [8192, 10240] MB.
func (p *AdvancedProfiler) Analyze() AdvancedSample {
	return AdvancedSample{
		Sample:            p.Profiler.Analyze(),
		GPUModel:          "NVIDIA GeForce RTX 3080",
		AvailableMemoryMB: 8192 + p.rng.Intn(2049),
	}
}
