package pool

import (
	"sync/atomic"
	"testing"
)

func BenchmarkSubmit(b *testing.B) {
	p, err := New(4)
	if err != nil {
		b.Fatal(err)
	}

	var counter atomic.Int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Submit(func() { counter.Add(1) })
	}
	b.StopTimer()
	p.Shutdown()
}

func BenchmarkSubmitParallel(b *testing.B) {
	p, err := New(8)
	if err != nil {
		b.Fatal(err)
	}

	var counter atomic.Int64
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = p.Submit(func() { counter.Add(1) })
		}
	})
	b.StopTimer()
	p.Shutdown()
}
