package queue

import (
	"strconv"
	"testing"
)

// =============================================================================
// BenchmarkEnqueue - amortized cost including growth
// =============================================================================

func BenchmarkEnqueue(b *testing.B) {
	for _, initial := range []int{1, 64} {
		b.Run("initial_"+strconv.Itoa(initial), func(b *testing.B) {
			q, err := New(Config{InitialCapacity: initial})
			if err != nil {
				b.Fatal(err)
			}
			defer q.Free()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = q.Enqueue(i)
			}
		})
	}
}

// =============================================================================
// BenchmarkEnqueueDequeue - steady state, no growth
// =============================================================================

func BenchmarkEnqueueDequeue(b *testing.B) {
	q, err := New(Config{})
	if err != nil {
		b.Fatal(err)
	}
	defer q.Free()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(i)
		_, _ = q.Dequeue()
	}
}

// BenchmarkBurst fills and drains in bursts larger than the initial capacity.
func BenchmarkBurst(b *testing.B) {
	const burst = 1024

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q, _ := New(Config{InitialCapacity: 16})
		for j := 0; j < burst; j++ {
			_ = q.Enqueue(j)
		}
		for !q.IsEmpty() {
			_, _ = q.Dequeue()
		}
		q.Free()
	}
}
