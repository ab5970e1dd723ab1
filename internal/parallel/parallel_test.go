package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_EveryIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	seen := make([]int32, 37)
	For(len(seen), func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, v := range seen {
		assert.Equal(t, int32(1), v, "index %d", i)
	}
}

func TestWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, Workers(), 1)
}

func TestMapReduce(t *testing.T) {
	sum := func(cfg Config, n int) int {
		return MapReduce(n,
			func() int { return 0 },
			func(acc, i int) int { return acc + i },
			func(dst, src int) int { return dst + src },
			cfg)
	}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"sequential", Config{Enabled: false}},
		{"one worker", Config{Enabled: true, NumWorkers: 1, MinChunkSize: 1}},
		{"four workers", Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}},
		{"uneven chunks", Config{Enabled: true, NumWorkers: 3, MinChunkSize: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, sum(tt.cfg, 0))
			assert.Equal(t, 1, sum(tt.cfg, 2))
			assert.Equal(t, 4950, sum(tt.cfg, 100))
		})
	}
}

func TestMapReduce_PrivateAccumulators(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}

	var inits int64
	got := MapReduce(64,
		func() []int {
			atomic.AddInt64(&inits, 1)
			return nil
		},
		func(acc []int, i int) []int { return append(acc, i) },
		func(dst, src []int) []int { return append(dst, src...) },
		cfg)

	// Chunks are merged in order, so the indices come back sorted.
	want := make([]int, 64)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
	assert.Equal(t, int64(8), inits)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
