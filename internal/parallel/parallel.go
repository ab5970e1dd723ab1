// Package parallel provides the bounded fork/join helpers used for
// per-sample gradient computation and dataset evaluation.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := Workers()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Workers reports how many goroutines can usefully run at once.
//
// The logical core count from cpuid is capped by GOMAXPROCS so container
// limits are respected.
func Workers() int {
	n := runtime.GOMAXPROCS(0)
	if lc := cpuid.CPU.LogicalCores; lc > 0 && lc < n {
		n = lc
	}
	return max(n, 1)
}

// chunkSize returns the number of items each goroutine handles, or 0 when
// the work should run sequentially.
func chunkSize(n int, cfg Config) int {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize || n < 2 {
		return 0
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	size := chunkSize(n, cfg)
	if size == 0 {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// MapReduce folds the indices [0, n) into a single accumulator.
//
// The range is split into contiguous chunks. Each goroutine starts from its
// own accumulator returned by init and folds its indices into it in order;
// nothing is shared between goroutines. Once every chunk is done the
// partial accumulators are combined with merge in chunk order.
//
// fold and merge must be associative for the result to be independent of
// the chunking. With floating point sums the result is only identical
// across runs that use the same Config; a different worker count changes
// the summation order and may change the low-order bits.
func MapReduce[T any](n int, init func() T, fold func(acc T, i int) T, merge func(dst, src T) T, cfg Config) T {
	size := chunkSize(n, cfg)
	if size == 0 {
		acc := init()
		for i := 0; i < n; i++ {
			acc = fold(acc, i)
		}
		return acc
	}

	parts := make([]T, (n+size-1)/size)
	var wg sync.WaitGroup
	for k := range parts {
		start := k * size
		end := min(start+size, n)
		wg.Add(1)
		go func(k, s, e int) {
			defer wg.Done()
			acc := init()
			for i := s; i < e; i++ {
				acc = fold(acc, i)
			}
			parts[k] = acc
		}(k, start, end)
	}
	wg.Wait()

	acc := parts[0]
	for _, p := range parts[1:] {
		acc = merge(acc, p)
	}
	return acc
}
