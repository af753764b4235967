// Package parallel provides parallel execution utilities for dual-number training.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
//
// The zero value runs everything sequentially.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on the logical core count.
func DefaultConfig() Config {
	n := Cores()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 8, // A dual forward pass is heavy; small chunks pay off.
	}
}

// Cores reports the number of logical cores, falling back to runtime.NumCPU
// when CPU detection is unavailable.
func Cores() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// chunkSize returns the number of items per chunk, or n when running sequentially.
func chunkSize(n int, cfg Config) int {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		return n
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// NumChunks returns how many chunks ForChunk splits n items into.
func NumChunks(n int, cfg Config) int {
	if n <= 0 {
		return 0
	}
	size := chunkSize(n, cfg)
	return (n + size - 1) / size
}

// ForChunk executes f(chunk, start, end) over contiguous ranges covering [0, n).
// Chunk numbers are dense in [0, NumChunks(n, cfg)) and stable for a given n and cfg.
// Falls back to a single sequential chunk if parallelism is disabled or n is too small.
func ForChunk(n int, f func(chunk, start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	size := chunkSize(n, cfg)
	if size >= n {
		f(0, 0, n)
		return
	}

	var wg sync.WaitGroup
	for chunk, start := 0, 0; start < n; chunk, start = chunk+1, start+size {
		end := min(start+size, n)
		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			f(c, s, e)
		}(chunk, start, end)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
func For(n int, f func(i int), cfg Config) {
	ForChunk(n, func(_, start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
