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

	assert.Equal(t, int64(n), counter)
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(100, func(i int) {
		order = append(order, i)
	}, cfg)

	assert.Len(t, order, 100)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to a single chunk.
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
	assert.Equal(t, 1, NumChunks(n, cfg))
}

func TestForChunk_CoversRangeOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 2}
	n := 10

	hits := make([]int64, n)
	chunks := make([]int64, NumChunks(n, cfg))

	ForChunk(n, func(chunk, start, end int) {
		atomic.AddInt64(&chunks[chunk], 1)
		for i := start; i < end; i++ {
			atomic.AddInt64(&hits[i], 1)
		}
	}, cfg)

	assert.Len(t, chunks, 3) // ceil(10/3) = 4 per chunk
	for c, v := range chunks {
		assert.Equal(t, int64(1), v, "chunk %d", c)
	}
	for i, v := range hits {
		assert.Equal(t, int64(1), v, "item %d", i)
	}
}

func TestNumChunks(t *testing.T) {
	assert.Equal(t, 0, NumChunks(0, DefaultConfig()))
	assert.Equal(t, 1, NumChunks(50, Config{}))
	assert.Equal(t, 4, NumChunks(16, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}))
	assert.Equal(t, 2, NumChunks(16, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}))
}

func TestCores(t *testing.T) {
	assert.GreaterOrEqual(t, Cores(), 1)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(j int) {
				atomic.AddInt64(&sum, int64(j))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		seq := Config{Enabled: false}
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(j int) {
				atomic.AddInt64(&sum, int64(j))
			}, seq)
		}
	})
}
