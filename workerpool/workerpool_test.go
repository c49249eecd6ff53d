// Copyright 2025 The go-sortlab Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	require.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	require.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 103
	results := make([]int, n)
	err := pool.ParallelFor(context.Background(), n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	require.NoError(t, err)

	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	err := pool.ParallelForAtomic(context.Background(), n, func(i int) {
		results[i] = i * 2
	})
	require.NoError(t, err)

	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestParallelForAtomicVisitsEachIndexOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 10000
	visits := make([]atomic.Int32, n)
	require.NoError(t, pool.ParallelForAtomic(context.Background(), n, func(i int) {
		visits[i].Add(1)
	}))
	for i := range visits {
		require.Equal(t, int32(1), visits[i].Load(), "index %d", i)
	}
}

func TestParallelForAtomicCancelled(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var count atomic.Int32
	err := pool.ParallelForAtomic(ctx, 1000, func(i int) {
		if count.Add(1) == 10 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, count.Load(), int32(1000))
}

func TestParallelForCancelledBeforeStart(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	err := pool.ParallelFor(ctx, 100, func(start, end int) {
		called.Store(true)
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called.Load())
}

func TestZeroItems(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	require.NoError(t, pool.ParallelFor(context.Background(), 0, func(start, end int) {
		t.Error("fn should not be called for n=0")
	}))
	require.NoError(t, pool.ParallelForAtomic(context.Background(), 0, func(i int) {
		t.Error("fn should not be called for n=0")
	}))
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	n := 50
	results := make([]int, n)
	require.NoError(t, pool.ParallelForAtomic(context.Background(), n, func(i int) {
		results[i] = i + 1
	}))
	require.NoError(t, pool.ParallelFor(context.Background(), n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i]++
		}
	}))
	for i := range n {
		require.Equal(t, i+2, results[i])
	}
}

func TestCloseAfterConcurrentCalls(t *testing.T) {
	pool := New(4)

	var wg sync.WaitGroup
	var total atomic.Int64
	errs := make([]error, 8)
	for g := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[g] = pool.ParallelForAtomic(context.Background(), 100, func(int) {
				total.Add(1)
			})
		}()
	}
	wg.Wait()
	pool.Close()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int64(800), total.Load())
	require.NoError(t, pool.ParallelFor(context.Background(), 10, func(start, end int) {
		total.Add(int64(end - start))
	}))
	require.Equal(t, int64(810), total.Load())
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]int, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.ParallelForAtomic(context.Background(), len(data), func(j int) {
			data[j] = j * j
		})
	}
}
