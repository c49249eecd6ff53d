// Copyright 2025 The go-sortlab Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for running
// many independent checks in parallel. A Pool is created once and reused
// across operations, so workers are spawned a single time.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelForAtomic(ctx, len(inputs), func(i int) {
//	    check(inputs[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close. ParallelFor and ParallelForAtomic may run concurrently
// with each other, but not with Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a parallel operation.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down after pending work completes. Calling Close more
// than once is safe. A closed pool still accepts work but runs it on the
// calling goroutine.
//
// Close must not be called concurrently with ParallelFor or
// ParallelForAtomic: a call already dispatching to the workers would send on
// the closed channel and panic.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until all ranges are done and returns
// ctx.Err() if ctx was cancelled before every range started.
func (p *Pool) ParallelFor(ctx context.Context, n int, fn func(start, end int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(0, n)
		return nil
	}

	chunkSize := (n + workers - 1) / workers
	var skipped atomic.Bool
	p.run(workers, func(w int) {
		start := w * chunkSize
		if start >= n {
			return
		}
		if ctx.Err() != nil {
			skipped.Store(true)
			return
		}
		fn(start, min(start+chunkSize, n))
	})

	if skipped.Load() {
		return ctx.Err()
	}
	return nil
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so uneven work balances across workers. Workers stop picking
// up new indices once ctx is cancelled; in that case ctx.Err() is returned.
func (p *Pool) ParallelForAtomic(ctx context.Context, n int, fn func(i int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	var next atomic.Int64
	var stopped atomic.Bool
	p.run(workers, func(int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			if ctx.Err() != nil {
				stopped.Store(true)
				return
			}
			fn(i)
		}
	})

	if stopped.Load() {
		return ctx.Err()
	}
	return nil
}

// run hands body(w) for w in [0, workers) to the pool and waits for all of
// them. The caller must not race Close.
func (p *Pool) run(workers int, body func(w int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{
			fn:      func() { body(w) },
			barrier: &wg,
		}
	}
	wg.Wait()
}
