// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// elementwise dispatch. A Pool is created once and reused across many
// dispatch calls, so a call costs one channel send per batch instead of a
// goroutine spawn.
//
// Work is always described as a half-open index range [start, end) over the
// elements of a buffer. Ranges handed to workers are contiguous and
// disjoint, so callers may write their outputs without synchronization.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForBatched(n, 512, func(start, end int) {
//	    for i := start; i < end; i++ {
//	        out[i] = fn(in[i])
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be shared by concurrent callers.
// Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu orders Close against in-flight sends on workC.
	mu     sync.RWMutex
	closed bool
}

// workItem is one unit of a parallel call.
type workItem struct {
	fn   func()
	call *call
}

// call tracks the items of a single ParallelFor* invocation.
type call struct {
	wg        sync.WaitGroup
	panicOnce sync.Once
	panicked  any
}

// run executes fn and records the first panic instead of crashing the
// worker.
func (c *call) run(fn func()) {
	defer c.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			c.panicOnce.Do(func() { c.panicked = r })
		}
	}()
	fn()
}

// wait blocks until every item finished and re-raises a recorded panic on
// the calling goroutine.
func (c *call) wait() {
	c.wg.Wait()
	if c.panicked != nil {
		panic(c.panicked)
	}
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.call.run(item.fn)
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Pending work completes first.
// Calling Close multiple times is safe, and Close may overlap with running
// ParallelFor* calls. Calls that start after Close run sequentially on the
// caller's goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// submit hands fns to the workers as one call and waits for them. It
// returns false without running anything when the pool is closed.
func (p *Pool) submit(fns []func()) bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	c := &call{}
	c.wg.Add(len(fns))
	for _, fn := range fns {
		p.workC <- workItem{fn: fn, call: c}
	}
	p.mu.RUnlock()

	c.wait()
	return true
}

// Range is a half-open interval [Start, End) of element indices.
type Range struct {
	Start, End int
}

// Partition splits [0, n) into at most parts contiguous ranges of nearly
// equal length, in order. It returns nil when n <= 0.
func Partition(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))
	chunk := (n + parts - 1) / parts

	ranges := make([]Range, 0, parts)
	for start := 0; start < n; start += chunk {
		ranges = append(ranges, Range{Start: start, End: min(start+chunk, n)})
	}
	return ranges
}

// ParallelFor executes fn over [0, n) split by Partition into at most one
// contiguous range per worker and at most n/grain ranges, so small inputs
// use fewer workers. Blocks until all work completes. A panic in fn is
// re-raised on the caller's goroutine after the other ranges finish.
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	grain = max(1, grain)

	ranges := Partition(n, min(p.numWorkers, n/grain))
	if len(ranges) == 1 {
		fn(0, n)
		return
	}

	fns := make([]func(), len(ranges))
	for i, r := range ranges {
		fns[i] = func() { fn(r.Start, r.End) }
	}
	if !p.submit(fns) {
		fn(0, n)
	}
}

// ParallelForBatched executes fn over [0, n) in batches of batchSize indices
// that workers claim with an atomic counter. This balances load when the
// cost per index varies, while keeping every batch contiguous.
//
// Batch boundaries are multiples of batchSize, independent of scheduling.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	sequential := func() {
		for start := 0; start < n; start += batchSize {
			fn(start, min(start+batchSize, n))
		}
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers <= 1 {
		sequential()
		return
	}

	var next atomic.Int64
	claim := func() {
		for {
			start := int(next.Add(int64(batchSize)) - int64(batchSize))
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}
	fns := make([]func(), workers)
	for i := range fns {
		fns[i] = claim
	}
	if !p.submit(fns) {
		sequential()
	}
}
