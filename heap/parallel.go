// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/fenwick-labs/heapx/heap/internal/fanout"
)

// ParallelMakeHeap builds a heap over s using up to maxThreads workers
// (including the calling goroutine), processing the internal nodes
// [0, len(s)/2) in contiguous blocks of blockSize indices. Blocks are
// claimed in decreasing index order off a shared atomic counter and
// executed as a down_block sift-down sweep; a rollingBarrier ensures a
// worker never enters a block whose subtree a peer might still be
// writing.
//
// ParallelMakeHeap and the sequential MakeHeap produce heaps
// containing the same multiset for the same input, but not necessarily
// the same arrangement.
//
// If blockSize <= 0 it is treated as 1. If maxThreads <= 0 (the
// WithMaxThreads default), the library queries runtime.NumCPU and
// clamps it to at least 2; the effective worker count is then
// min(nblocks, maxThreads), and at least 1.
//
// A panic in the comparator, the move observer, or the dispatch logic
// itself inside a worker goroutine is recovered and reported as a
// single aggregated error satisfying errors.Is(err, ErrWorker), after
// every already-spawned worker has been joined. s is left in an
// unspecified but valid-move state if this happens.
func ParallelMakeHeap[T any](s []T, less LessFunc[T], blockSize int, opts ...Option[T]) error {
	var o parallelOptions[T]
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("pkg", "heap", "op", "ParallelMakeHeap")

	n := len(s)
	internal := n / 2
	if internal == 0 {
		return nil
	}
	if blockSize <= 0 {
		blockSize = 1
	}
	nblocks := (internal + blockSize - 1) / blockSize

	maxThreads := o.maxThreads
	if maxThreads <= 0 {
		maxThreads = max(runtime.NumCPU(), 2)
	}
	nthreads := max(min(nblocks, maxThreads), 1)
	logger.Debug("dispatch", "n", n, "blockSize", blockSize, "nblocks", nblocks, "nthreads", nthreads)

	barrier := newRollingBarrier(nthreads)
	counter := int64(nblocks)

	claim := func() (int, bool) {
		v := atomic.AddInt64(&counter, -1)
		if v < 0 {
			return 0, false
		}
		return int(v), true
	}

	process := func(workerID, block int) {
		blockFront := block * blockSize
		blockEnd := min((block+1)*blockSize, internal)
		firstChild := 2*blockFront + 1
		frontier := int64(n - blockFront - blockSize)
		barrier.set(workerID, frontier)
		waitFor := int64(n - firstChild - 1)
		logger.Debug("barrier wait enter", "worker", workerID, "block", block, "waitFor", waitFor)
		barrier.wait(workerID, waitFor)
		logger.Debug("barrier wait exit", "worker", workerID, "block", block)
		downBlock(s, blockEnd-1, blockFront, less, o.moved)
		barrier.set(workerID, idleFrontier)
		logger.Debug("block done", "worker", workerID, "block", block)
	}

	// runWorker drains blocks off the shared counter until none remain.
	// current, when non-nil, is updated with each block right before it
	// is processed, so a caller whose goroutine panics mid-block can
	// still report which block it was on.
	runWorker := func(workerID int, current *int) {
		for {
			block, ok := claim()
			if !ok {
				barrier.set(workerID, idleFrontier)
				return
			}
			if current != nil {
				*current = block
			}
			process(workerID, block)
		}
	}

	// The calling goroutine claims and runs the topmost (possibly
	// partial) block itself before any worker goroutine is spawned,
	// per spec.md §4.6's Termination rule; the very first claim off a
	// freshly initialized counter always yields block nblocks-1.
	block, ok := claim()
	if !ok {
		return nil
	}
	mainWorker := nthreads - 1
	process(mainWorker, block)

	if nthreads == 1 {
		runWorker(mainWorker, nil)
		return nil
	}

	var g fanout.Group
	for w := 0; w < nthreads-1; w++ {
		w := w
		current := -1
		g.Go(func() error {
			runWorker(w, &current)
			return nil
		}, func(r any) error {
			barrier.set(w, idleFrontier)
			return newWorkerError(w, current, r)
		})
	}
	runWorker(mainWorker, nil)
	return g.Wait()
}

// downBlock runs a sift-down sweep over the internal-node indices
// [lo, hi], processed from hi down to lo, exactly as make_heap's
// sequential bottom-up pass does over its whole range.
func downBlock[T any](s []T, hi, lo int, less LessFunc[T], moved MoveFunc[T]) {
	for parent := hi; parent >= lo; parent-- {
		p := s[parent]
		siftDown(s, parent, parent, p, less, moved)
	}
}
