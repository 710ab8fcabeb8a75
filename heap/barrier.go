// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"runtime"
	"sync/atomic"
)

// idleFrontier is the sentinel a worker publishes to mean "idle — do
// not block on me" or "done for good"; the two meanings are
// indistinguishable by design, per the package's barrier contract.
const idleFrontier = -1

// rollingBarrier is a fixed-size board of per-worker progress counters
// used by ParallelMakeHeap to serialize overlapping subtree accesses
// without ever blocking on a kernel primitive. Each slot is written
// only by its owning worker and read by every other worker; set is an
// atomic release store and poll is an atomic acquire load across every
// peer slot, so a worker observing poll return true also observes
// every sequence write the corresponding peers made before their last
// set.
//
// The atomic fields are plain int64s manipulated with the sync/atomic
// free functions rather than atomic.Int64.
type rollingBarrier struct {
	frontier []int64
}

// newRollingBarrier allocates a barrier for nthreads workers, with
// every slot starting at the idle sentinel. A worker that has not yet
// claimed a block is indistinguishable from one that is idle between
// blocks: whichever block it claims next is guaranteed by the shared,
// strictly decreasing block counter to be lower-indexed than every
// block already claimed, so it cannot conflict with work in flight at
// the time a peer observes it as idle.
func newRollingBarrier(nthreads int) *rollingBarrier {
	b := &rollingBarrier{frontier: make([]int64, nthreads)}
	for i := range b.frontier {
		b.frontier[i] = idleFrontier
	}
	return b
}

// set publishes v as the frontier for slot i. Only the worker that
// owns slot i may call set on it.
func (b *rollingBarrier) set(i int, v int64) {
	atomic.StoreInt64(&b.frontier[i], v)
}

// poll reports whether every slot other than i has published a
// frontier that is either below threshold or the idle sentinel. A
// peer whose frontier is still >= threshold may be writing to slots
// this worker is about to touch, and must be waited for.
func (b *rollingBarrier) poll(i int, threshold int64) bool {
	for j := range b.frontier {
		if j == i {
			continue
		}
		v := atomic.LoadInt64(&b.frontier[j])
		if v != idleFrontier && v >= threshold {
			return false
		}
	}
	return true
}

// wait spins, yielding the scheduler between attempts, until poll
// returns true for the given threshold. The barrier never blocks on a
// kernel primitive; this is the spin-with-yield loop spec.md's
// concurrency model calls for.
func (b *rollingBarrier) wait(i int, threshold int64) {
	for !b.poll(i, threshold) {
		runtime.Gosched()
	}
}
