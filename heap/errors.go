// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "fmt"

// ErrWorker wraps a recovered panic from a ParallelMakeHeap worker
// goroutine. Any error returned by ParallelMakeHeap that satisfies
// errors.Is(err, ErrWorker) originated as a panic in the comparator,
// the move observer, or the block-dispatch logic itself rather than
// from the sequence or its contents being invalid.
var ErrWorker = &workerError{}

type workerError struct {
	worker int
	block  int
	cause  any
}

func newWorkerError(worker, block int, cause any) error {
	return &workerError{worker: worker, block: block, cause: cause}
}

func (e *workerError) Error() string {
	return fmt.Sprintf("heap: worker %d panicked processing block %d: %v", e.worker, e.block, e.cause)
}

func (e *workerError) Is(target error) bool {
	_, ok := target.(*workerError)
	return ok
}
