// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "log/slog"

type parallelOptions[T any] struct {
	maxThreads int
	moved      MoveFunc[T]
	logger     *slog.Logger
}

// Option configures a ParallelMakeHeap call. It follows the functional
// options shape used throughout this package's grounding repository
// (see its container/heap Option[K, V]).
type Option[T any] func(*parallelOptions[T])

// WithMaxThreads caps the number of workers (including the calling
// goroutine) ParallelMakeHeap will use. A value <= 0 leaves the
// default of runtime.NumCPU(), clamped to at least 2, in place.
func WithMaxThreads[T any](n int) Option[T] {
	return func(o *parallelOptions[T]) {
		o.maxThreads = n
	}
}

// WithMoveObserver installs a move observer for ParallelMakeHeap. The
// observer is invoked from worker goroutines, so the caller is
// responsible for its thread-safety per spec.md §4.6.
func WithMoveObserver[T any](moved MoveFunc[T]) Option[T] {
	return func(o *parallelOptions[T]) {
		o.moved = moved
	}
}

// WithLogger installs a logger for ParallelMakeHeap's dispatch
// decisions (block claimed, barrier wait entered/exited, worker count
// chosen). The default is a discard logger.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *parallelOptions[T]) {
		o.logger = l
	}
}
