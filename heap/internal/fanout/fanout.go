// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fanout runs a short-lived set of goroutines and joins them,
// collecting both returned errors and recovered panics into a single
// aggregated error. It is adapted from cloudeng.io/sync/errgroup's T,
// trimmed of context-cancellation support (parallel heap builds run to
// completion unconditionally per spec.md's concurrency model) and
// extended to recover a worker's panic rather than let it crash the
// process, since that is the closest real-Go analogue of "worker
// thread creation failure".
package fanout

import (
	"sync"

	"cloudeng.io/errors"
)

// Group runs a set of goroutines and waits for all of them to finish.
// Unlike the errgroup it is adapted from, Group never cancels on first
// error: every worker runs to completion and every error or recovered
// panic is collected, matching spec.md §7's requirement that already
// spawned workers be joined before a failure is reported.
type Group struct {
	wg     sync.WaitGroup
	errors errors.M
}

// Go runs f in a new goroutine. A panic raised by f is recovered and
// folded into the error Wait ultimately returns, via mkPanicErr.
func (g *Group) Go(f func() error, mkPanicErr func(recovered any) error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				g.errors.Append(mkPanicErr(r))
			}
		}()
		if err := f(); err != nil {
			g.errors.Append(err)
		}
	}()
}

// Wait blocks until every goroutine started with Go has returned, then
// returns the aggregated error, or nil if none failed or panicked.
func (g *Group) Wait() error {
	g.wg.Wait()
	return g.errors.Err()
}
