// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"testing"
	"time"
)

func TestRollingBarrierPollIdle(t *testing.T) {
	b := newRollingBarrier(3)
	b.set(0, idleFrontier)
	b.set(1, idleFrontier)
	b.set(2, 5)
	if !b.poll(2, 100) {
		t.Fatalf("poll should succeed when every peer is idle or below threshold")
	}
}

func TestRollingBarrierPollBlocks(t *testing.T) {
	b := newRollingBarrier(2)
	b.set(0, 50)
	if b.poll(1, 10) {
		t.Fatalf("poll should fail while peer 0 is still at or above threshold")
	}
	b.set(0, 5)
	if !b.poll(1, 10) {
		t.Fatalf("poll should succeed once peer 0 has dropped below threshold")
	}
}

func TestRollingBarrierWaitUnblocksOnPeerIdle(t *testing.T) {
	b := newRollingBarrier(2)
	b.set(0, 100)
	done := make(chan struct{})
	go func() {
		b.wait(1, 10)
		close(done)
	}()
	select {
	case <-done:
		t.Fatalf("wait returned before the blocking peer published idle")
	case <-time.After(10 * time.Millisecond):
	}
	b.set(0, idleFrontier)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("wait did not unblock after peer went idle")
	}
}
