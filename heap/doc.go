// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap implements binary-heap algorithms over an in-place,
// random-access sequence. Unlike container/heap, every operation here
// takes its comparator and, optionally, a move observer as explicit
// arguments rather than through a fixed heap.Interface, and the package
// adds two extensions beyond the textbook make/push/pop/sort set:
// arbitrary-position removal and update (PopHeapAt, UpdateHeap), and a
// block-partitioned, barrier-coordinated parallel build (ParallelMakeHeap).
//
// The heap is always a max-heap under the supplied LessFunc: a[(i-1)/2]
// is never less than a[i] for any non-root index i. Callers needing a
// min-heap invert their comparator.
//
// Every operation can be told about relocations as they happen by
// passing a non-nil MoveFunc. This is what makes PopHeapAt and
// UpdateHeap usable in practice: a caller that wants to mutate an
// element it no longer has the index of needs some way to learn what
// index it currently occupies, and the move observer is that mechanism.
package heap
