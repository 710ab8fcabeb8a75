// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// PopHeapAt removes the element at position pos from the heap s,
// leaving it in s[len(s)-1] and restoring the heap property on
// s[:len(s)-1]. pos must be a valid index into s; s must satisfy the
// heap property on entry. PopHeapAt generalizes PopHeap, which is
// equivalent to PopHeapAt(s, 0, ...).
//
// Unlike PopHeap, the displaced former tail value may need to sift
// either toward the root or toward the leaves depending on how pos
// compares with its new neighbors, so the direction is decided by a
// single comparison against pos's parent rather than always sifting
// down.
func PopHeapAt[T any](s []T, pos int, less LessFunc[T], moved MoveFunc[T]) {
	n := len(s) - 1
	if pos == n {
		notify(moved, s, pos, pos)
		return
	}
	value := s[n]
	s[n] = s[pos]
	rest := s[:n]
	// value's true previous slot is n, the former tail, even though it
	// is about to be sifted starting from pos; the sift's own notify
	// calls must report that origin, not pos, so an external handle->slot
	// map keyed on from stays correct.
	if pos > 0 && less(rest[(pos-1)/2], value) {
		siftUp(rest, pos, n, value, less, moved)
	} else {
		siftDown(rest, pos, n, value, less, moved)
	}
	notify(moved, s, pos, n)
}

// UpdateHeap restores the heap property after the caller has mutated
// s[pos] directly, outside this package. The direction of repair is
// decided the same way as PopHeapAt: up if s[pos] now exceeds its
// parent, down otherwise. pos must be a valid index into s.
func UpdateHeap[T any](s []T, pos int, less LessFunc[T], moved MoveFunc[T]) {
	value := s[pos]
	if pos > 0 && less(s[(pos-1)/2], value) {
		siftUp(s, pos, pos, value, less, moved)
		return
	}
	siftDown(s, pos, pos, value, less, moved)
}
