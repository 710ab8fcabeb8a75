// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// MakeHeap reorders s in place so that it satisfies the heap property
// under less: no element compares less than either of its children. It
// runs in O(len(s)) by sifting down every internal node starting from
// the deepest and working back to the root, mirroring the standard
// bottom-up heapify.
//
// If moved is non-nil, it is invoked once for every relocation made
// while restoring the property, in the order those relocations occur.
func MakeHeap[T any](s []T, less LessFunc[T], moved MoveFunc[T]) {
	n := len(s)
	for parent := n/2 - 1; parent >= 0; parent-- {
		p := s[parent]
		siftDown(s, parent, parent, p, less, moved)
	}
}

// PushHeap absorbs s[len(s)-1] into the heap formed by s[:len(s)-1],
// which must already satisfy the heap property. It is the in-place
// analogue of container/heap.Push once the caller has appended the new
// element itself.
//
// If moved is non-nil and no sift is required because the new tail is
// already no greater than its parent, moved is still called once with
// from == to so that an observer always learns about the new element.
func PushHeap[T any](s []T, less LessFunc[T], moved MoveFunc[T]) {
	n := len(s)
	if n < 2 {
		if n == 1 {
			notify(moved, s, 0, 0)
		}
		return
	}
	hole := n - 1
	parent := (hole - 1) / 2
	if !less(s[parent], s[hole]) {
		notify(moved, s, hole, hole)
		return
	}
	p := s[hole]
	siftUp(s, hole, hole, p, less, moved)
}

// PopHeap moves the maximum element of the heap s to s[len(s)-1] and
// restores the heap property on s[:len(s)-1]. s must satisfy the heap
// property on entry. Callers typically re-slice away the last element
// afterward to shrink the heap.
//
// If moved is non-nil, it is called once for every sift relocation and,
// after the internal sift completes, exactly once more to report the
// former root landing at the back — even when len(s) <= 1, in which
// case no sifting happens but the terminal notification is still
// delivered.
func PopHeap[T any](s []T, less LessFunc[T], moved MoveFunc[T]) {
	n := len(s) - 1
	if n <= 0 {
		if len(s) == 1 {
			notify(moved, s, 0, 0)
		}
		return
	}
	p := s[n]
	s[n] = s[0]
	siftDown(s[:n], 0, n, p, less, moved)
	notify(moved, s, 0, n)
}

// SortHeap sorts s in place in ascending order under less by repeatedly
// popping the maximum off a shrinking suffix. s must satisfy the heap
// property on entry; the final result is a fully sorted slice, not a
// heap.
func SortHeap[T any](s []T, less LessFunc[T], moved MoveFunc[T]) {
	for n := len(s); n > 1; n-- {
		PopHeap(s[:n], less, moved)
	}
}

// IsHeapUntil returns the index of the first element that violates the
// heap property under less, or len(s) if none does.
func IsHeapUntil[T any](s []T, less LessFunc[T]) int {
	for i := 1; i < len(s); i++ {
		if less(s[(i-1)/2], s[i]) {
			return i
		}
	}
	return len(s)
}

// IsHeap reports whether s satisfies the heap property under less.
func IsHeap[T any](s []T, less LessFunc[T]) bool {
	return IsHeapUntil(s, less) == len(s)
}
