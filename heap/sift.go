// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// siftUp treats s[hole] as an empty slot and walks it toward the root,
// moving down any ancestor that is less than p, until the root is
// reached or the ancestor is not less than p. p, which originated at
// slot from, is then written into the final hole. from is reported
// unchanged through to the terminal notify call; it never indexes s.
func siftUp[T any](s []T, hole, from int, p T, less LessFunc[T], moved MoveFunc[T]) {
	for hole > 0 {
		parent := (hole - 1) / 2
		if !less(s[parent], p) {
			break
		}
		s[hole] = s[parent]
		notify(moved, s, parent, hole)
		hole = parent
	}
	s[hole] = p
	notify(moved, s, from, hole)
}

// siftDown treats s[hole] as an empty slot within a heap of length
// len(s) and walks it toward the leaves, each step moving the larger of
// hole's two children into hole if that child is greater than p. Ties
// between the two children favor the right child. p, which originated
// at slot from, is written into the final hole.
func siftDown[T any](s []T, hole, from int, p T, less LessFunc[T], moved MoveFunc[T]) {
	n := len(s)
	for {
		left := 2*hole + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && !less(s[right], s[left]) {
			child = right
		}
		if !less(p, s[child]) {
			break
		}
		s[hole] = s[child]
		notify(moved, s, child, hole)
		hole = child
	}
	s[hole] = p
	notify(moved, s, from, hole)
}
