// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cmp"

// LessFunc reports whether a sorts strictly before b. It must induce a
// strict weak order over the values it is given; a non-transitive
// LessFunc produces an unspecified heap arrangement but the library
// only ever calls it pairwise, so it cannot corrupt the backing slice.
type LessFunc[T any] func(a, b T) bool

// MoveFunc is invoked once for every relocation a heap operation makes,
// after the value has been written into slot to. from is the slot the
// value previously occupied; from == to when a value is reported without
// having actually moved (for example the element just pushed onto the
// back of the slice). A nil MoveFunc disables tracking entirely and
// costs a single nil check per relocation.
type MoveFunc[T any] func(v *T, from, to int)

// Less returns the natural less-than order for any cmp.Ordered type,
// suitable as the LessFunc argument to every operation in this package
// when no custom comparator is needed.
func Less[T cmp.Ordered](a, b T) bool {
	return a < b
}

func notify[T any](moved MoveFunc[T], s []T, from, to int) {
	if moved != nil {
		moved(&s[to], from, to)
	}
}
