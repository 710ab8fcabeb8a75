// Copyright 2026 The Heapx Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"math/rand"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/fenwick-labs/heapx/heap"
)

func permutation(n int, seed int64) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	rnd.Shuffle(n, func(i, j int) { s[i], s[j] = s[j], s[i] })
	return s
}

func TestParallelMakeHeapEquivalence(t *testing.T) {
	for _, tc := range []struct {
		n, blockSize, maxThreads int
	}{
		{0, 4, 2},
		{1, 4, 2},
		{2, 4, 2},
		{10000, 64, 4},
		{10000, 1, 8},
		{500, 1000, 4},
		{777, 17, 3},
	} {
		orig := permutation(tc.n, int64(tc.n+tc.blockSize))
		par := append([]int(nil), orig...)
		if err := heap.ParallelMakeHeap(par, heap.Less[int], tc.blockSize,
			heap.WithMaxThreads[int](tc.maxThreads)); err != nil {
			t.Fatalf("n=%d blockSize=%d maxThreads=%d: %v", tc.n, tc.blockSize, tc.maxThreads, err)
		}
		if !heap.IsHeap(par, heap.Less[int]) {
			t.Fatalf("n=%d blockSize=%d maxThreads=%d: result is not a valid heap: %v",
				tc.n, tc.blockSize, tc.maxThreads, par)
		}

		gotSorted := append([]int(nil), par...)
		sort.Ints(gotSorted)
		wantSorted := append([]int(nil), orig...)
		sort.Ints(wantSorted)
		if !reflect.DeepEqual(gotSorted, wantSorted) {
			t.Fatalf("n=%d blockSize=%d maxThreads=%d: multiset mismatch", tc.n, tc.blockSize, tc.maxThreads)
		}
	}
}

func TestParallelMakeHeapTenThousand(t *testing.T) {
	const n = 10000
	s := permutation(n, 42)
	if err := heap.ParallelMakeHeap(s, heap.Less[int], 64, heap.WithMaxThreads[int](4)); err != nil {
		t.Fatalf("ParallelMakeHeap: %v", err)
	}
	if !heap.IsHeap(s, heap.Less[int]) {
		t.Fatalf("result is not a valid heap")
	}
	sorted := append([]int(nil), s...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("multiset mismatch at sorted index %d: got %d, want %d", i, v, i)
		}
	}
}

func TestParallelMakeHeapMoveObserverIsThreadSafe(t *testing.T) {
	const n = 5000
	s := permutation(n, 7)
	var mu sync.Mutex
	seen := make(map[int]int, n)
	observer := heap.MoveFunc[int](func(v *int, from, to int) {
		mu.Lock()
		seen[*v] = to
		mu.Unlock()
	})
	if err := heap.ParallelMakeHeap(s, heap.Less[int], 32,
		heap.WithMaxThreads[int](8), heap.WithMoveObserver(observer)); err != nil {
		t.Fatalf("ParallelMakeHeap: %v", err)
	}
	if !heap.IsHeap(s, heap.Less[int]) {
		t.Fatalf("result is not a valid heap")
	}
	for v, slot := range seen {
		if s[slot] != v {
			t.Fatalf("observer map says %d is at %d, but s[%d] = %d", v, slot, slot, s[slot])
		}
	}
}

func TestParallelMakeHeapSingleThread(t *testing.T) {
	s := permutation(300, 3)
	if err := heap.ParallelMakeHeap(s, heap.Less[int], 16, heap.WithMaxThreads[int](1)); err != nil {
		t.Fatalf("ParallelMakeHeap: %v", err)
	}
	if !heap.IsHeap(s, heap.Less[int]) {
		t.Fatalf("result is not a valid heap")
	}
}

func BenchmarkMakeHeapSequential(b *testing.B) {
	data := permutation(10000, 99)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := append([]int(nil), data...)
		heap.MakeHeap(s, heap.Less[int], nil)
	}
}

func BenchmarkMakeHeapParallel(b *testing.B) {
	data := permutation(10000, 99)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := append([]int(nil), data...)
		if err := heap.ParallelMakeHeap(s, heap.Less[int], 64, heap.WithMaxThreads[int](4)); err != nil {
			b.Fatal(err)
		}
	}
}
