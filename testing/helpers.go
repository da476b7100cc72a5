// Package testing provides test utilities for windowz.
package testing

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Pulls records how a source sequence has been consumed.
type Pulls struct {
	// Count is the number of elements handed out so far.
	Count int

	// Ranges is the number of times the sequence has been ranged over.
	Ranges int
}

// Counting wraps values in a sequence that records every element it yields.
// Tests use it to check that adaptors read lazily and at most once.
func Counting[T any](values ...T) (iter.Seq[T], *Pulls) {
	pulls := &Pulls{}

	seq := func(yield func(T) bool) {
		pulls.Ranges++
		for _, v := range values {
			pulls.Count++
			if !yield(v) {
				return
			}
		}
	}

	return seq, pulls
}

// Naturals yields 0, 1, 2, ... until the consumer stops.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// CollectWindows drains a window sequence into a slice.
// It returns an empty, non-nil slice when seq yields nothing.
func CollectWindows[T any](seq iter.Seq[[]T]) [][]T {
	out := [][]T{}
	for w := range seq {
		out = append(out, w)
	}
	return out
}

// AssertWindows fails the test with a diff when got and want differ.
func AssertWindows[T any](t *testing.T, got, want [][]T) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("windows mismatch (-want +got):\n%s", diff)
	}
}

// SlidingSums computes the reference answer for rolling sums without any
// adaptor, by indexing into values directly.
func SlidingSums(values []int, size int) []int {
	if size < 1 || len(values) < size {
		return []int{}
	}

	sums := make([]int, 0, len(values)-size+1)
	for i := 0; i+size <= len(values); i++ {
		sum := 0
		for _, v := range values[i : i+size] {
			sum += v
		}
		sums = append(sums, sum)
	}
	return sums
}
