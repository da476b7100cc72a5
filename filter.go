package windowz

import (
	"iter"
)

// Filter keeps only the elements of a sequence that satisfy predicate.
//
// When to use:
//   - Keeping windows that match a condition (rising pairs, thresholds)
//   - Dropping blank or invalid records before further processing
//
// Example:
//
//	// Pairs where the second value is larger
//	rising := windowz.Filter(windowz.Windows(sums, 2), func(p []int) bool {
//		return p[1] > p[0]
//	})
//
// Parameters:
//   - seq: Source sequence
//   - predicate: Returns true for elements to keep
//
// Returns a sequence of the kept elements, in source order.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			if predicate(item) && !yield(item) {
				return
			}
		}
	}
}

// Count consumes seq and returns the number of elements it produced.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
