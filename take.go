package windowz

import (
	"iter"
)

// Take limits a sequence to its first n elements.
// The source is not read past the nth element.
//
// When to use:
//   - Windowing a prefix of an infinite sequence
//   - Sampling the first few windows while debugging
//
// Example:
//
//	// First ten windows of an endless counter
//	first := windowz.Take(windowz.Windows(counter, 3), 10)
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}

		taken := 0
		for item := range seq {
			if !yield(item) {
				return
			}
			taken++
			if taken >= n {
				return
			}
		}
	}
}
