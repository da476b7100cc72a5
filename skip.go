package windowz

import (
	"iter"
)

// Skip drops the first n elements of a sequence and yields the rest.
//
// Example:
//
//	// Ignore a header line
//	rows := windowz.Skip(lines, 1)
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for item := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}
