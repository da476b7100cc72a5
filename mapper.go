package windowz

import (
	"iter"
)

// Map transforms each element of a sequence with fn.
// The transformation runs lazily, once per element, as the result is ranged over.
//
// When to use:
//   - Reducing windows to a single value (sum, mean, max)
//   - Converting parsed lines into domain types
//   - Projecting a field out of a struct sequence
//
// Example:
//
//	// Sum each window
//	sums := windowz.Map(windowz.Windows(values, 3), func(w []int) int {
//		return w[0] + w[1] + w[2]
//	})
//
//	// Parse lines
//	numbers := windowz.Map(strings.Lines(input), parseLine)
//
// Parameters:
//   - seq: Source sequence
//   - fn: Transformation applied to every element
//
// Returns a sequence of transformed elements.
func Map[In, Out any](seq iter.Seq[In], fn func(In) Out) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for item := range seq {
			if !yield(fn(item)) {
				return
			}
		}
	}
}
