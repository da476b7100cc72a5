package windowz

import (
	"iter"
)

// Pairwise yields each element together with the one before it, starting
// from the second element. It is Windows(seq, 2) without the slice allocation.
//
// Example:
//
//	for prev, cur := range windowz.Pairwise(depths) {
//		if cur > prev {
//			increases++
//		}
//	}
func Pairwise[T any](seq iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var prev T
		started := false

		for item := range seq {
			if started && !yield(prev, item) {
				return
			}
			prev, started = item, true
		}
	}
}
