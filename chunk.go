package windowz

import (
	"iter"
)

// Chunks groups a sequence into consecutive, non-overlapping slices of size
// elements. Unlike Windows, every element appears in exactly one chunk and
// the last chunk may be shorter if the sequence ends before filling it.
//
// When to use:
//   - Processing data in fixed-size batches
//   - Splitting a flat sequence into rows of known width
//
// Example:
//
//	// Rows of a 4-wide grid
//	for row := range windowz.Chunks(cells, 4) {
//		render(row)
//	}
//
// Parameters:
//   - seq: Source sequence
//   - size: Number of elements per chunk (must be > 0, panics otherwise)
//
// Returns a sequence of chunks.
func Chunks[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	mustSize("chunk", size)

	return func(yield func([]T) bool) {
		chunk := make([]T, 0, size)

		for item := range seq {
			chunk = append(chunk, item)

			if len(chunk) >= size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}

		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}
