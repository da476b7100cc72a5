// Package windowz provides lazy, type-safe sequence adaptors built on the
// standard iter package, centred on fixed-size sliding windows.
//
// The core abstraction is Windows, which turns an iter.Seq[T] into an
// iter.Seq[[]T] of overlapping windows that advance by one element per step.
// Adaptors are pull based: nothing is read from the source until a window is
// requested, and reading stops as soon as the consumer stops.
//
// Basic usage:
//
//	depths := slices.Values([]int{199, 200, 208, 210, 200, 207})
//
//	// Sum each run of three readings, then compare neighbouring sums
//	sums := windowz.Map(windowz.Windows(depths, 3), func(w []int) int {
//		return w[0] + w[1] + w[2]
//	})
//	rising := windowz.Filter(windowz.Windows(sums, 2), func(p []int) bool {
//		return p[1] > p[0]
//	})
//
//	fmt.Println(windowz.Count(rising))
//
// The package provides:
//   - Sliding windows, push style (Windows) and pull style (WindowIter)
//   - Non-overlapping chunks
//   - Mapping, filtering, take and skip over sequences
//   - A channel bridge (SlidingWindow, FromChan) for sources fed by goroutines
package windowz

import (
	"context"
)

// Processor is the channel-facing counterpart of the sequence adaptors.
// It transforms an input channel of type In to an output channel of type Out.
// Processors should:
//   - Close the output channel when the input channel is closed
//   - Respect context cancellation
type Processor[In, Out any] interface {
	// Process transforms the input channel to an output channel.
	// It should close the output channel when processing is complete.
	Process(ctx context.Context, in <-chan In) <-chan Out

	// Name returns a descriptive name for the processor, useful for debugging.
	Name() string
}
