package windowz

import (
	"context"
)

// SlidingWindow emits count-based overlapping windows over a channel.
// It produces exactly the windows Windows would for the same elements,
// so code written against sequences can be moved onto channels unchanged.
type SlidingWindow[T any] struct {
	name string
	size int
}

// NewSlidingWindow creates a processor that groups items into overlapping
// windows of size items, advancing by one item per window.
//
// When to use:
//   - Elements arrive from a goroutine, socket reader or other producer
//   - Rolling calculations that must start before the input is complete
//
// Example:
//
//	// Rolling triplets over readings from a sensor goroutine
//	window := windowz.NewSlidingWindow[int](3)
//
//	for w := range window.Process(ctx, readings) {
//		fmt.Println(w[0] + w[1] + w[2])
//	}
//
// Parameters:
//   - size: Number of items per window (must be > 0, panics otherwise)
//
// Returns a new SlidingWindow processor.
func NewSlidingWindow[T any](size int) *SlidingWindow[T] {
	mustSize("window", size)

	return &SlidingWindow[T]{
		size: size,
		name: "sliding-window",
	}
}

// WithName sets a custom name for this processor.
func (w *SlidingWindow[T]) WithName(name string) *SlidingWindow[T] {
	w.name = name
	return w
}

// Process emits a window for every item received once size items have
// arrived. The output closes when in closes or ctx is cancelled.
func (w *SlidingWindow[T]) Process(ctx context.Context, in <-chan T) <-chan []T {
	out := make(chan []T)

	go func() {
		defer close(out)

		buf := newRing[T](w.size)

		for {
			select {
			case <-ctx.Done():
				return

			case item, ok := <-in:
				if !ok {
					return
				}

				buf.push(item)
				if !buf.full() {
					continue
				}

				select {
				case out <- buf.snapshot():
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Name returns the processor name.
func (w *SlidingWindow[T]) Name() string {
	return w.name
}
