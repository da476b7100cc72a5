package windowz

import (
	"context"
	"iter"
)

// FromChan exposes a channel as a sequence. Ranging over the result receives
// from in until it is closed, ctx is cancelled, or the consumer stops.
//
// Example:
//
//	lines := make(chan string)
//	go readLines(conn, lines)
//
//	for w := range windowz.Windows(windowz.FromChan(ctx, lines), 2) {
//		compare(w[0], w[1])
//	}
func FromChan[T any](ctx context.Context, in <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-in:
				if !ok || !yield(item) {
					return
				}
			}
		}
	}
}
