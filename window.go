package windowz

import (
	"fmt"
	"iter"
	"runtime"
)

// Windows adapts a sequence into overlapping windows of a fixed size that
// advance by one element per step. Each window holds the last size elements
// read from seq, oldest first. Only full windows are produced: a source with
// fewer than size elements yields nothing, and a source with exactly size
// elements yields one window.
//
// The returned sequence is lazy. Nothing is read from seq until it is ranged
// over, and reading stops as soon as the consumer stops. Every window is a
// fresh slice the caller may keep or modify.
//
// When to use:
//   - Moving sums, averages or other rolling statistics over a series
//   - Comparing each element with its neighbours
//   - Pattern detection across consecutive elements
//   - Building windows of windows by feeding the result back in
//
// Example:
//
//	// Rolling sums of three readings
//	sums := windowz.Map(windowz.Windows(readings, 3), func(w []int) int {
//		return w[0] + w[1] + w[2]
//	})
//
//	// Pairs of consecutive rolling sums
//	for pair := range windowz.Windows(sums, 2) {
//		if pair[1] > pair[0] {
//			increases++
//		}
//	}
//
// Parameters:
//   - seq: Source sequence, consumed at most once
//   - size: Number of elements per window (must be > 0, panics otherwise)
//
// Returns a sequence of windows.
func Windows[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	mustSize("window", size)

	return func(yield func([]T) bool) {
		buf := newRing[T](size)

		for item := range seq {
			buf.push(item)
			if !buf.full() {
				continue
			}
			if !yield(buf.snapshot()) {
				return
			}
		}
	}
}

// WindowIter is the pull-style form of Windows. Each call to Next reads
// exactly as many source elements as the next window needs: size on the first
// call, one on every call after that. Exhaustion is terminal.
//
// A WindowIter is not safe for concurrent use.
type WindowIter[T any] struct {
	seq  iter.Seq[T]
	pull *puller[T]
	buf  *ring[T]
	name string
	size int
	done bool
}

// NewWindowIter creates a pull iterator over the windows of seq.
// Construction does not read from seq.
//
// The first Next starts a coroutine over seq. Call Stop, or read until Next
// returns false, to release it promptly. An iterator dropped without either
// is released by the garbage collector.
//
// When to use:
//   - Stepping through windows one at a time from a state machine
//   - Interleaving window reads with reads from another source
//   - Abandoning iteration early and releasing the source explicitly
//
// Example:
//
//	it := windowz.NewWindowIter(slices.Values(samples), 4)
//	defer it.Stop()
//
//	for {
//		w, ok := it.Next()
//		if !ok {
//			break
//		}
//		process(w)
//	}
//
// Parameters:
//   - seq: Source sequence, consumed at most once
//   - size: Number of elements per window (must be > 0, panics otherwise)
//
// Returns a new WindowIter.
func NewWindowIter[T any](seq iter.Seq[T], size int) *WindowIter[T] {
	mustSize("window", size)

	return &WindowIter[T]{
		seq:  seq,
		buf:  newRing[T](size),
		size: size,
		name: "window-iter",
	}
}

// Next returns the next window and true, or nil and false once the source is
// exhausted. After the first false every later call returns false without
// touching the source.
func (w *WindowIter[T]) Next() ([]T, bool) {
	if w.done {
		return nil, false
	}

	if w.pull == nil {
		w.pull = startPull(w.seq)
		for w.buf.count < w.size-1 {
			item, ok := w.pull.next()
			if !ok {
				w.finish()
				return nil, false
			}
			w.buf.push(item)
		}
	}

	item, ok := w.pull.next()
	if !ok {
		w.finish()
		return nil, false
	}
	w.buf.push(item)

	return w.buf.snapshot(), true
}

// All returns the remaining windows as a sequence. Breaking out of a range
// over it leaves the iterator usable; call Stop to release the source.
func (w *WindowIter[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			win, ok := w.Next()
			if !ok || !yield(win) {
				return
			}
		}
	}
}

// Stop releases the source and marks the iterator exhausted.
// It is safe to call Stop more than once.
func (w *WindowIter[T]) Stop() {
	w.finish()
}

// Size returns the number of elements in each window.
func (w *WindowIter[T]) Size() int {
	return w.size
}

// WithName sets a custom name for this iterator.
func (w *WindowIter[T]) WithName(name string) *WindowIter[T] {
	w.name = name
	return w
}

// Name returns the iterator's name, "window-iter" unless set with WithName.
func (w *WindowIter[T]) Name() string {
	return w.name
}

func (w *WindowIter[T]) finish() {
	if w.done {
		return
	}
	w.done = true
	if w.pull != nil {
		w.pull.release()
	}
	w.buf.reset()
	w.seq, w.pull = nil, nil
}

// puller owns the coroutine behind a WindowIter. It is kept apart from the
// iterator so its finalizer runs once the iterator is unreachable, without
// the coroutine holding a reference back to it.
type puller[T any] struct {
	next func() (T, bool)
	stop func()
}

func startPull[T any](seq iter.Seq[T]) *puller[T] {
	next, stop := iter.Pull(seq)
	p := &puller[T]{next: next, stop: stop}
	runtime.SetFinalizer(p, func(p *puller[T]) { p.stop() })
	return p
}

// release stops the coroutine now and cancels the finalizer.
func (p *puller[T]) release() {
	runtime.SetFinalizer(p, nil)
	p.stop()
}

func mustSize(kind string, size int) {
	if size < 1 {
		panic(fmt.Sprintf("windowz: %s size must be at least 1, got %d", kind, size))
	}
}
