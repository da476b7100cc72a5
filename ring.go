package windowz

// ring is a fixed-capacity circular buffer holding the most recent elements
// pulled from a source. Pushing into a full ring evicts the oldest element.
type ring[T any] struct {
	items []T
	head  int
	count int
}

func newRing[T any](size int) *ring[T] {
	return &ring[T]{items: make([]T, size)}
}

// push appends item, evicting the oldest element when the ring is full.
func (r *ring[T]) push(item T) {
	size := len(r.items)
	if r.count < size {
		r.items[(r.head+r.count)%size] = item
		r.count++
		return
	}

	r.items[r.head] = item
	r.head = (r.head + 1) % size
}

func (r *ring[T]) full() bool {
	return r.count == len(r.items)
}

// snapshot copies the buffered elements, oldest first, into a new slice.
func (r *ring[T]) snapshot() []T {
	out := make([]T, r.count)
	n := copy(out, r.items[r.head:min(r.head+r.count, len(r.items))])
	copy(out[n:], r.items[:r.count-n])
	return out
}

// reset drops all buffered elements so they can be collected.
func (r *ring[T]) reset() {
	clear(r.items)
	r.head, r.count = 0, 0
}
