package windowz

import (
	"slices"
	"testing"
)

func TestRing_EvictsOldest(t *testing.T) {
	r := newRing[int](3)

	for i := 1; i <= 5; i++ {
		r.push(i)
	}

	if !r.full() {
		t.Error("expected ring to be full")
	}
	if got := r.snapshot(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("expected [3 4 5], got %v", got)
	}
}

func TestRing_Partial(t *testing.T) {
	r := newRing[string](4)
	r.push("a")
	r.push("b")

	if r.full() {
		t.Error("expected ring not to be full")
	}
	if got := r.snapshot(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestRing_SnapshotIsCopy(t *testing.T) {
	r := newRing[int](2)
	r.push(1)
	r.push(2)

	snap := r.snapshot()
	snap[0] = 99

	if got := r.snapshot(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("expected ring unchanged, got %v", got)
	}
}

func TestRing_Reset(t *testing.T) {
	r := newRing[int](2)
	r.push(1)
	r.push(2)
	r.push(3)
	r.reset()

	if got := r.snapshot(); len(got) != 0 {
		t.Errorf("expected empty snapshot after reset, got %v", got)
	}

	r.push(4)
	if got := r.snapshot(); !slices.Equal(got, []int{4}) {
		t.Errorf("expected [4], got %v", got)
	}
}
