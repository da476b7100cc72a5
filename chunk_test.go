package windowz

import (
	"slices"
	"testing"

	testinghelpers "github.com/zoobzio/windowz/testing"
)

func TestChunks(t *testing.T) {
	chunks := testinghelpers.CollectWindows(Chunks(slices.Values([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}), 3))

	if len(chunks) != 4 {
		t.Errorf("expected 4 chunks, got %d", len(chunks))
	}

	expectedSizes := []int{3, 3, 3, 1}
	for i, chunk := range chunks {
		if len(chunk) != expectedSizes[i] {
			t.Errorf("expected chunk %d to have size %d, got %d", i, expectedSizes[i], len(chunk))
		}
	}

	if chunks[3][0] != 9 {
		t.Errorf("expected last chunk to contain 9, got %d", chunks[3][0])
	}
}

func TestChunksExact(t *testing.T) {
	chunks := testinghelpers.CollectWindows(Chunks(slices.Values([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}), 5))

	testinghelpers.AssertWindows(t, chunks, [][]int{{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}})
}

func TestChunksEmpty(t *testing.T) {
	if n := Count(Chunks(slices.Values([]int{}), 2)); n != 0 {
		t.Errorf("expected no chunks, got %d", n)
	}
}

func TestChunksInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for size 0")
		}
	}()
	Chunks(slices.Values([]int{1}), 0)
}
