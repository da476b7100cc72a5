package windowz

import (
	"slices"
	"testing"
)

func TestPairwise(t *testing.T) {
	var got [][2]int
	for prev, cur := range Pairwise(slices.Values([]int{1, 2, 3})) {
		got = append(got, [2]int{prev, cur})
	}

	want := [][2]int{{1, 2}, {2, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPairwise_MatchesWindows(t *testing.T) {
	depths := []int{199, 200, 208, 210, 200, 207, 240, 269, 260, 263}

	pairs := 0
	for prev, cur := range Pairwise(slices.Values(depths)) {
		if cur > prev {
			pairs++
		}
	}

	windows := Count(Filter(Windows(slices.Values(depths), 2), func(w []int) bool {
		return w[1] > w[0]
	}))

	if pairs != 7 || windows != 7 {
		t.Errorf("expected 7 increases from both, got pairwise=%d windows=%d", pairs, windows)
	}
}

func TestPairwise_Short(t *testing.T) {
	for range Pairwise(slices.Values([]int{1})) {
		t.Error("expected no pairs from a single element")
	}
}
