package mmheap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intLess(a, b int) bool { return a < b }

func TestEmptyPeekPanics(t *testing.T) {
	h := New(intLess)
	assert.Panics(t, func() { h.PeekMin() })
	assert.Panics(t, func() { h.PeekMax() })
	assert.Panics(t, func() { h.ExtractMin() })
	assert.Panics(t, func() { h.ExtractMax() })
}

func TestSingleElement(t *testing.T) {
	h := New(intLess)
	h.Insert(42)
	assert.Equal(t, 42, h.PeekMin())
	assert.Equal(t, 42, h.PeekMax())
	assert.Equal(t, 1, h.Len())
}

// TestInsertThenExtractSorted mirrors S1: inserting a scrambled sequence
// and repeatedly extracting the min must yield sorted order.
func TestInsertThenExtractSorted(t *testing.T) {
	values := []int{5, 1, 9, 3, 7, 2, 8, 0, 6, 4, 10, -3, 42, 17, -1}
	h := New(intLess)
	for _, v := range values {
		h.Insert(v)
	}

	sorted := append([]int(nil), values...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	var got []int
	for !h.IsEmpty() {
		got = append(got, h.ExtractMin())
	}
	assert.Equal(t, sorted, got)
}

// TestExtractMaxDescending mirrors S2: the double-ended view should agree
// with extracting from the opposite end.
func TestExtractMaxDescending(t *testing.T) {
	values := []int{5, 1, 9, 3, 7, 2, 8, 0, 6, 4}
	h := New(intLess)
	for _, v := range values {
		h.Insert(v)
	}

	var got []int
	for !h.IsEmpty() {
		got = append(got, h.ExtractMax())
	}
	want := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	assert.Equal(t, want, got)
}

func TestPeekMinMaxTrackRunningExtremes(t *testing.T) {
	h := New(intLess)
	values := []int{5, -2, 17, 3, -9, 8, 0}
	min, max := values[0], values[0]
	for _, v := range values {
		h.Insert(v)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		assert.Equal(t, min, h.PeekMin())
		assert.Equal(t, max, h.PeekMax())
	}
}

func TestFromBuildMatchesSequentialInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, 500)
	for i := range values {
		values[i] = rng.Intn(10000) - 5000
	}

	built := From(values, intLess)

	inserted := New(intLess)
	for _, v := range values {
		inserted.Insert(v)
	}

	assert.Equal(t, inserted.Len(), built.Len())
	for !built.IsEmpty() {
		assert.Equal(t, inserted.ExtractMin(), built.ExtractMin())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	h := New(intLess)
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		h.Insert(v)
	}
	clone := h.Clone()

	h.ExtractMin()
	assert.NotEqual(t, h.Len(), clone.Len())

	var cloneVals []int
	for !clone.IsEmpty() {
		cloneVals = append(cloneVals, clone.ExtractMin())
	}
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 6, 9}, cloneVals)
}

func TestStressRandomInsertExtract(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := New(intLess)
	n := 2000

	values := make([]int, n)
	for i := range values {
		v := rng.Intn(100000)
		values[i] = v
		h.Insert(v)
		assert.Equal(t, i+1, h.Len())
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	assert.Equal(t, min, h.PeekMin())
	assert.Equal(t, max, h.PeekMax())

	prev := h.ExtractMin()
	for h.Len() > 0 {
		cur := h.ExtractMin()
		assert.LessOrEqual(t, prev, cur)
		prev = cur
	}
}

func TestInterleavedMinMaxExtraction(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	h := New(intLess)
	n := 300
	for i := 0; i < n; i++ {
		h.Insert(rng.Intn(1000))
	}

	var lows, highs []int
	for h.Len() > 1 {
		lows = append(lows, h.ExtractMin())
		highs = append(highs, h.ExtractMax())
	}
	if h.Len() == 1 {
		lows = append(lows, h.ExtractMin())
	}

	for i := 1; i < len(lows); i++ {
		assert.LessOrEqual(t, lows[i-1], lows[i])
	}
	for i := 1; i < len(highs); i++ {
		assert.GreaterOrEqual(t, highs[i-1], highs[i])
	}
}

func BenchmarkInsert(b *testing.B) {
	h := New(intLess)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h.Insert(i)
	}
}

func BenchmarkExtractMin(b *testing.B) {
	h := New(intLess)
	for i := 0; i < b.N; i++ {
		h.Insert(i)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h.ExtractMin()
	}
}
