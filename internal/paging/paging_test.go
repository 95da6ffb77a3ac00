package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestThirteenItemsPageSizeSix(t *testing.T) {
	p := New(seq(13), 6)
	require.Equal(t, 3, p.TotalPages())

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, p.Items())
	require.True(t, p.GoToPage(2))
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12}, p.Items())
	require.True(t, p.GoToPage(3))
	assert.Equal(t, []int{13}, p.Items())

	assert.False(t, p.GoToPage(4))
	assert.Equal(t, 3, p.Page())
	assert.False(t, p.GoToPage(0))
	assert.Equal(t, 3, p.Page())
	assert.False(t, p.GoToPage(-1))
	assert.Equal(t, 3, p.Page())
}

func TestEmptySequence(t *testing.T) {
	p := New([]string{}, 6)
	assert.Equal(t, 0, p.TotalPages())
	assert.Equal(t, 1, p.Page())
	assert.Empty(t, p.Items())
	assert.Nil(t, p.PageNumbers())
	assert.False(t, p.GoToPage(1))
	assert.False(t, p.HasNext())
	assert.False(t, p.HasPrev())
}

func TestDefaultPageSize(t *testing.T) {
	p := New(seq(7), 0)
	assert.Equal(t, DefaultPageSize, p.PageSize())
	assert.Equal(t, 2, p.TotalPages())
}

func TestNextPrev(t *testing.T) {
	p := New(seq(13), 6)
	assert.False(t, p.Prev())
	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.False(t, p.Next())
	assert.Equal(t, 3, p.Page())
	assert.True(t, p.HasPrev())
	assert.True(t, p.Prev())
	assert.Equal(t, 2, p.Page())
}

func TestResetReturnsToFirstPage(t *testing.T) {
	p := New(seq(13), 6)
	require.True(t, p.GoToPage(3))
	p.Reset(seq(4))
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, []int{1, 2, 3, 4}, p.Items())
	assert.Equal(t, 1, p.TotalPages())
}

func TestWindowClamps(t *testing.T) {
	items := seq(5)
	assert.Equal(t, []int{5}, Window(items, 3, 2))
	assert.Empty(t, Window(items, 4, 2))
	assert.Empty(t, Window(items, 0, 2))
	assert.Empty(t, Window(items, 1, 0))
}

func TestWindowDoesNotAliasTail(t *testing.T) {
	items := seq(6)
	w := Window(items, 1, 3)
	w = append(w, 99)
	assert.Equal(t, 4, items[3])
	assert.Len(t, w, 4)
}

func TestTotalPages(t *testing.T) {
	tests := []struct{ n, size, want int }{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TotalPages(tc.n, tc.size), "n=%d size=%d", tc.n, tc.size)
	}
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"few pages", 2, 3, []int{1, 2, 3}},
		{"exactly five", 5, 5, []int{1, 2, 3, 4, 5}},
		{"start clamps at one", 1, 10, []int{1, 2, 3, 4, 5}},
		{"near start", 3, 10, []int{1, 2, 3, 4, 5}},
		{"centered", 4, 10, []int{2, 3, 4, 5, 6}},
		{"middle", 6, 10, []int{4, 5, 6, 7, 8}},
		{"near end", 9, 10, []int{6, 7, 8, 9, 10}},
		{"end clamps at total", 10, 10, []int{6, 7, 8, 9, 10}},
		{"six pages last", 6, 6, []int{2, 3, 4, 5, 6}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PageNumbers(tc.current, tc.total))
		})
	}
}
