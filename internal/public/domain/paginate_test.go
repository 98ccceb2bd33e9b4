package domain

import (
	"testing"

	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
)

func TestPaginatePageWindows(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	first := Paginate(items, 1, 9)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 9, len(first.Items))
	assert.Equal(t, 23, first.Total)

	last := Paginate(items, 3, 9)
	assert.Equal(t, 5, len(last.Items))
	assert.Equal(t, 3, last.Page)
}

func TestNextPageRefusesOutOfRange(t *testing.T) {
	assert.Equal(t, 1, NextPage(1, 4, 3))
	assert.Equal(t, 1, NextPage(1, 0, 3))
	assert.Equal(t, 2, NextPage(1, 2, 3))
	assert.Equal(t, 3, NextPage(3, -1, 3))
}

func TestPaginateOutOfRangeFallsBackToFirstPage(t *testing.T) {
	items := []string{"a", "b", "c"}
	page := Paginate(items, 7, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, len(page.Items))
}

func TestPageNumbersSmallTotals(t *testing.T) {
	assert.Assert(t, cmp.DeepEqual([]int{1}, PageNumbers(1, 1)))
	assert.Assert(t, cmp.DeepEqual([]int{1, 2, 3, 4, 5}, PageNumbers(5, 3)))
	assert.Assert(t, cmp.Len(PageNumbers(0, 1), 0))
}

func TestPageNumbersEllipsis(t *testing.T) {
	pages := PageNumbers(10, 5)
	assert.Assert(t, cmp.DeepEqual([]int{1, PageEllipsis, 4, 5, 6, PageEllipsis, 10}, pages))

	seen := map[int]bool{}
	for _, p := range pages {
		if p == PageEllipsis {
			continue
		}
		assert.Assert(t, !seen[p], "duplicate page number %d", p)
		seen[p] = true
	}
}

func TestPageNumbersEdges(t *testing.T) {
	assert.Assert(t, cmp.DeepEqual([]int{1, 2, PageEllipsis, 10}, PageNumbers(10, 1)))
	assert.Assert(t, cmp.DeepEqual([]int{1, PageEllipsis, 9, 10}, PageNumbers(10, 10)))
	assert.Assert(t, cmp.DeepEqual([]int{1, 2, 3, PageEllipsis, 10}, PageNumbers(10, 2)))
}
