package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	t.Run("TestExactFit", func(t *testing.T) {
		assert.Equal(t, 2, TotalPages(12, 6))
	})

	t.Run("TestPartialLastPage", func(t *testing.T) {
		assert.Equal(t, 3, TotalPages(13, 6))
	})

	t.Run("TestZeroTotalStillOnePage", func(t *testing.T) {
		assert.Equal(t, 1, TotalPages(0, 6))
	})

	t.Run("TestSingleItem", func(t *testing.T) {
		assert.Equal(t, 1, TotalPages(1, 6))
	})

	t.Run("TestZeroLimit", func(t *testing.T) {
		assert.Equal(t, 1, TotalPages(100, 0))
	})
}

func TestGetSkip(t *testing.T) {
	p := PaginationParams{Page: 3, Limit: 6}
	assert.Equal(t, int64(12), p.GetSkip())

	p = PaginationParams{Page: 1, Limit: 6}
	assert.Equal(t, int64(0), p.GetSkip())
}

func TestNormalize(t *testing.T) {
	t.Run("TestNegativePage", func(t *testing.T) {
		p := PaginationParams{Page: -1, Limit: 10}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
	})

	t.Run("TestZeroLimitGetsDefault", func(t *testing.T) {
		p := PaginationParams{Page: 2, Limit: 0}
		p.Normalize()
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 6, p.Limit)
	})
}

// ไล่ครบทุกหน้าต้องได้ item ครบทุกตัว ไม่ซ้ำ ไม่หาย
func TestPagingCoversAllItems(t *testing.T) {
	for _, total := range []int64{0, 1, 5, 6, 7, 13, 30} {
		limit := 6
		pages := TotalPages(total, limit)

		seen := map[int64]bool{}
		for page := 1; page <= pages; page++ {
			p := PaginationParams{Page: page, Limit: limit}
			start := p.GetSkip()
			end := start + int64(limit)
			if end > total {
				end = total
			}
			for i := start; i < end; i++ {
				assert.False(t, seen[i], "item fetched twice")
				seen[i] = true
			}
		}
		assert.Len(t, seen, int(total))
	}
}

// ชุดว่างมีแค่หน้า 1 หน้า 2 ขึ้นไปถือว่าเกินขอบเขต
func TestPageBeyondEmptyListing(t *testing.T) {
	totalPages := TotalPages(0, 6)
	assert.Equal(t, 1, totalPages)
	assert.True(t, 2 > totalPages)
}

func TestDefaultPagination(t *testing.T) {
	p := DefaultPagination()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 6, p.Limit)
	assert.Equal(t, "date", p.SortBy)
	assert.Equal(t, "asc", p.Order)
}

func TestNewPaginatedResponse(t *testing.T) {
	t.Run("TestMiddlePage", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{"a"}, 13, PaginationParams{Page: 2, Limit: 6})
		assert.Equal(t, int64(13), resp.Total)
		assert.Equal(t, 3, resp.TotalPages)
		assert.True(t, resp.HasNext)
		assert.True(t, resp.HasPrevious)
	})

	t.Run("TestFirstPage", func(t *testing.T) {
		resp := NewPaginatedResponse(nil, 13, PaginationParams{Page: 1, Limit: 6})
		assert.True(t, resp.HasNext)
		assert.False(t, resp.HasPrevious)
	})

	t.Run("TestLastPage", func(t *testing.T) {
		resp := NewPaginatedResponse(nil, 13, PaginationParams{Page: 3, Limit: 6})
		assert.False(t, resp.HasNext)
		assert.True(t, resp.HasPrevious)
	})

	t.Run("TestEmptyResult", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{}, 0, PaginationParams{Page: 1, Limit: 6})
		assert.Equal(t, 1, resp.TotalPages)
		assert.False(t, resp.HasNext)
		assert.False(t, resp.HasPrevious)
	})
}
