package paging_test

import (
	"testing"

	"github.com/mbeller/hauskasse/pkg/paging"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_ClampsPage(t *testing.T) {
	t.Parallel()
	for _, page := range []int{-10, -1, 0} {
		n := paging.Request{Page: page, PageSize: 10}.Normalize()
		assert.Equal(t, 1, n.Page, "page %d should clamp to 1", page)
	}
	n := paging.Request{Page: 7, PageSize: 10}.Normalize()
	assert.Equal(t, 7, n.Page)
}

func TestNormalize_ClampsPageSize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, paging.DefaultPageSize, paging.Request{Page: 1}.Normalize().PageSize)
	assert.Equal(t, 1, paging.Request{Page: 1, PageSize: -5}.Normalize().PageSize)
	assert.Equal(t, paging.MaxPageSize, paging.Request{Page: 1, PageSize: 101}.Normalize().PageSize)
	assert.Equal(t, paging.MaxPageSize, paging.Request{Page: 1, PageSize: 100000}.Normalize().PageSize)
	assert.Equal(t, 100, paging.Request{Page: 1, PageSize: 100}.Normalize().PageSize)
}

func TestSkip_NeverNegative(t *testing.T) {
	t.Parallel()
	for page := -3; page <= 5; page++ {
		for _, size := range []int{-1, 0, 1, 20, 100, 500} {
			r := paging.Request{Page: page, PageSize: size}
			assert.GreaterOrEqual(t, r.Skip(), 0, "page=%d size=%d", page, size)
		}
	}
	assert.Equal(t, 40, paging.Request{Page: 3, PageSize: 20}.Skip())
}

func TestNew_Envelope(t *testing.T) {
	t.Parallel()
	p := paging.New([]string{"a", "b"}, 45, paging.Request{Page: 2, PageSize: 20})

	assert.Equal(t, int64(45), p.TotalCount)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrevious)
	assert.True(t, p.HasNext)
}

func TestNew_TotalPagesIsCeiling(t *testing.T) {
	t.Parallel()
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{199, 100, 2},
		{200, 100, 2},
	}
	for _, tt := range tests {
		p := paging.New([]int{}, tt.total, paging.Request{Page: 1, PageSize: tt.size})
		assert.Equal(t, tt.want, p.TotalPages, "total=%d size=%d", tt.total, tt.size)
	}
}

func TestNew_ZeroPageSizeDoesNotPanic(t *testing.T) {
	t.Parallel()
	p := paging.New([]int{1}, 5, paging.Request{Page: 1, PageSize: 0})
	assert.Equal(t, paging.DefaultPageSize, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)
}

func TestNew_HasNextHasPrevious(t *testing.T) {
	t.Parallel()
	first := paging.New([]int{}, 50, paging.Request{Page: 1, PageSize: 10})
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)

	last := paging.New([]int{}, 50, paging.Request{Page: 5, PageSize: 10})
	assert.True(t, last.HasPrevious)
	assert.False(t, last.HasNext)

	only := paging.New([]int{}, 5, paging.Request{Page: 1, PageSize: 10})
	assert.False(t, only.HasPrevious)
	assert.False(t, only.HasNext)
}

func TestNew_NilItemsBecomeEmptySlice(t *testing.T) {
	t.Parallel()
	p := paging.New[int](nil, 0, paging.Request{})
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

func TestMap_KeepsEnvelope(t *testing.T) {
	t.Parallel()
	src := paging.New([]int{1, 2, 3}, 3, paging.Request{Page: 1, PageSize: 10})
	dst := paging.Map(src, func(i int) int { return i * 2 })

	assert.Equal(t, []int{2, 4, 6}, dst.Items)
	assert.Equal(t, src.TotalCount, dst.TotalCount)
	assert.Equal(t, src.TotalPages, dst.TotalPages)
	assert.Equal(t, src.CurrentPage, dst.CurrentPage)
}
