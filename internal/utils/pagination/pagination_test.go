package pagination_test

import (
	"testing"

	"github.com/bizbooks/bookkeeping_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	page, limit := pagination.Clamp(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, pagination.DefaultLimit, limit)

	page, limit = pagination.Clamp(-3, 5000)
	assert.Equal(t, 1, page)
	assert.Equal(t, pagination.MaxLimit, limit)

	page, limit = pagination.Clamp(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Offset(1, 10))
	assert.Equal(t, 30, pagination.Offset(4, 10))
}

func TestNewPage(t *testing.T) {
	p := pagination.NewPage(2, 10, 35)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 4, p.TotalPages)
	assert.Equal(t, int64(35), p.TotalRecords)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := pagination.NewPage(1, 10, 10)
	assert.Equal(t, 1, first.TotalPages)
	assert.False(t, first.HasNext)
	assert.False(t, first.HasPrev)

	empty := pagination.NewPage(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
