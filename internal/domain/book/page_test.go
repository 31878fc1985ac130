package book

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest(t *testing.T) {
	req := NewPageRequest(2, 10, "", "")
	assert.Equal(t, "id", req.SortBy)
	assert.Equal(t, DirectionAsc, req.Direction)
	assert.Equal(t, 20, req.Offset())
	assert.False(t, req.Desc())

	assert.NoError(t, req.Validate(SortableFields))
	assert.NoError(t, NewPageRequest(0, 10, "title", "DESC").Validate(SortableFields))
	assert.True(t, NewPageRequest(0, 10, "title", "DESC").Desc())
	assert.ErrorIs(t, NewPageRequest(0, 10, "title", "sideways").Validate(SortableFields), ErrInvalidSort)
	assert.ErrorIs(t, NewPageRequest(0, MaxSize+1, "id", "").Validate(SortableFields), ErrInvalidPage)

	// 页码过大导致偏移量溢出
	assert.ErrorIs(t, NewPageRequest(math.MaxInt, 10, "id", "").Validate(SortableFields), ErrInvalidPage)
	assert.ErrorIs(t, NewPageRequest(math.MaxInt/10+1, 10, "id", "").Validate(SortableFields), ErrInvalidPage)
	edge := NewPageRequest(math.MaxInt/10, 10, "id", "")
	require.NoError(t, edge.Validate(SortableFields))
	assert.Positive(t, edge.Offset())

	col, err := NewPageRequest(0, 1, "title", "").SortColumn(SortableFields)
	require.NoError(t, err)
	assert.Equal(t, "title", col)
	_, err = NewPageRequest(0, 1, "authors", "").SortColumn(SortableFields)
	assert.ErrorIs(t, err, ErrInvalidSort)
}
