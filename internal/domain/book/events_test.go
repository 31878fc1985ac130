package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	b := &Book{ID: 3, Title: "Foo", Authors: []Author{{ID: 1}, {ID: 4}}}

	created := NewEvent(EventCreated, b)
	assert.Equal(t, EventCreated, created.Type)
	assert.Equal(t, uint(3), created.BookID)
	assert.Equal(t, "Foo", created.Title)
	assert.Equal(t, []uint{1, 4}, created.AuthorIDs)
	assert.False(t, created.OccurredAt.IsZero())

	deleted := NewEvent(EventDeleted, &Book{ID: 3})
	assert.Equal(t, uint(3), deleted.BookID)
	assert.Empty(t, deleted.Title)
	assert.Nil(t, deleted.AuthorIDs)
}
