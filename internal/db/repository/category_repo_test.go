package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/triviahub/trivia-api/internal/question"
)

func TestCategoryRepositoryList(t *testing.T) {
	rows := &fakeRows{rows: [][]any{
		{1, "Science"},
		{2, "Art"},
	}}
	repo := NewCategoryRepository(&fakeDB{queryRows: rows})

	got, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Science", got[0].Type)
	assert.True(t, rows.closed)
}

func TestCategoryRepositoryListRowsError(t *testing.T) {
	rows := &fakeRows{rowsErr: errors.New("broken stream")}
	repo := NewCategoryRepository(&fakeDB{queryRows: rows})

	_, err := repo.List(context.Background())

	assert.Error(t, err)
}

func TestCategoryRepositoryGet(t *testing.T) {
	repo := NewCategoryRepository(&fakeDB{row: &fakeRow{values: []any{3, "Geography"}}})

	got, err := repo.Get(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, got.ID)
	assert.Equal(t, "Geography", got.Type)
}

func TestCategoryRepositoryGetNotFound(t *testing.T) {
	repo := NewCategoryRepository(&fakeDB{row: &fakeRow{err: pgx.ErrNoRows}})

	_, err := repo.Get(context.Background(), 42)

	assert.ErrorIs(t, err, question.ErrNotFound)
}
