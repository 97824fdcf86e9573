package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTodoRepo(t *testing.T) (TodoRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewTodoRepository(db, logger.Nop()), mock
}

func TestTodoRepository_Create(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectQuery("INSERT INTO todos \\(id,owner_id,text,completed,completed_at\\)").
		WithArgs(recID, ownerID, "walk", false, nil).
		WillReturnRows(sqlmock.NewRows(todoColumns).AddRow(recID, ownerID, "walk", false, nil))

	created, err := repo.Create(context.Background(), models.Todo{ID: recID, OwnerID: ownerID, Text: "walk"})
	require.NoError(t, err)
	assert.Equal(t, "walk", created.Text)
	assert.Nil(t, created.CompletedAt)
}

func TestTodoRepository_FindByOwner(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectQuery("SELECT id, owner_id, text, completed, completed_at FROM todos WHERE owner_id = \\$1 ORDER BY id").
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(recID, ownerID, "a", true, int64(5)).
			AddRow(otherID, ownerID, "b", false, nil))

	list, err := repo.FindByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].CompletedAt)
	assert.Equal(t, int64(5), *list[0].CompletedAt)
}

func TestTodoRepository_FindOwned_ForeignOwner(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectQuery("FROM todos WHERE id = \\$1 AND owner_id = \\$2").
		WithArgs(recID, otherID).
		WillReturnRows(sqlmock.NewRows(todoColumns))

	_, err := repo.FindOwned(context.Background(), recID, otherID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoRepository_UpdateOwned(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	ts := int64(1700000000000)
	mock.ExpectQuery("UPDATE todos SET completed = \\$1, completed_at = \\$2 WHERE id = \\$3 AND owner_id = \\$4").
		WithArgs(true, ts, recID, ownerID).
		WillReturnRows(sqlmock.NewRows(todoColumns).AddRow(recID, ownerID, "a", true, ts))

	updated, err := repo.UpdateOwned(context.Background(), recID, ownerID, models.TodoChanges{Completed: ptr(true), CompletedAt: &ts})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, ts, *updated.CompletedAt)
}

func TestTodoRepository_DeleteOwned_NotFound(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectQuery("DELETE FROM todos").
		WithArgs(recID, otherID).
		WillReturnRows(sqlmock.NewRows(todoColumns))

	_, err := repo.DeleteOwned(context.Background(), recID, otherID)
	assert.ErrorIs(t, err, ErrNotFound)
}
