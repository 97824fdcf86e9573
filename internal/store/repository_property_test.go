package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPropertyRepo(t *testing.T) (PropertyRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewPropertyRepository(db, logger.Nop()), mock
}

func propertyRows() *sqlmock.Rows {
	return sqlmock.NewRows(propertyColumns)
}

func addPropertyRow(rows *sqlmock.Rows, id, owner string) *sqlmock.Rows {
	return rows.AddRow(id, owner, "Loft", "1 Main St", 1.0, 2.0, 100.0, 2.0, 1.0, 500.0, nil, 10.0, "", true, false, true, int64(1700000000000))
}

func TestPropertyRepository_Create(t *testing.T) {
	repo, mock := newTestPropertyRepo(t)

	p := models.Property{ID: recID, OwnerID: ownerID, Title: "Loft", Address: "1 Main St", Available: true}
	mock.ExpectQuery("INSERT INTO properties .* RETURNING id, owner_id").
		WillReturnRows(addPropertyRow(propertyRows(), recID, ownerID))

	created, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, recID, created.ID)
	assert.Nil(t, created.Built)
	require.NotNil(t, created.Lot)
	assert.Equal(t, 10.0, *created.Lot)
	assert.True(t, created.ForSale)
}

func TestPropertyRepository_FindAll(t *testing.T) {
	repo, mock := newTestPropertyRepo(t)

	rows := addPropertyRow(addPropertyRow(propertyRows(), recID, ownerID), otherID, otherID)
	mock.ExpectQuery("SELECT .* FROM properties ORDER BY posted_on, id").WillReturnRows(rows)

	list, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPropertyRepository_FindAll_Empty(t *testing.T) {
	repo, mock := newTestPropertyRepo(t)

	mock.ExpectQuery("FROM properties").WillReturnRows(propertyRows())

	list, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPropertyRepository_FindAll_QueryError(t *testing.T) {
	repo, mock := newTestPropertyRepo(t)

	mock.ExpectQuery("FROM properties").WillReturnError(errors.New("boom"))

	_, err := repo.FindAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPropertyRepository_FindByOwner(t *testing.T) {
	repo, mock := newTestPropertyRepo(t)

	mock.ExpectQuery("FROM properties WHERE owner_id = \\$1").
		WithArgs(ownerID).
		WillReturnRows(addPropertyRow(propertyRows(), recID, ownerID))

	list, err := repo.FindByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ownerID, list[0].OwnerID)
}

func TestPropertyRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newTestPropertyRepo(t)

	mock.ExpectQuery("FROM properties WHERE id = \\$1").
		WithArgs(recID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), recID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPropertyRepository_UpdateOwned(t *testing.T) {
	t.Run("owner match", func(t *testing.T) {
		repo, mock := newTestPropertyRepo(t)
		mock.ExpectQuery("UPDATE properties SET title = \\$1 WHERE id = \\$2 AND owner_id = \\$3 RETURNING").
			WithArgs("New", recID, ownerID).
			WillReturnRows(addPropertyRow(propertyRows(), recID, ownerID))

		_, err := repo.UpdateOwned(context.Background(), recID, ownerID, models.PropertyChanges{
			PropertyUpdate: models.PropertyUpdate{Title: ptr("New")},
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign owner matches nothing", func(t *testing.T) {
		repo, mock := newTestPropertyRepo(t)
		mock.ExpectQuery("UPDATE properties").
			WithArgs("New", recID, otherID).
			WillReturnRows(propertyRows())

		_, err := repo.UpdateOwned(context.Background(), recID, otherID, models.PropertyChanges{
			PropertyUpdate: models.PropertyUpdate{Title: ptr("New")},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no changes", func(t *testing.T) {
		repo, _ := newTestPropertyRepo(t)
		_, err := repo.UpdateOwned(context.Background(), recID, ownerID, models.PropertyChanges{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})
}

func TestPropertyRepository_DeleteOwned(t *testing.T) {
	repo, mock := newTestPropertyRepo(t)

	mock.ExpectQuery("DELETE FROM properties WHERE id = \\$1 AND owner_id = \\$2 RETURNING").
		WithArgs(recID, otherID).
		WillReturnRows(propertyRows())
	mock.ExpectQuery("DELETE FROM properties").
		WithArgs(recID, ownerID).
		WillReturnRows(addPropertyRow(propertyRows(), recID, ownerID))

	_, err := repo.DeleteOwned(context.Background(), recID, otherID)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := repo.DeleteOwned(context.Background(), recID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, recID, removed.ID)
}
