// Package store implements persistence for users, their tokens, listings and
// tasks on top of database/sql.
//
// Two dialects are supported and selected by the DSN scheme: PostgreSQL via
// the pgx stdlib driver and SQLite via go-sqlite3. Queries are built with
// squirrel using the dialect's placeholder format, and every mutation of an
// owned record is a single statement filtered by both id and owner so the
// ownership check and the write cannot be separated.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-realty-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given (normalised) email or ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByToken returns the user with id userID only if token is in that
	// user's token collection. The returned user carries the matched token.
	FindUserByToken(ctx context.Context, userID, token string) (models.User, error)
}

// TokenRepository manages the per-user token collection.
type TokenRepository interface {
	// AddToken appends a token to the owner's collection.
	AddToken(ctx context.Context, token models.UserToken) error

	// RemoveToken deletes token from the owner's collection. Removing a token
	// that is not present is not an error.
	RemoveToken(ctx context.Context, userID, token string) error

	// DeleteExpiredTokens deletes tokens whose expiry is before now and
	// reports how many were removed.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// PropertyRepository persists listings.
type PropertyRepository interface {
	Create(ctx context.Context, property models.Property) (models.Property, error)
	FindAll(ctx context.Context) ([]models.Property, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
	FindByID(ctx context.Context, id string) (models.Property, error)

	// FindOwned returns the listing only if it belongs to ownerID.
	FindOwned(ctx context.Context, id, ownerID string) (models.Property, error)

	// UpdateOwned applies changes to the listing matching both id and ownerID
	// and returns the updated record, or ErrNotFound when nothing matched.
	UpdateOwned(ctx context.Context, id, ownerID string, changes models.PropertyChanges) (models.Property, error)

	// DeleteOwned removes the listing matching both id and ownerID and
	// returns the removed record, or ErrNotFound when nothing matched.
	DeleteOwned(ctx context.Context, id, ownerID string) (models.Property, error)
}

// TodoRepository persists tasks. Every lookup is scoped to the owner.
type TodoRepository interface {
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Todo, error)
	FindOwned(ctx context.Context, id, ownerID string) (models.Todo, error)
	UpdateOwned(ctx context.Context, id, ownerID string, changes models.TodoChanges) (models.Todo, error)
	DeleteOwned(ctx context.Context, id, ownerID string) (models.Todo, error)
}
