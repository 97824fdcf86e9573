// Package service implements the business rules of the API: credential and
// token management, the listing service and the task service.
//
// Services receive the authenticated user explicitly; every mutation of an
// owned record is delegated to an ownership-scoped repository call, so a
// record that exists but belongs to someone else is indistinguishable from a
// missing one and both are reported as [ErrNotFound].
package service

import (
	"context"

	"github.com/MKhiriev/go-realty-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages accounts and their bearer tokens.
type AuthService interface {
	// Register creates an account and issues its first token.
	Register(ctx context.Context, creds models.Credentials) (models.User, string, error)

	// Login verifies credentials and issues a new token. Every failure is
	// reported as ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, string, error)

	// IssueToken signs a token for user and appends it to the user's token collection.
	IssueToken(ctx context.Context, user models.User) (string, error)

	// ValidateToken resolves the owner of token. Every failure is reported as
	// ErrUnauthenticated.
	ValidateToken(ctx context.Context, token string) (models.User, error)

	// RevokeToken removes token from the user's collection. Revoking a token
	// that is already gone succeeds.
	RevokeToken(ctx context.Context, userID, token string) error
}

// PropertyService manages listings. Reads are public; mutations are owner-only.
type PropertyService interface {
	Create(ctx context.Context, owner models.User, property models.PropertyCreate) (models.Property, error)
	ListAll(ctx context.Context) ([]models.Property, error)
	ListMine(ctx context.Context, owner models.User) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (models.Property, error)
	Update(ctx context.Context, owner models.User, id string, update models.PropertyUpdate) (models.Property, error)
	Remove(ctx context.Context, owner models.User, id string) (models.Property, error)
}

// TodoService manages tasks. Every operation is scoped to the owner.
type TodoService interface {
	Create(ctx context.Context, owner models.User, todo models.TodoCreate) (models.Todo, error)
	ListMine(ctx context.Context, owner models.User) ([]models.Todo, error)
	GetByID(ctx context.Context, owner models.User, id string) (models.Todo, error)
	Update(ctx context.Context, owner models.User, id string, update models.TodoUpdate) (models.Todo, error)
	Remove(ctx context.Context, owner models.User, id string) (models.Todo, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
