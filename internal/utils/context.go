// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-realty-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthCtxKey is the key used to store the authenticated identity in the context.
var AuthCtxKey = contextKey("auth")

// Auth is the identity attached to a request by the authentication middleware:
// the resolved user and the exact token the request presented.
type Auth struct {
	User  models.User
	Token string
}

// WithAuth returns a copy of ctx carrying the given user and token.
func WithAuth(ctx context.Context, user models.User, token string) context.Context {
	return context.WithValue(ctx, AuthCtxKey, Auth{User: user, Token: token})
}

// GetAuthFromContext retrieves the identity stored by WithAuth.
//
// Returns ok == false if the value is missing or has an unexpected type.
//
// Example usage:
//
//	auth, ok := utils.GetAuthFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetAuthFromContext(ctx context.Context) (Auth, bool) {
	auth, ok := ctx.Value(AuthCtxKey).(Auth)
	return auth, ok
}
