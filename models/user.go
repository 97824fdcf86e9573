package models

import "time"

// AccessAuth is the only token purpose currently issued by the API.
const AccessAuth = "auth"

// User represents an account entity used for authentication and ownership
// of listings and tasks.
//
// Sensitive fields never leave the server: PasswordHash and Tokens are
// excluded from JSON, so the public representation is just id and email.
type User struct {
	// ID is the server-generated identifier (UUID string).
	ID string `json:"_id"`

	// Email is stored trimmed and lower-cased; it is unique across users.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// Tokens holds the user's currently active bearer tokens. It is only
	// populated by lookups that need it.
	Tokens []UserToken `json:"-"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserToken is a single entry of a user's token collection.
type UserToken struct {
	UserID string `json:"-"`

	// Access is the purpose tag of the token, see AccessAuth.
	Access string `json:"access"`

	// Token is the signed bearer credential.
	Token string `json:"token"`

	// ExpiresAt is nil for tokens without a lifetime.
	ExpiresAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the UserToken model.
func (t UserToken) TableName() string {
	return "user_tokens"
}

// Credentials is the body accepted by signup and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
