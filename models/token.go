package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with the claims used for authentication.
//
// It embeds [jwt.RegisteredClaims] so issuer and expiry checks are handled by
// the jwt parser, and adds the API specific claims: the owner id and the
// access purpose tag.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// UserID is the owner of the token, encoded in the "_id" claim.
	UserID string `json:"_id"`

	// Access is the purpose tag, encoded in the "access" claim.
	Access string `json:"access"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
