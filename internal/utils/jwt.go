package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-realty-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header")
)

// GenerateAuthToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token carries the "_id" and "access" claims. Issuer (iss) is set when
// issuer is non-empty and an expiration (exp) is set only when tokenDuration
// is positive, so a zero duration yields a token that never expires on its
// own and is only invalidated by revocation.
//
// Example usage:
//
//	token, err := utils.GenerateAuthToken(user.ID, models.AccessAuth, "realty-api", 0, "secret")
func GenerateAuthToken(userID, access, issuer string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID == "" || access == "" || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID,
		Access: access,
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	return *claims, nil
}

// ParseAuthToken verifies the signature of tokenString and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using signKey
//   - issuer check when tokenIssuer is non-empty
//   - expiration check when the token carries an exp claim
//   - presence of the "_id" claim and an "access" claim equal to access
//
// Any failure is reported as ErrInvalidToken wrapping the cause.
func ParseAuthToken(tokenString, access, signKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.UserID == "" {
		return models.Token{}, fmt.Errorf("%w: empty _id claim", ErrInvalidToken)
	}
	if claims.Access != access {
		return models.Token{}, fmt.Errorf("%w: unexpected access %q", ErrInvalidToken, claims.Access)
	}

	claims.Token = token
	claims.SignedString = tokenString
	return *claims, nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}
