package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/store"
	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/MKhiriev/go-realty-api/internal/validators"
	"github.com/MKhiriev/go-realty-api/models"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the token lifecycle.
// A token is valid only while it is both correctly signed and present in the
// owner's token collection.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository appends and removes entries of a user's token collection.
	tokenRepository store.TokenRepository

	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	// It is read once at startup and never changes.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// When non-empty, tokens whose issuer does not match are rejected.
	tokenIssuer string

	// tokenDuration limits token lifetime; zero issues tokens without exp.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		validator:       validators.NewUserValidator(),
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// normalizeEmail trims and lower-cases an email so lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and issues its first token.
//
// Returns:
//   - ErrInvalidDataProvided if the email or password is malformed.
//   - ErrEmailAlreadyExists if the email is taken.
//   - a wrapped storage or token error otherwise.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, string, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid credentials provided")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Email:        creds.Email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("func", "*authService.Register").Str("email", creds.Email).Msg("email already registered")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.IssueToken(ctx, user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Login authenticates an existing user and issues a new token.
//
// Unknown email, wrong password and storage failures are all reported as
// ErrInvalidCredentials; the token collection is left untouched on failure.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, string, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return models.User{}, "", ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	if err = utils.CheckPassword(user.PasswordHash, creds.Password); err != nil {
		log.Debug().Str("func", "*authService.Login").Str("id", user.ID).Msg("wrong password")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	token, err := a.IssueToken(ctx, user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return user, token, nil
}

// IssueToken signs a token carrying the user's id and the "auth" access tag
// and appends it to the user's token collection with a single insert.
func (a *authService) IssueToken(ctx context.Context, user models.User) (string, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateAuthToken(user.ID, models.AccessAuth, a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.IssueToken").Msg("token generation failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	entry := models.UserToken{UserID: user.ID, Access: token.Access, Token: token.SignedString}
	if token.ExpiresAt != nil {
		expiresAt := token.ExpiresAt.Time
		entry.ExpiresAt = &expiresAt
	}

	if err = a.tokenRepository.AddToken(ctx, entry); err != nil {
		log.Err(err).Str("func", "*authService.IssueToken").Msg("saving token failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token.SignedString, nil
}

// ValidateToken verifies the signature, access tag and issuer of token, then
// loads the embedded user joined with the exact token in one query.
// Any failure is normalised to ErrUnauthenticated.
func (a *authService) ValidateToken(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrUnauthenticated
	}

	claims, err := utils.ParseAuthToken(token, models.AccessAuth, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ValidateToken").Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.userRepository.FindUserByToken(ctx, claims.UserID, token)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ValidateToken").Msg("token is not in the user's collection")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return user, nil
}

// RevokeToken removes token from the user's collection.
func (a *authService) RevokeToken(ctx context.Context, userID, token string) error {
	if err := a.tokenRepository.RemoveToken(ctx, userID, token); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.RevokeToken").Msg("token removal failed")
		return fmt.Errorf("token removal failed: %w", err)
	}
	return nil
}
