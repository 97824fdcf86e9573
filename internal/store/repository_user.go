package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical stored
// representation via a RETURNING clause.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.translateError(err, ErrExecutingQuery, ErrEmailAlreadyExists)
	}

	return created, nil
}

// FindUserByEmail retrieves the user with the given email.
// No match → [ErrNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("user lookup failed")
		return models.User{}, r.db.translateError(err, ErrScanningRow, nil)
	}

	return found, nil
}

// FindUserByToken resolves the user with id userID only if token belongs to
// that user's token collection. The matched token is returned in Tokens.
// No match → [ErrNotFound].
func (r *userRepository) FindUserByToken(ctx context.Context, userID, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByTokenQuery(r.db.builder, userID, token)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByToken").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user models.User
		tok  models.UserToken
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
		&tok.Access, &tok.Token, &tok.ExpiresAt,
	)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.FindUserByToken").Msg("token lookup failed")
		return models.User{}, r.db.translateError(err, ErrScanningRow, nil)
	}

	tok.UserID = user.ID
	user.Tokens = []models.UserToken{tok}
	return user, nil
}
