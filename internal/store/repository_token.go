package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/models"
)

// tokenRepository stores each entry of a user's token collection as a row of
// "user_tokens", so appending and removing a token are single-row statements.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *tokenRepository) AddToken(ctx context.Context, token models.UserToken) error {
	log := logger.FromContext(ctx)

	if token.ExpiresAt != nil {
		utc := token.ExpiresAt.UTC()
		token.ExpiresAt = &utc
	}

	query, args, err := buildAddTokenQuery(r.db.builder, token, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.AddToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.AddToken").Msg("error inserting token")
		return r.db.translateError(err, ErrExecutingQuery, nil)
	}

	return nil
}

// RemoveToken is idempotent: deleting zero rows is success.
func (r *tokenRepository) RemoveToken(ctx context.Context, userID, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveTokenQuery(r.db.builder, userID, token)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.RemoveToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.RemoveToken").Msg("error deleting token")
		return r.db.translateError(err, ErrExecutingQuery, nil)
	}

	return nil
}

func (r *tokenRepository) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredTokensQuery(r.db.builder, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteExpiredTokens").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteExpiredTokens").Msg("error deleting expired tokens")
		return 0, r.db.translateError(err, ErrExecutingQuery, nil)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return affected, nil
}
