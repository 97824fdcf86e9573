package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/store"
)

// TokenJanitor periodically deletes expired entries from every user's token
// collection.
type TokenJanitor struct {
	tokens   store.TokenRepository
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewTokenJanitor(tokens store.TokenRepository, interval time.Duration, logger *logger.Logger) *TokenJanitor {
	return &TokenJanitor{
		tokens:   tokens,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (j *TokenJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Str("func", "*TokenJanitor.Run").Msg("token janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *TokenJanitor) sweep(ctx context.Context) {
	deleted, err := j.tokens.DeleteExpiredTokens(ctx, j.now())
	if err != nil {
		j.logger.Err(err).Str("func", "*TokenJanitor.sweep").Msg("deleting expired tokens failed")
		return
	}
	if deleted > 0 {
		j.logger.Info().Str("func", "*TokenJanitor.sweep").Int64("deleted", deleted).Msg("expired tokens deleted")
	}
}
