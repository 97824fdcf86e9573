package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/logger"
)

// Storages bundles every repository over one database connection.
type Storages struct {
	UserRepository     UserRepository
	TokenRepository    TokenRepository
	PropertyRepository PropertyRepository
	TodoRepository     TodoRepository

	db *DB
}

// NewStorages connects to the database selected by cfg, applies migrations
// and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		TokenRepository:    NewTokenRepository(db, log),
		PropertyRepository: NewPropertyRepository(db, log),
		TodoRepository:     NewTodoRepository(db, log),
		db:                 db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
