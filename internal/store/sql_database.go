package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect describes how to talk to one database engine.
type Dialect struct {
	// Driver is the database/sql driver name.
	Driver string

	// Goose is the dialect name understood by the migrations package.
	Goose string

	// Placeholder is the bind variable format used by squirrel.
	Placeholder sq.PlaceholderFormat
}

var (
	PostgresDialect = Dialect{Driver: "pgx", Goose: migrations.DialectPostgres, Placeholder: sq.Dollar}
	SQLiteDialect   = Dialect{Driver: "sqlite3", Goose: migrations.DialectSQLite, Placeholder: sq.Question}
)

// DB wraps *sql.DB with the dialect-specific query builder and error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator maps driver errors onto dialect-independent classes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// newDB assembles a DB around an open connection.
func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(dialect.Placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// NewConnect opens the database selected by cfg.DSN:
//   - "postgres://" or "postgresql://" → PostgreSQL
//   - "sqlite://<path>", "file:<path>" or ":memory:" → SQLite
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return NewConnectSQLite(ctx, dsn, log)
	default:
		log.Error().Str("func", "NewConnect").Msg("unsupported database dsn")
		return nil, fmt.Errorf("%w: expected postgres://, sqlite://, file: or :memory:", ErrUnsupportedDSN)
	}
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Goose)
}

// translateError converts a driver error into a package sentinel.
// sql.ErrNoRows becomes ErrNotFound and a unique violation becomes
// onUnique when it is non-nil; everything else is wrapped with fallback.
func (db *DB) translateError(err error, fallback, onUnique error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if onUnique != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == UniqueViolation {
		return onUnique
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
