package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/models"
	sq "github.com/Masterminds/squirrel"
)

type propertyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPropertyRepository constructs a [PropertyRepository] over the "properties" table.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *propertyRepository) Create(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePropertyQuery(r.db.builder, property)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Create").Msg("error building query")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanProperty(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Create").Msg("error inserting property")
		return models.Property{}, r.db.translateError(err, ErrExecutingQuery, nil)
	}

	return created, nil
}

func (r *propertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	return r.findMany(ctx, nil)
}

func (r *propertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	return r.findMany(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (models.Property, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *propertyRepository) FindOwned(ctx context.Context, id, ownerID string) (models.Property, error) {
	return r.findOne(ctx, sq.Eq{"id": id, "owner_id": ownerID})
}

// UpdateOwned runs a single UPDATE ... WHERE id AND owner_id RETURNING.
func (r *propertyRepository) UpdateOwned(ctx context.Context, id, ownerID string, changes models.PropertyChanges) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOwnedPropertyQuery(r.db.builder, id, ownerID, changes)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.Property{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.UpdateOwned").Msg("error building query")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProperty(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", "*propertyRepository.UpdateOwned").Msg("update matched no owned property")
		return models.Property{}, r.db.translateError(err, ErrExecutingQuery, nil)
	}

	return updated, nil
}

// DeleteOwned runs a single DELETE ... WHERE id AND owner_id RETURNING.
func (r *propertyRepository) DeleteOwned(ctx context.Context, id, ownerID string) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedPropertyQuery(r.db.builder, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.DeleteOwned").Msg("error building query")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	removed, err := scanProperty(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", "*propertyRepository.DeleteOwned").Msg("delete matched no owned property")
		return models.Property{}, r.db.translateError(err, ErrExecutingQuery, nil)
	}

	return removed, nil
}

func (r *propertyRepository) findOne(ctx context.Context, filter sq.Eq) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPropertiesQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.findOne").Msg("error building query")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	property, err := scanProperty(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Property{}, r.db.translateError(err, ErrScanningRow, nil)
	}

	return property, nil
}

func (r *propertyRepository) findMany(ctx context.Context, filter sq.Eq) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPropertiesQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.findMany").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.findMany").Msg("error selecting properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			log.Err(err).Str("func", "*propertyRepository.findMany").Msg("error scanning property")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		properties = append(properties, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return properties, nil
}
