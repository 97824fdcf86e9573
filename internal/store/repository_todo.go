package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/models"
	sq "github.com/Masterminds/squirrel"
)

type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] over the "todos" table.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateTodoQuery(r.db.builder, todo)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Create").Msg("error building query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Create").Msg("error inserting todo")
		return models.Todo{}, r.db.translateError(err, ErrExecutingQuery, nil)
	}

	return created, nil
}

func (r *todoRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodosQuery(r.db.builder, sq.Eq{"owner_id": ownerID})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindByOwner").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindByOwner").Msg("error selecting todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			log.Err(err).Str("func", "*todoRepository.FindByOwner").Msg("error scanning todo")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		todos = append(todos, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

func (r *todoRepository) FindOwned(ctx context.Context, id, ownerID string) (models.Todo, error) {
	query, args, err := buildSelectTodosQuery(r.db.builder, sq.Eq{"id": id, "owner_id": ownerID})
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Todo{}, r.db.translateError(err, ErrScanningRow, nil)
	}

	return todo, nil
}

func (r *todoRepository) UpdateOwned(ctx context.Context, id, ownerID string, changes models.TodoChanges) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOwnedTodoQuery(r.db.builder, id, ownerID, changes)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.Todo{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateOwned").Msg("error building query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", "*todoRepository.UpdateOwned").Msg("update matched no owned todo")
		return models.Todo{}, r.db.translateError(err, ErrExecutingQuery, nil)
	}

	return updated, nil
}

func (r *todoRepository) DeleteOwned(ctx context.Context, id, ownerID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedTodoQuery(r.db.builder, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteOwned").Msg("error building query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	removed, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", "*todoRepository.DeleteOwned").Msg("delete matched no owned todo")
		return models.Todo{}, r.db.translateError(err, ErrExecutingQuery, nil)
	}

	return removed, nil
}
