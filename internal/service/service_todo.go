package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/store"
	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/MKhiriev/go-realty-api/models"
)

type todoService struct {
	todoRepository store.TodoRepository

	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (t *todoService) Create(ctx context.Context, owner models.User, create models.TodoCreate) (models.Todo, error) {
	todo, err := t.todoRepository.Create(ctx, models.Todo{
		ID:      t.ids.Generate(),
		Text:    create.Text,
		OwnerID: owner.ID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoService.Create").Msg("saving todo failed")
		return models.Todo{}, fmt.Errorf("saving todo failed: %w", err)
	}
	return todo, nil
}

func (t *todoService) ListMine(ctx context.Context, owner models.User) ([]models.Todo, error) {
	todos, err := t.todoRepository.FindByOwner(ctx, owner.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoService.ListMine").Msg("listing todos failed")
		return nil, fmt.Errorf("listing todos failed: %w", err)
	}
	return todos, nil
}

func (t *todoService) GetByID(ctx context.Context, owner models.User, id string) (models.Todo, error) {
	todo, err := t.todoRepository.FindOwned(ctx, id, owner.ID)
	return todo, mapStoreError(err)
}

// Update applies text and completion changes. Setting completed stamps
// completedAt with the current time; clearing it removes the stamp.
func (t *todoService) Update(ctx context.Context, owner models.User, id string, update models.TodoUpdate) (models.Todo, error) {
	if update.Text == nil && update.Completed == nil {
		todo, err := t.todoRepository.FindOwned(ctx, id, owner.ID)
		return todo, mapStoreError(err)
	}

	changes := models.TodoChanges{Text: update.Text, Completed: update.Completed}
	if update.Completed != nil && *update.Completed {
		completedAt := t.now().UnixMilli()
		changes.CompletedAt = &completedAt
	}

	todo, err := t.todoRepository.UpdateOwned(ctx, id, owner.ID, changes)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*todoService.Update").Str("id", id).Msg("updating todo failed")
	}
	return todo, mapStoreError(err)
}

func (t *todoService) Remove(ctx context.Context, owner models.User, id string) (models.Todo, error) {
	todo, err := t.todoRepository.DeleteOwned(ctx, id, owner.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*todoService.Remove").Str("id", id).Msg("removing todo failed")
	}
	return todo, mapStoreError(err)
}
