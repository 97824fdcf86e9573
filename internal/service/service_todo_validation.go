package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-realty-api/internal/validators"
	"github.com/MKhiriev/go-realty-api/models"
)

type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewTodoValidator(),
	}
}

func (v *TodoValidationService) Create(ctx context.Context, owner models.User, create models.TodoCreate) (models.Todo, error) {
	create.Text = strings.TrimSpace(create.Text)
	if err := v.validator.Validate(ctx, create); err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, owner, create)
}

func (v *TodoValidationService) ListMine(ctx context.Context, owner models.User) ([]models.Todo, error) {
	return v.inner.ListMine(ctx, owner)
}

func (v *TodoValidationService) GetByID(ctx context.Context, owner models.User, id string) (models.Todo, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Todo{}, err
	}
	return v.inner.GetByID(ctx, owner, id)
}

func (v *TodoValidationService) Update(ctx context.Context, owner models.User, id string, update models.TodoUpdate) (models.Todo, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Todo{}, err
	}

	update.Text = trimPtr(update.Text)
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, owner, id, update)
}

func (v *TodoValidationService) Remove(ctx context.Context, owner models.User, id string) (models.Todo, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Todo{}, err
	}
	return v.inner.Remove(ctx, owner, id)
}

func (v *TodoValidationService) Wrap(wrapper TodoService) TodoService {
	v.inner = wrapper
	return v
}

func (v *TodoValidationService) validateID(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return nil
}
