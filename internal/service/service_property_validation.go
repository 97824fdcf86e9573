package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-realty-api/internal/validators"
	"github.com/MKhiriev/go-realty-api/models"
)

// PropertyValidationService normalises and validates listing input before
// handing it to the wrapped PropertyService. Malformed ids are reported as
// ErrNotFound so they never reach storage.
type PropertyValidationService struct {
	inner     PropertyService
	validator validators.Validator
}

func NewPropertyValidationService() PropertyServiceWrapper {
	return &PropertyValidationService{
		validator: validators.NewPropertyValidator(),
	}
}

func (v *PropertyValidationService) Create(ctx context.Context, owner models.User, create models.PropertyCreate) (models.Property, error) {
	create.Title = strings.TrimSpace(create.Title)
	create.Address = strings.TrimSpace(create.Address)
	create.Description = strings.TrimSpace(create.Description)

	if err := v.validator.Validate(ctx, create); err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, owner, create)
}

func (v *PropertyValidationService) ListAll(ctx context.Context) ([]models.Property, error) {
	return v.inner.ListAll(ctx)
}

func (v *PropertyValidationService) ListMine(ctx context.Context, owner models.User) ([]models.Property, error) {
	return v.inner.ListMine(ctx, owner)
}

func (v *PropertyValidationService) GetByID(ctx context.Context, id string) (models.Property, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Property{}, err
	}
	return v.inner.GetByID(ctx, id)
}

func (v *PropertyValidationService) Update(ctx context.Context, owner models.User, id string, update models.PropertyUpdate) (models.Property, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Property{}, err
	}

	update.Title = trimPtr(update.Title)
	update.Address = trimPtr(update.Address)
	update.Description = trimPtr(update.Description)

	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, owner, id, update)
}

func (v *PropertyValidationService) Remove(ctx context.Context, owner models.User, id string) (models.Property, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Property{}, err
	}
	return v.inner.Remove(ctx, owner, id)
}

func (v *PropertyValidationService) Wrap(wrapper PropertyService) PropertyService {
	v.inner = wrapper
	return v
}

func (v *PropertyValidationService) validateID(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
