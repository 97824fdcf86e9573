package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-realty-api/internal/adapter"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/store"
	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/MKhiriev/go-realty-api/models"
)

type propertyService struct {
	propertyRepository store.PropertyRepository
	geocoder           adapter.Geocoder

	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewPropertyService builds the core listing service. Input is expected to be
// validated already; see NewPropertyValidationService.
func NewPropertyService(propertyRepository store.PropertyRepository, geocoder adapter.Geocoder, logger *logger.Logger) PropertyService {
	return &propertyService{
		propertyRepository: propertyRepository,
		geocoder:           geocoder,
		ids:                utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

func (p *propertyService) Create(ctx context.Context, owner models.User, create models.PropertyCreate) (models.Property, error) {
	log := logger.FromContext(ctx)

	location, err := p.geocode(ctx, create.Address)
	if err != nil {
		return models.Property{}, err
	}

	property := models.Property{
		ID:          p.ids.Generate(),
		Title:       create.Title,
		Address:     location.FormattedAddress,
		Lat:         location.Lat,
		Long:        location.Long,
		Built:       create.Built,
		Lot:         create.Lot,
		Description: create.Description,
		Available:   true,
		ForRent:     create.ForRent,
		ForSale:     create.ForSale,
		PostedOn:    p.now().UnixMilli(),
		OwnerID:     owner.ID,
	}
	if create.Price != nil {
		property.Price = *create.Price
	}
	if create.Beds != nil {
		property.Beds = *create.Beds
	}
	if create.Baths != nil {
		property.Baths = *create.Baths
	}
	if create.Sqft != nil {
		property.Sqft = *create.Sqft
	}

	saved, err := p.propertyRepository.Create(ctx, property)
	if err != nil {
		log.Err(err).Str("func", "*propertyService.Create").Msg("saving property failed")
		return models.Property{}, fmt.Errorf("saving property failed: %w", err)
	}

	return saved, nil
}

func (p *propertyService) ListAll(ctx context.Context) ([]models.Property, error) {
	properties, err := p.propertyRepository.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*propertyService.ListAll").Msg("listing properties failed")
		return nil, fmt.Errorf("listing properties failed: %w", err)
	}
	return properties, nil
}

func (p *propertyService) ListMine(ctx context.Context, owner models.User) ([]models.Property, error) {
	properties, err := p.propertyRepository.FindByOwner(ctx, owner.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*propertyService.ListMine").Msg("listing owned properties failed")
		return nil, fmt.Errorf("listing owned properties failed: %w", err)
	}
	return properties, nil
}

func (p *propertyService) GetByID(ctx context.Context, id string) (models.Property, error) {
	property, err := p.propertyRepository.FindByID(ctx, id)
	return property, mapStoreError(err)
}

// Update applies a partial update to a listing owned by owner. The address is
// re-geocoded only when the patch carries one; otherwise coordinates stay as
// they are. Ownership is checked before the geocoder is called.
func (p *propertyService) Update(ctx context.Context, owner models.User, id string, update models.PropertyUpdate) (models.Property, error) {
	if update.IsEmpty() || update.Address != nil {
		property, err := p.propertyRepository.FindOwned(ctx, id, owner.ID)
		if err != nil || update.IsEmpty() {
			return property, mapStoreError(err)
		}
	}

	changes := models.PropertyChanges{PropertyUpdate: update}
	if update.Address != nil {
		location, err := p.geocode(ctx, *update.Address)
		if err != nil {
			return models.Property{}, err
		}
		changes.Location = &location
	}

	property, err := p.propertyRepository.UpdateOwned(ctx, id, owner.ID, changes)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*propertyService.Update").Str("id", id).Msg("updating property failed")
	}
	return property, mapStoreError(err)
}

func (p *propertyService) Remove(ctx context.Context, owner models.User, id string) (models.Property, error) {
	property, err := p.propertyRepository.DeleteOwned(ctx, id, owner.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*propertyService.Remove").Str("id", id).Msg("removing property failed")
	}
	return property, mapStoreError(err)
}

func (p *propertyService) geocode(ctx context.Context, address string) (models.Location, error) {
	location, err := p.geocoder.Geocode(ctx, address)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*propertyService.geocode").Str("address", address).Msg("geocoding failed")
		return models.Location{}, fmt.Errorf("%w: %w", ErrDependencyFailure, err)
	}
	return location, nil
}

// mapStoreError converts a repository miss into the service-level ErrNotFound.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}
