package service

import (
	"github.com/MKhiriev/go-realty-api/internal/adapter"
	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/store"
)

type Services struct {
	AuthService     AuthService
	PropertyService PropertyService
	TodoService     TodoService
	AppInfoService  AppInfoService
}

// NewServices assembles the service layer. Listing and task services are
// wrapped with their validation layers.
func NewServices(storages *store.Storages, geocoder adapter.Geocoder, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.TokenRepository, cfg.App, logger),
		PropertyService: NewPropertyValidationService().Wrap(NewPropertyService(storages.PropertyRepository, geocoder, logger)),
		TodoService:     NewTodoValidationService().Wrap(NewTodoService(storages.TodoRepository, logger)),
		AppInfoService:  appInfoService,
	}, nil
}
