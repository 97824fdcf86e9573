package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-realty-api/internal/adapter"
	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/handler"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/server"
	"github.com/MKhiriev/go-realty-api/internal/service"
	"github.com/MKhiriev/go-realty-api/internal/store"
	"github.com/MKhiriev/go-realty-api/internal/workers"
	"github.com/MKhiriev/go-realty-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("realty-api-server")

	buildInfo := newBuildInfo()
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	geocoder, err := adapter.NewGoogleGeocoder(cfg.Adapter.Geocoder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geocoder")
	}

	services, err := service.NewServices(storages, geocoder, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewBackgroundWorkers(storages, *cfg, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}
