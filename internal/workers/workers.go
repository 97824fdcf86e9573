package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/store"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// NewBackgroundWorkers registers the workers enabled by cfg. The token
// janitor only runs when tokens expire and a cleanup interval is set.
func NewBackgroundWorkers(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	var registered []Worker

	if cfg.Workers.TokenCleanupInterval > 0 && cfg.App.TokenDuration > 0 {
		registered = append(registered, NewTokenJanitor(storages.TokenRepository, cfg.Workers.TokenCleanupInterval, logger))
	}

	return NewWorkers(logger, registered...)
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}

	if w.logger != nil {
		w.logger.Info().Int("count", len(w.workers)).Msg("background workers started")
	}
	wg.Wait()
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}
