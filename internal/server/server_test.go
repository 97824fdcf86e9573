package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/handler"
	httphandler "github.com/MKhiriev/go-realty-api/internal/handler/http"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/service"
	"github.com/MKhiriev/go-realty-api/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingWorker struct {
	stopped chan struct{}
}

func (w *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	close(w.stopped)
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: &httphandler.Handler{}}

	s, err := NewServer(handlers, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPAddress)
	assert.Nil(t, s)
}

func TestServer_RunStopsWorkersOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	worker := &blockingWorker{stopped: make(chan struct{})}
	s, err := NewServer(handlers, workers.NewWorkers(logger.Nop(), worker), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.(*server).run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}

	select {
	case <-worker.stopped:
	default:
		t.Fatal("worker was not stopped")
	}
}
