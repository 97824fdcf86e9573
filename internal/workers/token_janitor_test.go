package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/mock"
	"go.uber.org/mock/gomock"
)

func TestTokenJanitor_SweepsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenRepository(ctrl)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	swept := make(chan struct{}, 1)
	tokens.EXPECT().
		DeleteExpiredTokens(gomock.Any(), now).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 2, nil
		}).
		MinTimes(1)

	j := NewTokenJanitor(tokens, 5*time.Millisecond, logger.Nop())
	j.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep")
	}
	cancel()
	<-done
}

func TestTokenJanitor_ErrorDoesNotStopLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenRepository(ctrl)

	calls := make(chan struct{}, 2)
	tokens.EXPECT().
		DeleteExpiredTokens(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
			return 0, errors.New("db down")
		}).
		MinTimes(2)

	j := NewTokenJanitor(tokens, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("janitor stopped sweeping after an error")
		}
	}
	cancel()
	<-done
}

func TestTokenJanitor_ZeroIntervalReturns(t *testing.T) {
	j := NewTokenJanitor(nil, 0, logger.Nop())

	// returns immediately without touching the repository
	j.Run(context.Background())
}
