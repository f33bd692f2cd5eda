package worker

import (
	"context"
	"sync"
	"time"

	"coinflip/internal/service"

	"github.com/rs/zerolog"
)

// ExpiryWorker periodically fails wagers whose callback never arrived.
type ExpiryWorker struct {
	service  service.ExpiryService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewExpiryWorker(svc service.ExpiryService, interval time.Duration, logger zerolog.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Expiry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running pending wager expiry")
				if err := w.service.ExpireStalePending(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to expire pending wagers")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Expiry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Expiry worker stopping (context done)")
				return
			}
		}
	}()
}

// Stop is safe to call more than once.
func (w *ExpiryWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
