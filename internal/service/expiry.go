package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinflip/internal/model"
	"coinflip/internal/repository"

	"github.com/rs/zerolog"
)

type ExpiryServiceImpl struct {
	pendingRepo repository.PendingRepository
	resolver    Resolver
	ttl         time.Duration
	limit       int
	logger      zerolog.Logger
	now         func() time.Time
}

func NewExpiryService(
	pendingRepo repository.PendingRepository,
	resolver Resolver,
	ttl time.Duration,
	limit int,
	logger zerolog.Logger,
) ExpiryService {
	return &ExpiryServiceImpl{
		pendingRepo: pendingRepo,
		resolver:    resolver,
		ttl:         ttl,
		limit:       limit,
		logger:      logger,
		now:         time.Now,
	}
}

// ExpireStalePending resolves wagers older than the ttl as platform failures.
// A wager whose real callback wins the race is left to that callback.
func (s *ExpiryServiceImpl) ExpireStalePending(ctx context.Context) error {
	var expiredCount int

	stale, err := s.pendingRepo.ListExpired(ctx, s.now().Add(-s.ttl), s.limit)
	if err != nil {
		return fmt.Errorf("list expired wagers: %w", err)
	}

	if len(stale) == 0 {
		s.logger.Debug().Msg("no stale pending wagers")
		return nil
	}

	for _, wager := range stale {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		reason := fmt.Errorf("%w: no callback within %s", model.ErrRequestExpired, s.ttl)
		_, err := s.resolver.Resolve(ctx, wager.RequestID, model.ErrorResult(reason))
		switch {
		case errors.Is(err, model.ErrSystemError):
			expiredCount++
		case errors.Is(err, model.ErrWagerNotFound):
			s.logger.Debug().Str("request_id", wager.RequestID).Msg("wager resolved before expiry")
		case err != nil:
			s.logger.Error().Err(err).Str("request_id", wager.RequestID).Msg("failed to expire wager")
		}
	}

	s.logger.Info().
		Int("requested", len(stale)).
		Int("expired", expiredCount).
		Msg("stale pending wagers expiry completed")

	return nil
}
