package service

import (
	"context"
	"errors"
	"fmt"

	"coinflip/internal/model"
	"coinflip/internal/repository"

	"github.com/rs/zerolog"
)

type ResolverImpl struct {
	pendingRepo repository.PendingRepository
	promises    *Promises
	logger      zerolog.Logger
}

func NewResolver(pendingRepo repository.PendingRepository, promises *Promises, logger zerolog.Logger) Resolver {
	return &ResolverImpl{
		pendingRepo: pendingRepo,
		promises:    promises,
		logger:      logger,
	}
}

// Resolve takes the pending wager out of the table and decides it. Only the
// first Resolve of a request id gets the wager; later ones fail with
// ErrWagerNotFound and change nothing.
func (r *ResolverImpl) Resolve(ctx context.Context, requestID string, result model.CallbackResult) (*model.FlipOutcome, error) {
	wager, err := r.pendingRepo.Take(ctx, requestID)
	if err != nil {
		if errors.Is(err, model.ErrWagerNotFound) {
			return nil, fmt.Errorf("resolve %s: %w", requestID, err)
		}
		return nil, fmt.Errorf("take pending wager: %w", err)
	}

	outcome, err := r.decide(wager, result)
	r.promises.complete(requestID, outcome, err)
	return outcome, err
}

func (r *ResolverImpl) decide(wager *model.Wager, result model.CallbackResult) (*model.FlipOutcome, error) {
	logger := r.logger.With().
		Str("request_id", wager.RequestID).
		Str("player", wager.Player).
		Str("choice", wager.Choice.String()).
		Logger()

	switch result.Kind {
	case model.ResultValue:
		n := result.Response.RandomNumber
		if n > 1 {
			// Out-of-range draws still settle; any nonzero value is Tails.
			logger.Warn().Uint32("random_number", n).Msg("random number outside requested range, counted as Tails")
		}
		side := model.SideFromNumber(n)

		outcome := &model.FlipOutcome{
			RequestID:    wager.RequestID,
			Player:       wager.Player,
			Choice:       wager.Choice,
			Result:       side,
			RandomNumber: n,
			Won:          wager.Choice == side,
		}
		if outcome.Won {
			outcome.Message = fmt.Sprintf("Congratulations! You won! Result: %s, Your choice: %s", side, wager.Choice)
			logger.Info().Str("result", side.String()).Uint32("random_number", n).Bool("won", true).Msg("player won")
		} else {
			outcome.Message = fmt.Sprintf("Sorry, you lost. Result: %s, Your choice: %s. Better luck next time!", side, wager.Choice)
			logger.Info().Str("result", side.String()).Uint32("random_number", n).Bool("won", false).Msg("player lost")
		}
		return outcome, nil

	case model.ResultEmpty:
		logger.Error().Str("deposit", wager.Deposit.String()).Msg("remote execution failed, no result received")
		return nil, model.ErrExecutionFailed

	default:
		logger.Error().Err(result.Err).Str("deposit", wager.Deposit.String()).Msg("promise system error")
		if result.Err == nil {
			return nil, model.ErrSystemError
		}
		return nil, fmt.Errorf("%w: %w", model.ErrSystemError, result.Err)
	}
}
