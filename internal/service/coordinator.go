package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinflip/internal/config"
	"coinflip/internal/model"
	"coinflip/internal/remote"
	"coinflip/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// coinRange is the draw requested from the remote executor: 0 is Heads, 1 is Tails.
var coinRange = model.RangeRequest{Min: 0, Max: 1}

type FlipServiceImpl struct {
	pendingRepo repository.PendingRepository
	executor    remote.Executor
	resolver    Resolver
	promises    *Promises
	wagerCfg    config.WagerConfig
	remoteCfg   config.RemoteConfig
	logger      zerolog.Logger
}

func NewFlipService(
	pendingRepo repository.PendingRepository,
	executor remote.Executor,
	resolver Resolver,
	promises *Promises,
	wagerCfg config.WagerConfig,
	remoteCfg config.RemoteConfig,
	logger zerolog.Logger,
) FlipService {
	return &FlipServiceImpl{
		pendingRepo: pendingRepo,
		executor:    executor,
		resolver:    resolver,
		promises:    promises,
		wagerCfg:    wagerCfg,
		remoteCfg:   remoteCfg,
		logger:      logger,
	}
}

func (s *FlipServiceImpl) FlipCoin(ctx context.Context, call model.Call, choice model.CoinSide) (*Promise, error) {
	// Validate before anything is registered or sent
	if call.Player == "" {
		return nil, fmt.Errorf("%w: player account is required", model.ErrInvalidPlayer)
	}
	if choice != model.Heads && choice != model.Tails {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidChoice, uint8(choice))
	}
	if call.Deposit.LessThan(s.wagerCfg.MinDeposit) {
		return nil, fmt.Errorf("%w: attached %s, minimum is %s", model.ErrInsufficientDeposit,
			call.Deposit.String(), s.wagerCfg.MinDeposit.String())
	}

	// The callback gets a fixed budget, the remote request gets everything left
	callbackGas := model.Gas(s.wagerCfg.CallbackGas)
	if call.UsedGas > call.PrepaidGas || call.PrepaidGas-call.UsedGas < callbackGas {
		return nil, fmt.Errorf("%w: prepaid %s, used %s, callback needs %s", model.ErrInsufficientGas,
			call.PrepaidGas, call.UsedGas, callbackGas)
	}
	outboundGas := call.PrepaidGas - call.UsedGas - callbackGas

	// Refunds go to the player, not to this service
	req, err := remote.NewRequest(s.remoteCfg, coinRange, call.Player)
	if err != nil {
		return nil, fmt.Errorf("build execution request: %w", err)
	}

	wager := &model.Wager{
		RequestID: uuid.NewString(),
		Player:    call.Player,
		Choice:    choice,
		Deposit:   call.Deposit,
		CreatedAt: time.Now().UTC(),
	}

	promise := s.promises.register(wager.RequestID)
	if err := s.pendingRepo.Put(ctx, wager); err != nil {
		s.promises.forget(wager.RequestID)
		return nil, fmt.Errorf("register pending wager: %w", err)
	}

	s.logger.Info().
		Str("request_id", wager.RequestID).
		Str("player", wager.Player).
		Str("choice", choice.String()).
		Str("deposit", call.Deposit.String()).
		Uint64("outbound_gas", uint64(outboundGas)).
		Uint64("callback_gas", uint64(callbackGas)).
		Str("executor", s.remoteCfg.ContractID).
		Msg("requesting random number from remote executor")

	// Once the deposit is forwarded the wager has to resolve, even if the
	// caller stops waiting.
	dispatchCtx, cancel := s.dispatchContext(ctx)
	go func() {
		defer cancel()
		s.dispatch(dispatchCtx, wager.RequestID, req, model.Attachment{Deposit: call.Deposit, Gas: outboundGas})
	}()

	return promise, nil
}

func (s *FlipServiceImpl) dispatchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.remoteCfg.CallTimeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, s.remoteCfg.CallTimeout)
}

func (s *FlipServiceImpl) dispatch(ctx context.Context, requestID string, req *model.ExecutionRequest, att model.Attachment) {
	result := s.executor.RequestExecution(ctx, req, att)

	_, err := s.resolver.Resolve(ctx, requestID, result)
	switch {
	case errors.Is(err, model.ErrWagerNotFound):
		s.logger.Warn().Str("request_id", requestID).Msg("callback for an already resolved wager ignored")
	case err != nil && !errors.Is(err, model.ErrExecutionFailed) && !errors.Is(err, model.ErrSystemError):
		s.logger.Error().Err(err).Str("request_id", requestID).Msg("failed to resolve wager")
	}
}
