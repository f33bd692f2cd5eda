package service

import (
	"context"

	"coinflip/internal/model"
)

// FlipService is the wager coordinator.
type FlipService interface {
	// FlipCoin validates the attached deposit, sends the remote random number
	// request and returns a handle that completes once the wager is resolved.
	FlipCoin(ctx context.Context, call model.Call, choice model.CoinSide) (*Promise, error)
}

// Resolver is the continuation run once per wager when the remote call completes.
type Resolver interface {
	Resolve(ctx context.Context, requestID string, result model.CallbackResult) (*model.FlipOutcome, error)
}

// ExpiryService resolves wagers whose callback never arrived.
type ExpiryService interface {
	ExpireStalePending(ctx context.Context) error
}
