package repository

import (
	"context"
	"time"

	"coinflip/internal/model"
)

// PendingRepository is the pending-request table: wagers waiting for their
// remote callback, keyed by request id.
type PendingRepository interface {
	// Put registers a wager. A request id can be registered once (ErrDuplicateRequest).
	Put(ctx context.Context, wager *model.Wager) error

	// Take removes and returns a wager. Only the first Take of an id succeeds;
	// later calls return ErrWagerNotFound.
	Take(ctx context.Context, requestID string) (*model.Wager, error)

	// ListExpired returns up to limit wagers created before the given time, oldest first.
	ListExpired(ctx context.Context, before time.Time, limit int) ([]*model.Wager, error)
}
