package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"coinflip/internal/model"
	"coinflip/internal/repository"

	"github.com/redis/go-redis/v9"
)

var _ repository.PendingRepository = (*PendingRepositoryImpl)(nil)

// PendingRepositoryImpl keeps pending wagers in redis so several coordinator
// instances can share one pending-request table. Take relies on GETDEL, which
// makes the first taker the only one.
type PendingRepositoryImpl struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPendingRepository stores entries with the given ttl as a safety net; the
// expiry worker normally resolves them well before it runs out.
func NewPendingRepository(client *redis.Client, ttl time.Duration) *PendingRepositoryImpl {
	return &PendingRepositoryImpl{client: client, ttl: ttl}
}

func (r *PendingRepositoryImpl) Put(ctx context.Context, wager *model.Wager) error {
	data, err := json.Marshal(wager)
	if err != nil {
		return fmt.Errorf("failed to marshal wager: %w", err)
	}

	key := fmt.Sprintf(KeyPendingWager, wager.RequestID)
	ok, err := r.client.SetNX(ctx, key, data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store pending wager: %w", err)
	}
	if !ok {
		return model.ErrDuplicateRequest
	}

	err = r.client.ZAdd(ctx, KeyPendingIndex, redis.Z{
		Score:  float64(wager.CreatedAt.UnixMilli()),
		Member: wager.RequestID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to index pending wager: %w", err)
	}
	return nil
}

func (r *PendingRepositoryImpl) Take(ctx context.Context, requestID string) (*model.Wager, error) {
	key := fmt.Sprintf(KeyPendingWager, requestID)

	data, err := r.client.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrWagerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to take pending wager: %w", err)
	}

	// Index cleanup is best effort; a stale member is dropped by ListExpired.
	_ = r.client.ZRem(ctx, KeyPendingIndex, requestID).Err()

	var wager model.Wager
	if err := json.Unmarshal(data, &wager); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wager: %w", err)
	}
	return &wager, nil
}

func (r *PendingRepositoryImpl) ListExpired(ctx context.Context, before time.Time, limit int) ([]*model.Wager, error) {
	ids, err := r.client.ZRangeByScore(ctx, KeyPendingIndex, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   "(" + strconv.FormatInt(before.UnixMilli(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query pending index: %w", err)
	}

	wagers := make([]*model.Wager, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, fmt.Sprintf(KeyPendingWager, id)).Bytes()
		if errors.Is(err, redis.Nil) {
			_ = r.client.ZRem(ctx, KeyPendingIndex, id).Err()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get pending wager %s: %w", id, err)
		}

		var wager model.Wager
		if err := json.Unmarshal(data, &wager); err != nil {
			return nil, fmt.Errorf("failed to unmarshal wager %s: %w", id, err)
		}
		wagers = append(wagers, &wager)
	}
	return wagers, nil
}
