package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"coinflip/internal/model"
	"coinflip/internal/repository"
)

var _ repository.PendingRepository = (*PendingRepositoryImpl)(nil)

// PendingRepositoryImpl keeps pending wagers in process memory.
type PendingRepositoryImpl struct {
	mu     sync.Mutex
	wagers map[string]model.Wager
}

func NewPendingRepository() *PendingRepositoryImpl {
	return &PendingRepositoryImpl{wagers: make(map[string]model.Wager)}
}

func (r *PendingRepositoryImpl) Put(_ context.Context, wager *model.Wager) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.wagers[wager.RequestID]; ok {
		return model.ErrDuplicateRequest
	}
	r.wagers[wager.RequestID] = *wager
	return nil
}

func (r *PendingRepositoryImpl) Take(_ context.Context, requestID string) (*model.Wager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wagers[requestID]
	if !ok {
		return nil, model.ErrWagerNotFound
	}
	delete(r.wagers, requestID)
	return &w, nil
}

func (r *PendingRepositoryImpl) ListExpired(_ context.Context, before time.Time, limit int) ([]*model.Wager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []*model.Wager
	for _, w := range r.wagers {
		if w.CreatedAt.Before(before) {
			w := w
			expired = append(expired, &w)
		}
	}
	sort.Slice(expired, func(i, j int) bool {
		return expired[i].CreatedAt.Before(expired[j].CreatedAt)
	})
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}
	return expired, nil
}
