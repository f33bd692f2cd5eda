package service

import (
	"context"
	"sync"

	"coinflip/internal/model"
)

// Promise is the pending handle returned by FlipCoin.
type Promise struct {
	RequestID string

	done    chan struct{}
	once    sync.Once
	outcome *model.FlipOutcome
	err     error
}

func newPromise(requestID string) *Promise {
	return &Promise{RequestID: requestID, done: make(chan struct{})}
}

func (p *Promise) complete(outcome *model.FlipOutcome, err error) {
	p.once.Do(func() {
		p.outcome = outcome
		p.err = err
		close(p.done)
	})
}

// Done is closed once the wager is resolved.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the wager is resolved or ctx ends. A ctx error does not
// affect the wager itself.
func (p *Promise) Wait(ctx context.Context) (*model.FlipOutcome, error) {
	select {
	case <-p.done:
		return p.outcome, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Promises tracks the handles of wagers started by this process.
type Promises struct {
	mu      sync.Mutex
	pending map[string]*Promise
}

func NewPromises() *Promises {
	return &Promises{pending: make(map[string]*Promise)}
}

func (r *Promises) register(requestID string) *Promise {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := newPromise(requestID)
	r.pending[requestID] = p
	return p
}

func (r *Promises) forget(requestID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, requestID)
}

// complete resolves and drops the handle. It reports false when the handle
// belongs to another process or was already completed.
func (r *Promises) complete(requestID string, outcome *model.FlipOutcome, err error) bool {
	r.mu.Lock()
	p, ok := r.pending[requestID]
	delete(r.pending, requestID)
	r.mu.Unlock()

	if !ok {
		return false
	}
	p.complete(outcome, err)
	return true
}

func (r *Promises) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
