package service

import (
	"context"
	"testing"
	"time"

	"coinflip/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromises_CompleteOnce(t *testing.T) {
	promises := NewPromises()
	p := promises.register("req")

	first := &model.FlipOutcome{RequestID: "req", Won: true}
	assert.True(t, promises.complete("req", first, nil))
	assert.False(t, promises.complete("req", nil, model.ErrSystemError))

	got, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Equal(t, 0, promises.Len())
}

func TestPromise_WaitHonoursContext(t *testing.T) {
	p := NewPromises().register("req")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
