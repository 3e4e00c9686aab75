package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterSpacesConsecutiveCalls(t *testing.T) {
	limiter := NewRateLimiter(30 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx))

	start := time.Now()
	require.NoError(t, limiter.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRateLimiterZeroIntervalNeverBlocks(t *testing.T) {
	limiter := NewRateLimiter(0)
	ctx := context.Background()

	start := time.Now()
	for range 10 {
		require.NoError(t, limiter.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 20*time.Millisecond)
}

func TestRateLimiterHonorsCancelledContext(t *testing.T) {
	limiter := NewRateLimiter(time.Minute)

	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
