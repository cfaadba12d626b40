package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_DailyBudget(t *testing.T) {
	t.Parallel()

	r := NewRateLimiter(1000, 1000, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Wait(ctx))
	}

	err := r.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDailyLimitReached)
	assert.Equal(t, int64(3), r.DailyCount())
	assert.Zero(t, r.Remaining())
}

func TestRateLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewRateLimiter(1000, 1000, 1, WithRateLimiterNowFunc(func() time.Time { return now }))
	ctx := context.Background()

	require.NoError(t, r.Wait(ctx))
	require.ErrorIs(t, r.Wait(ctx), ErrDailyLimitReached)

	// Advance past the 24-hour window; the budget resets.
	now = now.Add(25 * time.Hour)
	require.NoError(t, r.Wait(ctx))
	assert.Equal(t, int64(1), r.DailyCount())
}

func TestRateLimiter_ResetAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewRateLimiter(1, 1, 10, WithRateLimiterNowFunc(func() time.Time { return now }))

	assert.Equal(t, now.Add(24*time.Hour), r.ResetAt())
}

func TestRateLimiter_CanceledContext(t *testing.T) {
	t.Parallel()

	// Burst of 1 is consumed; the second Wait must block and then fail
	// when the context is canceled.
	r := NewRateLimiter(0.001, 1, 10)

	ctx := context.Background()
	require.NoError(t, r.Wait(ctx))

	cancelCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	assert.Error(t, r.Wait(cancelCtx))
}
