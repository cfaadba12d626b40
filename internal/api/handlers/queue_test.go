package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filamvp/card-tracker/internal/api/handlers"
	"github.com/filamvp/card-tracker/internal/extract"
	"github.com/filamvp/card-tracker/internal/store/storetest"
)

func TestQueueStatus(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	_, err := fake.EnqueueImage(context.Background(), "gengar.jpg")
	require.NoError(t, err)
	_, err = fake.EnqueueImage(context.Background(), "pikachu.jpg")
	require.NoError(t, err)

	limiter := extract.NewRateLimiter(1000, 1000, 500)
	require.NoError(t, limiter.Wait(context.Background()))

	_, api := humatest.New(t)
	handlers.RegisterQueueRoutes(api, handlers.NewQueueHandler(fake, limiter))

	resp := api.Get("/api/v1/queue/status")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"pending_images":2`)
	assert.Contains(t, resp.Body.String(), `"vision_calls_today":1`)
	assert.Contains(t, resp.Body.String(), `"vision_calls_remaining":499`)
	assert.Contains(t, resp.Body.String(), `"vision_budget_reset_at"`)
}

func TestQueueStatus_NoLimiter(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterQueueRoutes(api, handlers.NewQueueHandler(storetest.New(), nil))

	resp := api.Get("/api/v1/queue/status")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"pending_images":0`)
	assert.NotContains(t, resp.Body.String(), "vision_calls_today")
}
