package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/filamvp/card-tracker/internal/extract"
	"github.com/filamvp/card-tracker/internal/store"
)

// QueueHandler reports image queue and vision budget state.
type QueueHandler struct {
	store   store.Store
	limiter *extract.RateLimiter
}

// NewQueueHandler creates a new QueueHandler. The limiter may be nil
// when the queue processor is disabled.
func NewQueueHandler(s store.Store, limiter *extract.RateLimiter) *QueueHandler {
	return &QueueHandler{store: s, limiter: limiter}
}

// QueueStatusOutput is the queue status response.
type QueueStatusOutput struct {
	Body struct {
		PendingImages int `json:"pending_images"`

		VisionCallsToday     *int64     `json:"vision_calls_today,omitempty"`
		VisionCallsRemaining *int64     `json:"vision_calls_remaining,omitempty"`
		VisionBudgetResetAt  *time.Time `json:"vision_budget_reset_at,omitempty"`
	}
}

// QueueStatus returns the number of pending images and, when the
// processor is enabled, the vision API budget state.
func (h *QueueHandler) QueueStatus(ctx context.Context, _ *struct{}) (*QueueStatusOutput, error) {
	pending, err := h.store.CountPendingImages(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("counting pending images: " + err.Error())
	}

	resp := &QueueStatusOutput{}
	resp.Body.PendingImages = pending

	if h.limiter != nil {
		today := h.limiter.DailyCount()
		remaining := h.limiter.Remaining()
		resetAt := h.limiter.ResetAt()
		resp.Body.VisionCallsToday = &today
		resp.Body.VisionCallsRemaining = &remaining
		resp.Body.VisionBudgetResetAt = &resetAt
	}

	return resp, nil
}

// RegisterQueueRoutes registers queue status endpoints with the Huma API.
func RegisterQueueRoutes(api huma.API, h *QueueHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "queue-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/queue/status",
		Summary:     "Report image queue depth and vision budget",
		Tags:        []string{"ingest"},
	}, h.QueueStatus)
}
