package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/filamvp/card-tracker/internal/store"
)

// imageExtensions are the object suffixes accepted by the storage
// webhook. Anything else in the bucket (thumbnails, manifests) is
// acknowledged but not queued.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".heic"}

// IngestHandler accepts storage bucket notifications and feeds the
// image processing queue.
type IngestHandler struct {
	store store.Store
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(s store.Store) *IngestHandler {
	return &IngestHandler{store: s}
}

// StorageEventInput is an object-created notification from the storage
// bucket.
type StorageEventInput struct {
	Body struct {
		Bucket string `json:"bucket,omitempty" doc:"Bucket the object was uploaded to"`
		Name   string `json:"name" minLength:"1" doc:"Object path within the bucket"`
	}
}

// StorageEventOutput reports what happened to the notified object.
type StorageEventOutput struct {
	Body struct {
		// Status is one of queued, duplicate, ignored.
		Status string `json:"status"`
		Path   string `json:"path"`
	}
}

// StorageEvent enqueues an uploaded image for field extraction. Repeat
// notifications for the same path and non-image objects are no-ops.
func (h *IngestHandler) StorageEvent(ctx context.Context, input *StorageEventInput) (*StorageEventOutput, error) {
	resp := &StorageEventOutput{}
	resp.Body.Path = input.Body.Name

	if !isImagePath(input.Body.Name) {
		resp.Body.Status = "ignored"
		return resp, nil
	}

	queued, err := h.store.EnqueueImage(ctx, input.Body.Name)
	if err != nil {
		return nil, huma.Error500InternalServerError("enqueueing image: " + err.Error())
	}
	if queued == nil {
		resp.Body.Status = "duplicate"
		return resp, nil
	}

	resp.Body.Status = "queued"
	return resp, nil
}

func isImagePath(p string) bool {
	lower := strings.ToLower(p)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// RegisterIngestRoutes registers storage webhook endpoints with the Huma API.
func RegisterIngestRoutes(api huma.API, h *IngestHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "ingest-storage-event",
		Method:        http.MethodPost,
		Path:          "/api/v1/ingest/storage",
		Summary:       "Accept a storage object-created event",
		Description:   "Queues an uploaded card image for background field extraction.",
		Tags:          []string{"ingest"},
		DefaultStatus: http.StatusAccepted,
	}, h.StorageEvent)
}
