package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filamvp/card-tracker/internal/api/handlers"
	"github.com/filamvp/card-tracker/internal/store/storetest"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

func newIngestAPI(t *testing.T, fake *storetest.Fake) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterIngestRoutes(api, handlers.NewIngestHandler(fake))
	return api
}

func TestStorageEvent_Queues(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	api := newIngestAPI(t, fake)

	resp := api.Post("/api/v1/ingest/storage", map[string]any{
		"bucket": "card-images",
		"name":   "inbox/gengar_front.jpg",
	})
	require.Equal(t, http.StatusAccepted, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"queued"`)

	entries := fake.QueueEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "inbox/gengar_front.jpg", entries[0].Path)
	assert.Equal(t, domain.QueueStatusPending, entries[0].Status)
}

func TestStorageEvent_DuplicateNotification(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	api := newIngestAPI(t, fake)

	first := api.Post("/api/v1/ingest/storage", map[string]any{"name": "gengar.jpg"})
	require.Equal(t, http.StatusAccepted, first.Code)

	// Storage services redeliver events; the second one is a no-op.
	second := api.Post("/api/v1/ingest/storage", map[string]any{"name": "gengar.jpg"})
	require.Equal(t, http.StatusAccepted, second.Code)
	assert.Contains(t, second.Body.String(), `"status":"duplicate"`)
	assert.Len(t, fake.QueueEntries(), 1)
}

func TestStorageEvent_IgnoresNonImages(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	api := newIngestAPI(t, fake)

	resp := api.Post("/api/v1/ingest/storage", map[string]any{"name": "manifest.json"})
	require.Equal(t, http.StatusAccepted, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ignored"`)
	assert.Empty(t, fake.QueueEntries())
}

func TestStorageEvent_MissingName(t *testing.T) {
	t.Parallel()

	api := newIngestAPI(t, storetest.New())

	resp := api.Post("/api/v1/ingest/storage", map[string]any{"bucket": "card-images"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
