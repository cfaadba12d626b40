package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filamvp/card-tracker/internal/api/handlers"
)

func newParseAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterParseRoutes(api, handlers.NewParseHandler())
	return api
}

func TestParseFilename(t *testing.T) {
	t.Parallel()

	api := newParseAPI(t)

	resp := api.Post("/api/v1/parse/filename", map[string]any{
		"filename": "Gengar_Fossil_LP_39.90_vendora_inactive.jpg",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"title":"Gengar"`)
	assert.Contains(t, body, `"set":"Fossil"`)
	assert.Contains(t, body, `"condition":"LP"`)
	assert.Contains(t, body, `"price":39.9`)
	assert.Contains(t, body, `"vendora":true`)
	assert.Contains(t, body, `"status":"Inactive"`)
}

func TestParseFilename_NothingRecognized(t *testing.T) {
	t.Parallel()

	api := newParseAPI(t)

	resp := api.Post("/api/v1/parse/filename", map[string]any{"filename": "12.50.jpg"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), `"title"`)
	assert.Contains(t, resp.Body.String(), `"price":12.5`)
}

func TestParseFilename_MissingFilename(t *testing.T) {
	t.Parallel()

	api := newParseAPI(t)

	resp := api.Post("/api/v1/parse/filename", map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
